package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWateringScheduleValidate(t *testing.T) {
	tests := []struct {
		name     string
		schedule WateringSchedule
		wantErr  error
	}{
		{
			name:     "positive frequency is valid",
			schedule: WateringSchedule{FrequencyDays: 7},
		},
		{
			name:     "zero frequency rejected",
			schedule: WateringSchedule{FrequencyDays: 0},
			wantErr:  ErrInvalidFrequency,
		},
		{
			name:     "negative frequency rejected",
			schedule: WateringSchedule{FrequencyDays: -3},
			wantErr:  ErrInvalidFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleNextDue(t *testing.T) {
	last := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s := WateringSchedule{FrequencyDays: 7, LastWatered: last}

	assert.Equal(t, time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC), s.NextDue())
}

func TestWateringStatusBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		due      time.Time
		wantCode string
	}{
		{name: "due now is today", due: now, wantCode: WateringToday},
		{name: "due in one day is tomorrow", due: now.AddDate(0, 0, 1), wantCode: WateringTomorrow},
		{name: "due in two days is soon", due: now.AddDate(0, 0, 2), wantCode: WateringSoon},
		{name: "due in three days is soon", due: now.AddDate(0, 0, 3), wantCode: WateringSoon},
		{name: "due in four days is scheduled", due: now.AddDate(0, 0, 4), wantCode: WateringScheduled},
		{name: "due one day ago is overdue", due: now.AddDate(0, 0, -1), wantCode: WateringOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Build a schedule whose NextDue lands exactly on tt.due.
			p := &Plant{WateringSchedule: &WateringSchedule{
				FrequencyDays: 1,
				LastWatered:   tt.due.AddDate(0, 0, -1),
			}}
			got := p.WateringStatusAt(now)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.NotEmpty(t, got.Label)
		})
	}
}

func TestWateringStatusNoSchedule(t *testing.T) {
	p := &Plant{Name: "Fern"}

	got := p.WateringStatusAt(time.Now())
	assert.Equal(t, WateringNone, got.Code)
	assert.Equal(t, "No schedule", got.Label)

	_, ok := p.NextWateringDate()
	assert.False(t, ok)
	_, ok = p.DaysUntilWatering(time.Now())
	assert.False(t, ok)
}

func TestDaysUntilRoundsUp(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Half a day away still counts as one day out.
	assert.Equal(t, 1, DaysUntil(now.Add(12*time.Hour), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -1, DaysUntil(now.Add(-36*time.Hour), now))
}

func TestPlantNextWateringDate(t *testing.T) {
	last := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	p := &Plant{WateringSchedule: &WateringSchedule{FrequencyDays: 3, LastWatered: last}}

	next, ok := p.NextWateringDate()
	require.True(t, ok)
	assert.Equal(t, last.AddDate(0, 0, 3), next)
}
