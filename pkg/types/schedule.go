package types

import (
	"errors"
	"math"
	"strconv"
	"time"
)

// Watering status codes derived from a plant's schedule.
const (
	WateringNone      = "none"
	WateringOverdue   = "overdue"
	WateringToday     = "today"
	WateringTomorrow  = "tomorrow"
	WateringSoon      = "soon"
	WateringScheduled = "scheduled"
)

// Schedule errors.
var (
	ErrNoSchedule       = errors.New("plant has no watering schedule")
	ErrInvalidFrequency = errors.New("frequency days must be positive")
)

// WateringSchedule describes how often a plant is watered. NextDue is
// always LastWatered plus FrequencyDays.
type WateringSchedule struct {
	FrequencyDays int       `json:"frequencyDays"`
	LastWatered   time.Time `json:"lastWatered"`
	ReminderTime  string    `json:"reminderTime"` // "HH:MM"
	CustomDays    []string  `json:"customDays,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// Validate checks that the schedule is well-formed.
func (s *WateringSchedule) Validate() error {
	if s.FrequencyDays <= 0 {
		return ErrInvalidFrequency
	}
	return nil
}

// NextDue returns the next watering date: LastWatered + FrequencyDays.
func (s *WateringSchedule) NextDue() time.Time {
	return s.LastWatered.AddDate(0, 0, s.FrequencyDays)
}

// WateringEvent is one entry in a plant's watering history, recorded
// when the plant is marked watered.
type WateringEvent struct {
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
	Notes  string    `json:"notes,omitempty"`
}

// WateringStatus classifies how urgently a plant needs water, with a
// display label for presentation.
type WateringStatus struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// NextWateringDate returns the plant's next watering date, or false if
// the plant has no schedule.
func (p *Plant) NextWateringDate() (time.Time, bool) {
	if p.WateringSchedule == nil {
		return time.Time{}, false
	}
	return p.WateringSchedule.NextDue(), true
}

// DaysUntilWatering returns the number of days until the next watering,
// rounded up, relative to now. Negative values mean overdue. Returns
// false if the plant has no schedule.
func (p *Plant) DaysUntilWatering(now time.Time) (int, bool) {
	next, ok := p.NextWateringDate()
	if !ok {
		return 0, false
	}
	return DaysUntil(next, now), true
}

// DaysUntil returns the difference between due and now in days, rounded
// up. A due date equal to now yields zero.
func DaysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// WateringStatusAt classifies the plant's watering urgency at the given
// instant. Boundaries are inclusive: 0 is today, 1 tomorrow, 2-3 soon,
// above 3 scheduled, below 0 overdue.
func (p *Plant) WateringStatusAt(now time.Time) WateringStatus {
	days, ok := p.DaysUntilWatering(now)
	if !ok {
		return WateringStatus{Code: WateringNone, Label: "No schedule"}
	}

	switch {
	case days < 0:
		return WateringStatus{Code: WateringOverdue, Label: "Overdue!", Days: days}
	case days == 0:
		return WateringStatus{Code: WateringToday, Label: "Water today", Days: days}
	case days == 1:
		return WateringStatus{Code: WateringTomorrow, Label: "Water tomorrow", Days: days}
	case days <= 3:
		return WateringStatus{Code: WateringSoon, Label: dayLabel(days), Days: days}
	default:
		return WateringStatus{Code: WateringScheduled, Label: dayLabel(days), Days: days}
	}
}

func dayLabel(days int) string {
	return strconv.Itoa(days) + " days"
}
