package plants

import (
	"math"
	"time"

	"github.com/botanica-home/botanica/pkg/types"
)

// maxHistoryPerPlant caps the retained watering events per plant.
const maxHistoryPerPlant = 100

// defaultReminderTime is used when a schedule omits the reminder time.
const defaultReminderTime = "09:00"

// WateringStats summarizes a plant's watering history against its
// schedule.
type WateringStats struct {
	TotalWaterings    int       `json:"totalWaterings"`
	AverageInterval   int       `json:"averageInterval"` // days, rounded
	ScheduledInterval int       `json:"scheduledInterval"`
	Consistency       int       `json:"consistency"` // percent
	LastWatered       time.Time `json:"lastWatered"`
	NextWatering      time.Time `json:"nextWatering"`
}

// SetWateringSchedule attaches or replaces the plant's schedule and
// recreates its watering reminder. Missing fields get defaults:
// frequency seven days, reminder time 09:00, last watered now.
func (r *Repository) SetWateringSchedule(plantID string, schedule types.WateringSchedule) error {
	if schedule.FrequencyDays == 0 {
		schedule.FrequencyDays = 7
	}
	if err := schedule.Validate(); err != nil {
		return err
	}
	if schedule.ReminderTime == "" {
		schedule.ReminderTime = defaultReminderTime
	}

	r.mu.Lock()
	if schedule.LastWatered.IsZero() {
		schedule.LastWatered = r.now()
	}

	idx := -1
	for i := range r.plants {
		if r.plants[i].ID == plantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return types.ErrPlantNotFound
	}

	r.plants[idx].WateringSchedule = &schedule
	r.persist()
	updated := r.plants[idx]
	sink := r.reminders
	r.mu.Unlock()

	if sink != nil {
		sink.CreateWateringReminder(&updated)
	}
	return nil
}

// MarkWatered records a watering: sets LastWatered to now, prepends a
// history event, and regenerates the watering reminder. Fails with
// ErrNoSchedule when the plant has no schedule attached.
func (r *Repository) MarkWatered(plantID, notes string) error {
	r.mu.Lock()
	idx := -1
	for i := range r.plants {
		if r.plants[i].ID == plantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return types.ErrPlantNotFound
	}
	if r.plants[idx].WateringSchedule == nil {
		r.mu.Unlock()
		return types.ErrNoSchedule
	}

	now := r.now()
	r.plants[idx].WateringSchedule.LastWatered = now

	events := append([]types.WateringEvent{{
		Date:   now,
		Action: "watered",
		Notes:  notes,
	}}, r.history[plantID]...)
	if len(events) > maxHistoryPerPlant {
		events = events[:maxHistoryPerPlant]
	}
	r.history[plantID] = events

	r.persist()
	r.persistHistory()
	updated := r.plants[idx]
	sink := r.reminders
	r.mu.Unlock()

	if sink != nil {
		sink.CreateWateringReminder(&updated)
	}
	return nil
}

// Snooze shifts the plant's LastWatered forward by the given number of
// days, pushing the next due date out, and regenerates the reminder.
func (r *Repository) Snooze(plantID string, days int) error {
	r.mu.Lock()
	idx := -1
	for i := range r.plants {
		if r.plants[i].ID == plantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return types.ErrPlantNotFound
	}
	if r.plants[idx].WateringSchedule == nil {
		r.mu.Unlock()
		return types.ErrNoSchedule
	}

	s := r.plants[idx].WateringSchedule
	s.LastWatered = s.LastWatered.AddDate(0, 0, days)
	r.persist()
	updated := r.plants[idx]
	sink := r.reminders
	r.mu.Unlock()

	if sink != nil {
		sink.CreateWateringReminder(&updated)
	}
	return nil
}

// History returns the newest watering events for the plant, up to
// limit (zero means all retained events).
func (r *Repository) History(plantID string, limit int) []types.WateringEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := r.history[plantID]
	if limit <= 0 || limit > len(events) {
		limit = len(events)
	}
	out := make([]types.WateringEvent, limit)
	copy(out, events[:limit])
	return out
}

// WateringStatus classifies the plant's watering urgency now. The
// second return is false when the plant does not exist.
func (r *Repository) WateringStatus(plantID string) (types.WateringStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.findLocked(plantID)
	if !ok {
		return types.WateringStatus{}, false
	}
	return p.WateringStatusAt(r.now()), true
}

// Watering returns the per-plant stats, or false when the plant has no
// schedule or fewer than two recorded waterings.
func (r *Repository) Watering(plantID string) (*WateringStats, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.findLocked(plantID)
	if !ok || p.WateringSchedule == nil {
		return nil, false
	}
	events := r.history[plantID]
	if len(events) < 2 {
		return nil, false
	}

	var totalDays float64
	for i := 0; i < len(events)-1; i++ {
		totalDays += events[i].Date.Sub(events[i+1].Date).Hours() / 24
	}
	avg := totalDays / float64(len(events)-1)
	scheduled := float64(p.WateringSchedule.FrequencyDays)
	consistency := math.Round((1 - math.Abs(avg-scheduled)/scheduled) * 100)
	if consistency < 0 {
		consistency = 0
	}

	return &WateringStats{
		TotalWaterings:    len(events),
		AverageInterval:   int(math.Round(avg)),
		ScheduledInterval: p.WateringSchedule.FrequencyDays,
		Consistency:       int(consistency),
		LastWatered:       events[0].Date,
		NextWatering:      p.WateringSchedule.NextDue(),
	}, true
}
