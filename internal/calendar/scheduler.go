// Package calendar implements the reminder scheduler: recurring care
// reminders, the month grid, the periodic due-reminder checker, and
// best-effort local notifications.
package calendar

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/botanica-home/botanica/internal/storage"
	"github.com/botanica-home/botanica/pkg/types"
)

// PlantDirectory is the read-only slice of the plant repository the
// scheduler needs: existence checks and name lookups for rendering and
// notifications.
type PlantDirectory interface {
	PlantByID(id string) (*types.Plant, bool)
}

// Scheduler owns the reminders collection. Completed reminders are
// retained as history; recurrence creates fresh pending reminders
// anchored to the previous due date.
type Scheduler struct {
	mu        sync.RWMutex
	store     storage.Store
	logger    *zap.Logger
	directory PlantDirectory
	notifier  Notifier
	reminders []types.Reminder
	timers    map[string]*time.Timer
	now       func() time.Time
}

// New constructs a Scheduler backed by store. Pending notifications are
// recomputed from the stored due dates: in-memory timers do not survive
// a restart, so every construction re-arms them.
func New(store storage.Store, directory PlantDirectory, notifier Notifier, logger *zap.Logger) *Scheduler {
	s := &Scheduler{
		store:     store,
		logger:    logger,
		directory: directory,
		notifier:  notifier,
		reminders: []types.Reminder{},
		timers:    map[string]*time.Timer{},
		now:       time.Now,
	}
	store.Load(storage.KeyReminders, &s.reminders)

	for i := range s.reminders {
		s.scheduleNotification(s.reminders[i])
	}
	return s
}

// AddReminder creates a pending reminder for the plant. The frequency
// may be empty for a one-shot reminder. Returns ErrPlantNotFound when
// the plant does not exist and ErrUnknownFrequency for an unrecognized
// cadence.
func (s *Scheduler) AddReminder(plantID, taskType string, due time.Time, frequency string) (*types.Reminder, error) {
	if !types.ValidFrequency(frequency) {
		return nil, types.ErrUnknownFrequency
	}
	if _, ok := s.directory.PlantByID(plantID); !ok {
		return nil, types.ErrPlantNotFound
	}

	s.mu.Lock()
	reminder := types.Reminder{
		ID:        types.NewID(),
		PlantID:   plantID,
		TaskType:  taskType,
		DueDate:   due,
		Frequency: frequency,
		CreatedAt: s.now(),
	}
	s.reminders = append(s.reminders, reminder)
	s.persist()
	s.scheduleNotification(reminder)
	s.mu.Unlock()

	return &reminder, nil
}

// CreateWateringReminder replaces the plant's pending watering reminder
// with one due at the schedule's next watering date. Called by the
// plant repository whenever a schedule is attached, the plant is
// watered, or the reminder is snoozed. Plants without a schedule are
// ignored.
func (s *Scheduler) CreateWateringReminder(plant *types.Plant) {
	if plant == nil || plant.WateringSchedule == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.reminders[:0]
	for _, r := range s.reminders {
		if r.PlantID == plant.ID && r.TaskType == types.TaskWatering && !r.Completed {
			s.cancelNotification(r.ID)
			continue
		}
		kept = append(kept, r)
	}
	s.reminders = kept

	reminder := types.Reminder{
		ID:        types.NewID(),
		PlantID:   plant.ID,
		TaskType:  types.TaskWatering,
		DueDate:   plant.WateringSchedule.NextDue(),
		CreatedAt: s.now(),
	}
	s.reminders = append(s.reminders, reminder)
	s.persist()
	s.scheduleNotification(reminder)
}

// Reminders returns a copy of the full collection, history included.
func (s *Scheduler) Reminders() []types.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// RemindersForPlant returns all reminders referencing the plant.
func (s *Scheduler) RemindersForPlant(plantID string) []types.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []types.Reminder
	for _, r := range s.reminders {
		if r.PlantID == plantID {
			out = append(out, r)
		}
	}
	return out
}

// UpcomingReminders returns the pending reminders due now or later,
// sorted by due date ascending.
func (s *Scheduler) UpcomingReminders() []types.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var out []types.Reminder
	for _, r := range s.reminders {
		if !r.Completed && !r.DueDate.Before(now) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

// DueReminders returns the pending reminders due today or overdue.
func (s *Scheduler) DueReminders() []types.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var out []types.Reminder
	for _, r := range s.reminders {
		if !r.Completed && types.DaysUntil(r.DueDate, now) <= 0 {
			out = append(out, r)
		}
	}
	return out
}

// CompleteReminder marks the reminder completed, retains it, and for a
// recurring reminder creates the next pending occurrence one cadence
// step after the completed reminder's due date. Returns the newly
// created occurrence, or nil for one-shot reminders.
func (s *Scheduler) CompleteReminder(id string) (*types.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID != id {
			continue
		}
		s.reminders[i].Completed = true
		s.cancelNotification(id)

		var next *types.Reminder
		if freq := s.reminders[i].Frequency; freq != "" {
			due, err := types.NextOccurrence(s.reminders[i].DueDate, freq)
			if err != nil {
				s.persist()
				return nil, err
			}
			n := types.Reminder{
				ID:        types.NewID(),
				PlantID:   s.reminders[i].PlantID,
				TaskType:  s.reminders[i].TaskType,
				DueDate:   due,
				Frequency: freq,
				CreatedAt: s.now(),
			}
			s.reminders = append(s.reminders, n)
			s.scheduleNotification(n)
			next = &n
		}
		s.persist()
		return next, nil
	}
	return nil, types.ErrReminderNotFound
}

// DeleteReminder removes the reminder unconditionally. Reminders are
// leaves: nothing cascades from them.
func (s *Scheduler) DeleteReminder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.cancelNotification(id)
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// DeleteForPlant removes every reminder referencing the plant and
// returns how many were removed. Called by the plant repository when a
// plant is deleted.
func (s *Scheduler) DeleteForPlant(plantID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.reminders[:0]
	removed := 0
	for _, r := range s.reminders {
		if r.PlantID == plantID {
			s.cancelNotification(r.ID)
			removed++
			continue
		}
		kept = append(kept, r)
	}
	if removed > 0 {
		s.reminders = kept
		s.persist()
	}
	return removed
}

// PlantName resolves a plant name for presentation so callers do not
// need their own plant storage access.
func (s *Scheduler) PlantName(plantID string) (string, bool) {
	p, ok := s.directory.PlantByID(plantID)
	if !ok {
		return "", false
	}
	return p.Name, true
}

// Close stops all armed notification timers.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// persist writes the reminders collection through to storage. Caller
// must hold s.mu.
func (s *Scheduler) persist() {
	if err := s.store.Save(storage.KeyReminders, s.reminders); err != nil {
		s.logger.Warn("persisting reminders failed, continuing in memory", zap.Error(err))
	}
}
