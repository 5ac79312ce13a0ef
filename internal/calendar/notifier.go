package calendar

import (
	"time"

	"go.uber.org/zap"

	"github.com/botanica-home/botanica/pkg/types"
)

// Notifier delivers a one-shot local notification when a reminder
// comes due. Delivery is best effort: a nil Notifier on the scheduler
// disables the feature silently, and armed timers are lost when the
// process exits (the scheduler re-arms from stored due dates on the
// next construction).
type Notifier interface {
	Notify(plantName, taskType string)
}

// LogNotifier writes notifications to the structured log. It stands in
// for a desktop notification integration.
type LogNotifier struct {
	Logger *zap.Logger
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(plantName, taskType string) {
	n.Logger.Info("plant care reminder",
		zap.String("plant", plantName),
		zap.String("task", taskType))
}

// scheduleNotification arms a timer firing at the reminder's due date.
// Reminders already due, already completed, or without a notifier are
// skipped. Caller must hold s.mu (or be the constructor).
func (s *Scheduler) scheduleNotification(r types.Reminder) {
	if s.notifier == nil || r.Completed {
		return
	}
	delay := r.DueDate.Sub(s.now())
	if delay <= 0 {
		return
	}

	id := r.ID
	plantID := r.PlantID
	taskType := r.TaskType
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()

		name, ok := s.PlantName(plantID)
		if !ok {
			return
		}
		s.notifier.Notify(name, taskType)
	})
}

// cancelNotification stops and drops the timer for a reminder, if one
// is armed. Caller must hold s.mu.
func (s *Scheduler) cancelNotification(id string) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
}
