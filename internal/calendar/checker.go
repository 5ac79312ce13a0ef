package calendar

import (
	"context"
	"time"

	"github.com/botanica-home/botanica/pkg/types"
)

// DefaultCheckInterval is how often the checker re-evaluates due
// reminders.
const DefaultCheckInterval = time.Minute

// StartChecker runs a periodic poll that invokes fn with the currently
// due reminders. It mutates nothing itself; fn goes through the same
// scheduler API as any other caller. The poll stops when ctx is
// cancelled. A non-positive interval falls back to the default.
func (s *Scheduler) StartChecker(ctx context.Context, interval time.Duration, fn func([]types.Reminder)) {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if due := s.DueReminders(); len(due) > 0 {
					fn(due)
				}
			}
		}
	}()
}
