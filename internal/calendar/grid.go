package calendar

import (
	"time"

	"github.com/botanica-home/botanica/pkg/types"
)

// DayCell is one populated day in a month grid.
type DayCell struct {
	Day       int              `json:"day"`
	Reminders []types.Reminder `json:"reminders"`
}

// MonthGrid produces the week-major calendar grid for the given month:
// one row per week, seven columns, Sunday first. Cells before day one
// and after the last day of the month are nil. Each populated cell
// carries the reminders due on that calendar day.
func (s *Scheduler) MonthGrid(year int, month time.Month) [][]*DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	startingWeekday := int(first.Weekday())

	var grid [][]*DayCell
	week := make([]*DayCell, 7)

	for day := 1; day <= daysInMonth; day++ {
		col := (startingWeekday + day - 1) % 7
		week[col] = &DayCell{
			Day:       day,
			Reminders: s.RemindersOn(time.Date(year, month, day, 0, 0, 0, 0, time.Local)),
		}
		if col == 6 || day == daysInMonth {
			grid = append(grid, week)
			week = make([]*DayCell, 7)
		}
	}
	return grid
}

// RemindersOn returns the reminders whose due date falls on the same
// calendar day as date, ignoring time of day.
func (s *Scheduler) RemindersOn(date time.Time) []types.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	y, m, d := date.Date()
	var out []types.Reminder
	for _, r := range s.reminders {
		ry, rm, rd := r.DueDate.Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out
}
