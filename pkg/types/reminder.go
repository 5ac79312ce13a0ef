package types

import (
	"errors"
	"time"
)

// Reminder recurrence frequencies.
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// validFrequencies is the set of recognized recurrence values.
var validFrequencies = map[string]bool{
	FrequencyDaily:    true,
	FrequencyWeekly:   true,
	FrequencyBiweekly: true,
	FrequencyMonthly:  true,
}

// Reminder errors.
var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrUnknownFrequency = errors.New("unknown frequency")
)

// Standard task types. TaskType is free-form; these are the ones the
// presentation layer offers by default.
const (
	TaskWatering    = "watering"
	TaskFertilizing = "fertilizing"
	TaskPruning     = "pruning"
	TaskRepotting   = "repotting"
)

// Reminder is a dated care task for a plant. A non-empty Frequency
// makes the reminder recurring: completing it creates a fresh pending
// reminder one cadence step after the current due date. Completed
// reminders are retained as history.
type Reminder struct {
	ID        string    `json:"id"`
	PlantID   string    `json:"plantId"`
	TaskType  string    `json:"taskType"`
	DueDate   time.Time `json:"dueDate"`
	Frequency string    `json:"frequency,omitempty"` // empty means one-shot
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidFrequency reports whether the frequency is recognized. The empty
// string is valid and means a one-shot reminder.
func ValidFrequency(frequency string) bool {
	return frequency == "" || validFrequencies[frequency]
}

// NextOccurrence returns the due date one cadence step after due.
// The step is anchored to the given due date, not to the completion
// time, so late or early completion does not drift the schedule.
func NextOccurrence(due time.Time, frequency string) (time.Time, error) {
	switch frequency {
	case FrequencyDaily:
		return due.AddDate(0, 0, 1), nil
	case FrequencyWeekly:
		return due.AddDate(0, 0, 7), nil
	case FrequencyBiweekly:
		return due.AddDate(0, 0, 14), nil
	case FrequencyMonthly:
		return due.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, ErrUnknownFrequency
	}
}
