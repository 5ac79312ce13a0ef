package types

import "github.com/google/uuid"

// NewID generates a UUID v7 for entity IDs. V7 IDs are time-ordered,
// so lexicographic order follows creation order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
