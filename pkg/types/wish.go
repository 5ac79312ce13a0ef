package types

import "time"

// WishItem is a plant the user wants but does not own. Independent
// lifecycle: no cascade relationships with plants or reminders.
type WishItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	Link      string    `json:"link,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
