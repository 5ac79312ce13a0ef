package types

import (
	"errors"
	"time"
)

// Light requirement levels for a plant.
const (
	LightLow    = "low"
	LightMedium = "medium"
	LightBright = "bright"
)

// validLightLevels is the set of recognized light requirement values.
var validLightLevels = map[string]bool{
	LightLow:    true,
	LightMedium: true,
	LightBright: true,
}

// Health log entry types.
const (
	HealthLogWatering   = "watering"
	HealthLogFertilizer = "fertilizer"
	HealthLogGrowth     = "growth"
	HealthLogPest       = "pest"
	HealthLogGeneral    = "general"
)

// Health statuses recorded on a health log entry.
const (
	HealthThriving   = "thriving"
	HealthHealthy    = "healthy"
	HealthStruggling = "struggling"
	HealthConcern    = "concern"
)

// Plant entity errors.
var (
	ErrPlantNotFound = errors.New("plant not found")
	ErrEmptyNote     = errors.New("note must not be empty")
	ErrInvalidLight  = errors.New("unknown light level")
)

// Plant is a tracked plant in the user's collection. Journal and
// HealthLogs are owned by the plant and have no independent storage key;
// both are ordered newest first.
type Plant struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Species          string            `json:"species,omitempty"`
	Type             string            `json:"type"`
	Light            string            `json:"light"`
	Notes            string            `json:"notes,omitempty"`
	Image            string            `json:"image,omitempty"` // data URI, opaque to the data layer
	CreatedAt        time.Time         `json:"createdAt"`
	Journal          []JournalEntry    `json:"journal"`
	HealthLogs       []HealthLog       `json:"healthLogs"`
	WateringSchedule *WateringSchedule `json:"wateringSchedule,omitempty"`
}

// JournalEntry is a dated free-text observation on a plant.
// Immutable once created except deletion.
type JournalEntry struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Note  string    `json:"note"`
	Image string    `json:"image,omitempty"`
}

// HealthLog is a typed care or condition record on a plant.
type HealthLog struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
	Notes   string    `json:"notes,omitempty"`
	Image   string    `json:"image,omitempty"`
	Details string    `json:"details,omitempty"`
	Status  string    `json:"status,omitempty"`
}

// PlantPatch carries the fields of an update. Nil fields are left
// untouched on the target plant (shallow merge).
type PlantPatch struct {
	Name             *string           `json:"name,omitempty"`
	Species          *string           `json:"species,omitempty"`
	Type             *string           `json:"type,omitempty"`
	Light            *string           `json:"light,omitempty"`
	Notes            *string           `json:"notes,omitempty"`
	Image            *string           `json:"image,omitempty"`
	WateringSchedule *WateringSchedule `json:"wateringSchedule,omitempty"`
}

// Stats summarizes the collection for the dashboard. NeedsWater counts
// plants whose free-text notes mention a water keyword; it is not
// derived from the structured watering schedule.
type Stats struct {
	Total      int `json:"total"`
	NeedsWater int `json:"needsWater"`
	LowLight   int `json:"lowLight"`
}

// Normalize applies the lazy migration for plants created before the
// journal and health log fields existed: nil slices become empty.
func (p *Plant) Normalize() {
	if p.Journal == nil {
		p.Journal = []JournalEntry{}
	}
	if p.HealthLogs == nil {
		p.HealthLogs = []HealthLog{}
	}
}

// Apply merges the non-nil fields of the patch into the plant.
func (p *Plant) Apply(patch PlantPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Species != nil {
		p.Species = *patch.Species
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Light != nil {
		p.Light = *patch.Light
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.WateringSchedule != nil {
		p.WateringSchedule = patch.WateringSchedule
	}
}

// ValidLight reports whether the given light level is recognized.
func ValidLight(light string) bool {
	return validLightLevels[light]
}
