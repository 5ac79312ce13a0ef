// Package plants implements the plant repository: the collection of
// tracked plants with their journals, health logs, and watering
// schedules. The repository loads its collection once at construction
// and persists the full collection after every mutation.
package plants

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/botanica-home/botanica/internal/storage"
	"github.com/botanica-home/botanica/pkg/types"
)

// FilterAll is the sentinel filter value matching every plant type.
const FilterAll = "all"

// waterKeywords drive the dashboard "needs water" count. The count
// scans free-text notes, it does not consult the structured watering
// schedule; the schedule-derived signal lives in WateringStatus.
var waterKeywords = []string{"water", "thirsty", "dry"}

// ReminderSink is the slice of the reminder scheduler the plant
// repository needs: creating watering reminders when a schedule is
// attached and cascading deletes when a plant is removed.
type ReminderSink interface {
	CreateWateringReminder(plant *types.Plant)
	DeleteForPlant(plantID string) int
}

// Repository owns the plants collection and the per-plant watering
// history. All methods are safe for concurrent use.
type Repository struct {
	mu      sync.RWMutex
	store   storage.Store
	logger  *zap.Logger
	plants  []types.Plant
	history map[string][]types.WateringEvent

	reminders ReminderSink
	now       func() time.Time
}

// New constructs a Repository backed by store, loading the persisted
// collection. Plants persisted before the journal and health log fields
// existed are migrated to empty slices here.
func New(store storage.Store, logger *zap.Logger) *Repository {
	r := &Repository{
		store:   store,
		logger:  logger,
		plants:  []types.Plant{},
		history: map[string][]types.WateringEvent{},
		now:     time.Now,
	}
	store.Load(storage.KeyPlants, &r.plants)
	store.Load(storage.KeyWateringHistory, &r.history)
	for i := range r.plants {
		r.plants[i].Normalize()
	}
	return r
}

// SetReminderSink wires the reminder scheduler. Called once by the
// application root; the scheduler cannot be passed to New because it
// itself needs the repository for plant-name lookups.
func (r *Repository) SetReminderSink(sink ReminderSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders = sink
}

// AddPlant stamps the plant with an ID and creation time, initializes
// its journal and health logs, and inserts it at the head of the
// collection (most recent first). If the plant carries a watering
// schedule a watering reminder is created for it.
func (r *Repository) AddPlant(p types.Plant) (*types.Plant, error) {
	if p.Light != "" && !types.ValidLight(p.Light) {
		return nil, types.ErrInvalidLight
	}
	if p.WateringSchedule != nil {
		if err := p.WateringSchedule.Validate(); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	p.ID = types.NewID()
	p.CreatedAt = r.now()
	p.Journal = []types.JournalEntry{}
	p.HealthLogs = []types.HealthLog{}

	r.plants = append([]types.Plant{p}, r.plants...)
	r.persist()
	added := r.plants[0]
	sink := r.reminders
	r.mu.Unlock()

	if added.WateringSchedule != nil && sink != nil {
		sink.CreateWateringReminder(&added)
	}
	return &added, nil
}

// Plants returns the collection filtered by exact type (FilterAll
// matches everything) and a case-insensitive substring search over
// name, species, and notes. Filter and search compose with AND; the
// returned slice preserves insertion order.
func (r *Repository) Plants(filter, search string) []types.Plant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]types.Plant, 0, len(r.plants))
	for _, p := range r.plants {
		if filter != "" && filter != FilterAll && p.Type != filter {
			continue
		}
		if search != "" && !matchesSearch(&p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p *types.Plant, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Species), search) ||
		strings.Contains(strings.ToLower(p.Notes), search)
}

// PlantByID returns a copy of the plant, or false if no plant has the
// given ID.
func (r *Repository) PlantByID(id string) (*types.Plant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(id)
}

// findLocked returns a copy of the plant so callers never hold a
// pointer into the collection slice.
func (r *Repository) findLocked(id string) (*types.Plant, bool) {
	for i := range r.plants {
		if r.plants[i].ID == id {
			p := r.plants[i]
			return &p, true
		}
	}
	return nil, false
}

// Recent returns the newest plants up to limit, in insertion order.
func (r *Repository) Recent(limit int) []types.Plant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.plants) {
		limit = len(r.plants)
	}
	out := make([]types.Plant, limit)
	copy(out, r.plants[:limit])
	return out
}

// DeletePlant removes the plant and cascades: its watering history is
// dropped and all reminders referencing it are deleted. Returns false
// if no plant matched.
func (r *Repository) DeletePlant(id string) bool {
	r.mu.Lock()
	kept := r.plants[:0]
	found := false
	for _, p := range r.plants {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		r.mu.Unlock()
		return false
	}
	r.plants = kept
	delete(r.history, id)
	r.persist()
	r.persistHistory()
	sink := r.reminders
	r.mu.Unlock()

	if sink != nil {
		sink.DeleteForPlant(id)
	}
	return true
}

// UpdatePlant shallow-merges the non-nil patch fields into the plant.
// A patch carrying a watering schedule recreates the plant's watering
// reminder.
func (r *Repository) UpdatePlant(id string, patch types.PlantPatch) (*types.Plant, error) {
	if patch.Light != nil && *patch.Light != "" && !types.ValidLight(*patch.Light) {
		return nil, types.ErrInvalidLight
	}
	if patch.WateringSchedule != nil {
		if err := patch.WateringSchedule.Validate(); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	idx := -1
	for i := range r.plants {
		if r.plants[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return nil, types.ErrPlantNotFound
	}

	r.plants[idx].Apply(patch)
	r.persist()
	updated := r.plants[idx]
	sink := r.reminders
	r.mu.Unlock()

	if patch.WateringSchedule != nil && sink != nil {
		sink.CreateWateringReminder(&updated)
	}
	return &updated, nil
}

// AddJournalEntry prepends a journal entry to the plant. The note must
// be non-empty after trimming.
func (r *Repository) AddJournalEntry(plantID, note, image string) (*types.JournalEntry, error) {
	if strings.TrimSpace(note) == "" {
		return nil, types.ErrEmptyNote
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plants {
		if r.plants[i].ID != plantID {
			continue
		}
		entry := types.JournalEntry{
			ID:    types.NewID(),
			Date:  r.now(),
			Note:  note,
			Image: image,
		}
		r.plants[i].Journal = append([]types.JournalEntry{entry}, r.plants[i].Journal...)
		r.persist()
		return &entry, nil
	}
	return nil, types.ErrPlantNotFound
}

// DeleteJournalEntry removes the entry by ID. Returns false if the
// plant or the entry does not exist.
func (r *Repository) DeleteJournalEntry(plantID, entryID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plants {
		if r.plants[i].ID != plantID {
			continue
		}
		for j := range r.plants[i].Journal {
			if r.plants[i].Journal[j].ID == entryID {
				r.plants[i].Journal = append(r.plants[i].Journal[:j], r.plants[i].Journal[j+1:]...)
				r.persist()
				return true
			}
		}
		return false
	}
	return false
}

// HealthLogInput carries the caller-supplied fields of a health log.
type HealthLogInput struct {
	Type    string
	Notes   string
	Image   string
	Details string
	Status  string
}

// validHealthLogTypes is the set of recognized health log types.
var validHealthLogTypes = map[string]bool{
	types.HealthLogWatering:   true,
	types.HealthLogFertilizer: true,
	types.HealthLogGrowth:     true,
	types.HealthLogPest:       true,
	types.HealthLogGeneral:    true,
}

// ErrInvalidLogType is returned when a health log type is not recognized.
var ErrInvalidLogType = fmt.Errorf("unknown health log type")

// AddHealthLog prepends a health log entry to the plant.
func (r *Repository) AddHealthLog(plantID string, input HealthLogInput) (*types.HealthLog, error) {
	if !validHealthLogTypes[input.Type] {
		return nil, ErrInvalidLogType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plants {
		if r.plants[i].ID != plantID {
			continue
		}
		log := types.HealthLog{
			ID:      types.NewID(),
			Type:    input.Type,
			Date:    r.now(),
			Notes:   input.Notes,
			Image:   input.Image,
			Details: input.Details,
			Status:  input.Status,
		}
		r.plants[i].HealthLogs = append([]types.HealthLog{log}, r.plants[i].HealthLogs...)
		r.persist()
		return &log, nil
	}
	return nil, types.ErrPlantNotFound
}

// DeleteHealthLog removes the health log by ID. Returns false if the
// plant or the log does not exist.
func (r *Repository) DeleteHealthLog(plantID, logID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plants {
		if r.plants[i].ID != plantID {
			continue
		}
		for j := range r.plants[i].HealthLogs {
			if r.plants[i].HealthLogs[j].ID == logID {
				r.plants[i].HealthLogs = append(r.plants[i].HealthLogs[:j], r.plants[i].HealthLogs[j+1:]...)
				r.persist()
				return true
			}
		}
		return false
	}
	return false
}

// Stats summarizes the collection for the dashboard.
func (r *Repository) Stats() types.Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := types.Stats{Total: len(r.plants)}
	for _, p := range r.plants {
		if p.Light == types.LightLow {
			stats.LowLight++
		}
		notes := strings.ToLower(p.Notes)
		for _, kw := range waterKeywords {
			if strings.Contains(notes, kw) {
				stats.NeedsWater++
				break
			}
		}
	}
	return stats
}

// persist writes the plants collection through to storage. A failed
// write is logged and the in-memory state stays authoritative for the
// rest of the process lifetime. Caller must hold r.mu.
func (r *Repository) persist() {
	if err := r.store.Save(storage.KeyPlants, r.plants); err != nil {
		r.logger.Warn("persisting plants failed, continuing in memory", zap.Error(err))
	}
}

// persistHistory writes the watering history through to storage.
// Caller must hold r.mu.
func (r *Repository) persistHistory() {
	if err := r.store.Save(storage.KeyWateringHistory, r.history); err != nil {
		r.logger.Warn("persisting watering history failed, continuing in memory", zap.Error(err))
	}
}
