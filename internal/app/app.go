// Package app wires the Botanica data layer together: it opens the
// store, constructs each repository exactly once, and hands the wired
// instances to callers. Collaborators receive repositories by
// injection instead of reaching for process globals.
package app

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/botanica-home/botanica/internal/calendar"
	"github.com/botanica-home/botanica/internal/plants"
	"github.com/botanica-home/botanica/internal/storage"
	"github.com/botanica-home/botanica/internal/wishlist"
	"github.com/botanica-home/botanica/pkg/types"
)

// App is the application root: one store, one repository per
// collection, one scheduler.
type App struct {
	Store     storage.Store
	Plants    *plants.Repository
	Wishlist  *wishlist.Repository
	Scheduler *calendar.Scheduler
	logger    *zap.Logger
}

// New opens the store described by cfg and constructs the repositories.
// The scheduler needs the plant repository for name lookups and the
// plant repository needs the scheduler for reminder cascades, so the
// two are wired in both directions here.
func New(cfg types.Config, notifier calendar.Notifier, logger *zap.Logger) (*App, error) {
	store, err := storage.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	plantRepo := plants.New(store, logger)
	scheduler := calendar.New(store, plantRepo, notifier, logger)
	plantRepo.SetReminderSink(scheduler)

	return &App{
		Store:     store,
		Plants:    plantRepo,
		Wishlist:  wishlist.New(store, logger),
		Scheduler: scheduler,
		logger:    logger,
	}, nil
}

// Close stops the scheduler's notification timers and releases the
// store.
func (a *App) Close() error {
	a.Scheduler.Close()
	return a.Store.Close()
}

// wateringExport is the document produced by ExportWateringData.
type wateringExport struct {
	ExportDate time.Time                        `json:"exportDate"`
	Plants     []types.Plant                    `json:"plants"`
	History    map[string][]types.WateringEvent `json:"history"`
	Reminders  []types.Reminder                 `json:"reminders"`
}

// ExportWateringData bundles plants, watering history, and reminders
// into one JSON document. An empty plantID exports everything; a
// specific ID narrows the export to that plant.
func (a *App) ExportWateringData(plantID string) ([]byte, error) {
	export := wateringExport{
		ExportDate: time.Now(),
		History:    map[string][]types.WateringEvent{},
	}

	if plantID == "" {
		export.Plants = a.Plants.Plants(plants.FilterAll, "")
		export.Reminders = a.Scheduler.Reminders()
		for _, p := range export.Plants {
			if events := a.Plants.History(p.ID, 0); len(events) > 0 {
				export.History[p.ID] = events
			}
		}
	} else {
		p, ok := a.Plants.PlantByID(plantID)
		if !ok {
			return nil, types.ErrPlantNotFound
		}
		export.Plants = []types.Plant{*p}
		export.Reminders = a.Scheduler.RemindersForPlant(plantID)
		if events := a.Plants.History(plantID, 0); len(events) > 0 {
			export.History[plantID] = events
		}
	}

	return json.MarshalIndent(export, "", "  ")
}
