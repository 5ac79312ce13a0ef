// Shared helpers for botanica CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/botanica-home/botanica/internal/app"
	"github.com/botanica-home/botanica/internal/calendar"
	"github.com/botanica-home/botanica/pkg/types"
)

// openApp resolves the data directory and backend and constructs the
// application root. The caller must defer a.Close().
func openApp() (*app.App, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if flagBackend != "" {
		backend = flagBackend
	}
	if backend == "" {
		backend = defaultBackend
	}

	logger := newLogger()
	var notifier calendar.Notifier
	if flagVerbose {
		notifier = &calendar.LogNotifier{Logger: logger}
	}

	a, err := app.New(types.Config{Backend: backend, DataDir: dataDir}, notifier, logger)
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}
	return a, nil
}

// newLogger builds the CLI logger: development output on --verbose,
// silence otherwise.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// formatDate renders a timestamp for table output.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}

// formatDateTime renders a timestamp with time of day.
func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
