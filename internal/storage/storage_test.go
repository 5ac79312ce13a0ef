package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/botanica-home/botanica/pkg/types"
)

// openStores builds one store per backend against fresh temp dirs so
// every test exercises both implementations.
func openStores(t *testing.T) map[string]Store {
	t.Helper()

	stores := make(map[string]Store)
	for _, backend := range []string{types.BackendJSON, types.BackendSQLite} {
		s, err := Open(types.Config{Backend: backend, DataDir: t.TempDir()}, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		stores[backend] = s
	}
	return stores
}

func TestStoreRoundTrip(t *testing.T) {
	plants := []types.Plant{
		{
			ID:        "p1",
			Name:      "Fern",
			Type:      "fern",
			Light:     types.LightLow,
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Journal:   []types.JournalEntry{},
			HealthLogs: []types.HealthLog{
				{ID: "h1", Type: types.HealthLogWatering, Date: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
			},
			WateringSchedule: &types.WateringSchedule{
				FrequencyDays: 7,
				LastWatered:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				ReminderTime:  "09:00",
			},
		},
	}

	for backend, s := range openStores(t) {
		t.Run(backend, func(t *testing.T) {
			require.NoError(t, s.Save(KeyPlants, plants))

			var got []types.Plant
			s.Load(KeyPlants, &got)
			require.Len(t, got, 1)
			assert.Equal(t, plants[0].ID, got[0].ID)
			assert.Equal(t, plants[0].Name, got[0].Name)
			assert.NotNil(t, got[0].Journal)
			assert.Empty(t, got[0].Journal)
			require.NotNil(t, got[0].WateringSchedule)
			assert.Equal(t, 7, got[0].WateringSchedule.FrequencyDays)
			assert.True(t, plants[0].WateringSchedule.LastWatered.Equal(got[0].WateringSchedule.LastWatered))
		})
	}
}

func TestStoreMissingKeyLeavesEmpty(t *testing.T) {
	for backend, s := range openStores(t) {
		t.Run(backend, func(t *testing.T) {
			got := []types.WishItem{}
			s.Load(KeyWishlist, &got)
			assert.Empty(t, got)
		})
	}
}

func TestStoreOverwriteReplacesDocument(t *testing.T) {
	for backend, s := range openStores(t) {
		t.Run(backend, func(t *testing.T) {
			require.NoError(t, s.Save(KeyReminders, []types.Reminder{{ID: "r1"}, {ID: "r2"}}))
			require.NoError(t, s.Save(KeyReminders, []types.Reminder{{ID: "r3"}}))

			var got []types.Reminder
			s.Load(KeyReminders, &got)
			require.Len(t, got, 1)
			assert.Equal(t, "r3", got[0].ID)
		})
	}
}

func TestStoreSeparateKeys(t *testing.T) {
	for backend, s := range openStores(t) {
		t.Run(backend, func(t *testing.T) {
			require.NoError(t, s.Save(KeyPlants, []types.Plant{{ID: "p1"}}))
			require.NoError(t, s.Save(KeyWishlist, []types.WishItem{{ID: "w1"}}))

			var plants []types.Plant
			var wishes []types.WishItem
			s.Load(KeyPlants, &plants)
			s.Load(KeyWishlist, &wishes)
			assert.Len(t, plants, 1)
			assert.Len(t, wishes, 1)
		})
	}
}

func TestJSONStoreCorruptDocumentFallsBackEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "plants.json"), []byte("{not json"), 0644))

	got := []types.Plant{}
	s.Load(KeyPlants, &got)
	assert.Empty(t, got)

	// A save after the corrupt load repairs the document.
	require.NoError(t, s.Save(KeyPlants, []types.Plant{{ID: "p1"}}))
	var again []types.Plant
	s.Load(KeyPlants, &again)
	assert.Len(t, again, 1)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewSQLiteStore(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Save(KeyWishlist, []types.WishItem{{ID: "w1", Name: "Calathea"}}))
	require.NoError(t, s.Close())

	s2, err := NewSQLiteStore(dir, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()

	var got []types.WishItem
	s2.Load(KeyWishlist, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Calathea", got[0].Name)
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open(types.Config{Backend: "redis", DataDir: t.TempDir()}, zap.NewNop())
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}
