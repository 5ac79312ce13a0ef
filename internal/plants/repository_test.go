package plants

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/botanica-home/botanica/internal/storage"
	"github.com/botanica-home/botanica/pkg/types"
)

// recordingSink captures reminder calls from the repository.
type recordingSink struct {
	created []string // plant IDs passed to CreateWateringReminder
	deleted []string // plant IDs passed to DeleteForPlant
}

func (s *recordingSink) CreateWateringReminder(p *types.Plant) {
	s.created = append(s.created, p.ID)
}

func (s *recordingSink) DeleteForPlant(plantID string) int {
	s.deleted = append(s.deleted, plantID)
	return 0
}

func newTestRepo(t *testing.T) (*Repository, storage.Store, *recordingSink) {
	t.Helper()
	store, err := storage.NewJSONStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	repo := New(store, zap.NewNop())
	sink := &recordingSink{}
	repo.SetReminderSink(sink)
	return repo, store, sink
}

func TestAddPlantStampsFields(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern", Light: types.LightLow})
	require.NoError(t, err)

	assert.NotEmpty(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())
	assert.NotNil(t, added.Journal)
	assert.Empty(t, added.Journal)
	assert.NotNil(t, added.HealthLogs)
}

func TestAddPlantInsertsAtHead(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	_, err := repo.AddPlant(types.Plant{Name: "First", Type: "fern"})
	require.NoError(t, err)
	_, err = repo.AddPlant(types.Plant{Name: "Second", Type: "fern"})
	require.NoError(t, err)

	got := repo.Plants(FilterAll, "")
	require.Len(t, got, 2)
	assert.Equal(t, "Second", got[0].Name)
	assert.Equal(t, "First", got[1].Name)
}

func TestAddPlantWithScheduleCreatesReminder(t *testing.T) {
	repo, _, sink := newTestRepo(t)

	added, err := repo.AddPlant(types.Plant{
		Name: "Monstera",
		Type: "foliage",
		WateringSchedule: &types.WateringSchedule{
			FrequencyDays: 7,
			LastWatered:   time.Now(),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{added.ID}, sink.created)
}

func TestAddPlantRejectsInvalidSchedule(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	_, err := repo.AddPlant(types.Plant{
		Name:             "Monstera",
		WateringSchedule: &types.WateringSchedule{FrequencyDays: -1},
	})
	assert.ErrorIs(t, err, types.ErrInvalidFrequency)
}

func TestAddPlantRejectsUnknownLight(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	_, err := repo.AddPlant(types.Plant{Name: "Monstera", Light: "blinding"})
	assert.ErrorIs(t, err, types.ErrInvalidLight)
	assert.Empty(t, repo.Plants(FilterAll, ""))
}

func TestUpdatePlantRejectsUnknownLight(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	strp := func(s string) *string { return &s }

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Light: types.LightLow})
	require.NoError(t, err)

	_, err = repo.UpdatePlant(added.ID, types.PlantPatch{Light: strp("blinding")})
	assert.ErrorIs(t, err, types.ErrInvalidLight)

	got, ok := repo.PlantByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, types.LightLow, got.Light)
}

func TestPlantsFilterAndSearch(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	seed := []types.Plant{
		{Name: "Boston Fern", Species: "Nephrolepis", Type: "fern", Notes: "likes humidity"},
		{Name: "Monstera", Species: "Deliciosa", Type: "foliage", Notes: "fast grower"},
		{Name: "Maidenhair", Species: "Adiantum", Type: "fern", Notes: "keep moist"},
	}
	for _, p := range seed {
		_, err := repo.AddPlant(p)
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		filter    string
		search    string
		wantNames []string
	}{
		{
			name:      "all sentinel with empty search returns everything in stored order",
			filter:    FilterAll,
			search:    "",
			wantNames: []string{"Maidenhair", "Monstera", "Boston Fern"},
		},
		{
			name:      "filter by exact type",
			filter:    "fern",
			search:    "",
			wantNames: []string{"Maidenhair", "Boston Fern"},
		},
		{
			name:      "search matches name case-insensitively",
			filter:    FilterAll,
			search:    "monst",
			wantNames: []string{"Monstera"},
		},
		{
			name:      "search matches species",
			filter:    FilterAll,
			search:    "adiantum",
			wantNames: []string{"Maidenhair"},
		},
		{
			name:      "search matches notes",
			filter:    FilterAll,
			search:    "humidity",
			wantNames: []string{"Boston Fern"},
		},
		{
			name:      "filter and search compose with AND",
			filter:    "fern",
			search:    "moist",
			wantNames: []string{"Maidenhair"},
		},
		{
			name:      "no match yields empty",
			filter:    "succulent",
			search:    "",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.Plants(tt.filter, tt.search)
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestPlantByID(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern"})
	require.NoError(t, err)

	got, ok := repo.PlantByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Fern", got.Name)

	_, ok = repo.PlantByID("missing")
	assert.False(t, ok)
}

func TestRoundTripFreshRepository(t *testing.T) {
	store, err := storage.NewJSONStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	repo := New(store, zap.NewNop())
	added, err := repo.AddPlant(types.Plant{
		Name:    "Calathea",
		Species: "Ornata",
		Type:    "foliage",
		Light:   types.LightMedium,
		Notes:   "mist often",
		WateringSchedule: &types.WateringSchedule{
			FrequencyDays: 4,
			LastWatered:   time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
			ReminderTime:  "09:00",
		},
	})
	require.NoError(t, err)

	fresh := New(store, zap.NewNop())
	got, ok := fresh.PlantByID(added.ID)
	require.True(t, ok)

	assert.Equal(t, added.Name, got.Name)
	assert.Equal(t, added.Species, got.Species)
	assert.Equal(t, added.Type, got.Type)
	assert.Equal(t, added.Light, got.Light)
	assert.Equal(t, added.Notes, got.Notes)
	assert.True(t, added.CreatedAt.Equal(got.CreatedAt))
	assert.NotNil(t, got.Journal)
	assert.Empty(t, got.Journal)
	assert.NotNil(t, got.HealthLogs)
	assert.Empty(t, got.HealthLogs)
	require.NotNil(t, got.WateringSchedule)
	assert.Equal(t, 4, got.WateringSchedule.FrequencyDays)
}

func TestDeletePlantCascades(t *testing.T) {
	repo, _, sink := newTestRepo(t)

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern"})
	require.NoError(t, err)
	require.NoError(t, repo.SetWateringSchedule(added.ID, types.WateringSchedule{FrequencyDays: 7}))
	require.NoError(t, repo.MarkWatered(added.ID, ""))

	assert.True(t, repo.DeletePlant(added.ID))
	assert.Equal(t, []string{added.ID}, sink.deleted)
	assert.Empty(t, repo.Plants(FilterAll, ""))
	assert.Empty(t, repo.History(added.ID, 0))

	assert.False(t, repo.DeletePlant(added.ID), "second delete finds nothing")
}

func TestUpdatePlantShallowMerge(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	strp := func(s string) *string { return &s }

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern", Notes: "original"})
	require.NoError(t, err)

	updated, err := repo.UpdatePlant(added.ID, types.PlantPatch{Name: strp("Boston Fern")})
	require.NoError(t, err)
	assert.Equal(t, "Boston Fern", updated.Name)
	assert.Equal(t, "original", updated.Notes)
	assert.Equal(t, "fern", updated.Type)

	_, err = repo.UpdatePlant("missing", types.PlantPatch{Name: strp("x")})
	assert.ErrorIs(t, err, types.ErrPlantNotFound)
}

func TestJournalEntries(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern"})
	require.NoError(t, err)

	_, err = repo.AddJournalEntry(added.ID, "   ", "")
	assert.ErrorIs(t, err, types.ErrEmptyNote)

	_, err = repo.AddJournalEntry("missing", "note", "")
	assert.ErrorIs(t, err, types.ErrPlantNotFound)

	first, err := repo.AddJournalEntry(added.ID, "repotted", "")
	require.NoError(t, err)
	second, err := repo.AddJournalEntry(added.ID, "new frond", "")
	require.NoError(t, err)

	got, ok := repo.PlantByID(added.ID)
	require.True(t, ok)
	require.Len(t, got.Journal, 2)
	assert.Equal(t, second.ID, got.Journal[0].ID, "newest entry first")
	assert.Equal(t, first.ID, got.Journal[1].ID)

	assert.True(t, repo.DeleteJournalEntry(added.ID, first.ID))
	assert.False(t, repo.DeleteJournalEntry(added.ID, first.ID))
	assert.False(t, repo.DeleteJournalEntry("missing", second.ID))

	got, _ = repo.PlantByID(added.ID)
	require.Len(t, got.Journal, 1)
}

func TestHealthLogs(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern"})
	require.NoError(t, err)

	_, err = repo.AddHealthLog(added.ID, HealthLogInput{Type: "sunbathing"})
	assert.ErrorIs(t, err, ErrInvalidLogType)

	_, err = repo.AddHealthLog("missing", HealthLogInput{Type: types.HealthLogPest})
	assert.ErrorIs(t, err, types.ErrPlantNotFound)

	log, err := repo.AddHealthLog(added.ID, HealthLogInput{
		Type:   types.HealthLogPest,
		Notes:  "spider mites on lower leaves",
		Status: types.HealthConcern,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, log.ID)

	got, _ := repo.PlantByID(added.ID)
	require.Len(t, got.HealthLogs, 1)
	assert.Equal(t, types.HealthConcern, got.HealthLogs[0].Status)

	assert.True(t, repo.DeleteHealthLog(added.ID, log.ID))
	assert.False(t, repo.DeleteHealthLog(added.ID, log.ID))
}

func TestStats(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	_, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern", Light: types.LightLow})
	require.NoError(t, err)
	_, err = repo.AddPlant(types.Plant{Name: "Cactus", Type: "succulent", Light: types.LightBright, Notes: "Water sparingly"})
	require.NoError(t, err)
	_, err = repo.AddPlant(types.Plant{Name: "Calathea", Type: "foliage", Light: types.LightLow, Notes: "soil feels DRY"})
	require.NoError(t, err)

	stats := repo.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.NeedsWater, "keyword scan is case-insensitive")
	assert.Equal(t, 2, stats.LowLight)
}

func TestStatsEndToEnd(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern", Light: types.LightLow})
	require.NoError(t, err)

	stats := repo.Stats()
	assert.Equal(t, types.Stats{Total: 1, NeedsWater: 0, LowLight: 1}, stats)

	_, err = repo.AddJournalEntry(added.ID, "New frond", "")
	require.NoError(t, err)
	got, ok := repo.PlantByID(added.ID)
	require.True(t, ok)
	require.Len(t, got.Journal, 1)
	assert.Equal(t, "New frond", got.Journal[0].Note)

	require.True(t, repo.DeletePlant(added.ID))
	assert.Empty(t, repo.Plants(FilterAll, ""))
}

func TestRecent(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.AddPlant(types.Plant{Name: name, Type: "fern"})
		require.NoError(t, err)
	}

	got := repo.Recent(2)
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].Name)
	assert.Equal(t, "B", got[1].Name)

	assert.Len(t, repo.Recent(0), 3, "non-positive limit returns all")
	assert.Len(t, repo.Recent(10), 3)
}

// failingStore rejects every save so mutations can only live in memory.
type failingStore struct{}

func (failingStore) Load(key string, v any)       {}
func (failingStore) Save(key string, v any) error { return errors.New("disk full") }
func (failingStore) Close() error                 { return nil }

func TestMutationsSurviveSaveFailure(t *testing.T) {
	repo := New(failingStore{}, zap.NewNop())

	added, err := repo.AddPlant(types.Plant{Name: "Fern", Type: "fern"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	list := repo.Plants(FilterAll, "")
	require.Len(t, list, 1)
	assert.Equal(t, added.ID, list[0].ID)

	require.NoError(t, repo.SetWateringSchedule(added.ID, types.WateringSchedule{}))
	require.NoError(t, repo.MarkWatered(added.ID, ""))
	assert.Len(t, repo.History(added.ID, 0), 1)
}
