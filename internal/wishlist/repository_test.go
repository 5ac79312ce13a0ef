package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/botanica-home/botanica/internal/storage"
	"github.com/botanica-home/botanica/pkg/types"
)

func newTestRepo(t *testing.T) (*Repository, storage.Store) {
	t.Helper()
	store, err := storage.NewJSONStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return New(store, zap.NewNop()), store
}

func TestAddWishStampsAndOrders(t *testing.T) {
	repo, _ := newTestRepo(t)

	first := repo.AddWish(types.WishItem{Name: "Pilea", Note: "saw it at the market"})
	second := repo.AddWish(types.WishItem{Name: "String of Pearls", Link: "https://example.com/sop"})

	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	got := repo.Wishes()
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "most recent first")
	assert.Equal(t, first.ID, got[1].ID)
}

func TestWishByID(t *testing.T) {
	repo, _ := newTestRepo(t)

	added := repo.AddWish(types.WishItem{Name: "Pilea"})

	got, ok := repo.WishByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Pilea", got.Name)

	_, ok = repo.WishByID("missing")
	assert.False(t, ok)
}

func TestDeleteWish(t *testing.T) {
	repo, _ := newTestRepo(t)

	added := repo.AddWish(types.WishItem{Name: "Pilea"})

	assert.True(t, repo.DeleteWish(added.ID))
	assert.False(t, repo.DeleteWish(added.ID))
	assert.Empty(t, repo.Wishes())
}

func TestWishRoundTripFreshRepository(t *testing.T) {
	repo, store := newTestRepo(t)

	added := repo.AddWish(types.WishItem{
		Name:  "Alocasia",
		Note:  "when on sale",
		Link:  "https://example.com/alocasia",
		Image: "data:image/png;base64,AAAA",
	})

	fresh := New(store, zap.NewNop())
	got, ok := fresh.WishByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, added.Name, got.Name)
	assert.Equal(t, added.Note, got.Note)
	assert.Equal(t, added.Link, got.Link)
	assert.Equal(t, added.Image, got.Image)
	assert.True(t, added.CreatedAt.Equal(got.CreatedAt))
}
