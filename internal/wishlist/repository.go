// Package wishlist implements the wish-item repository: plain CRUD
// over a collection persisted separately from the plant collection.
// Wish items have no cascade relationships and no derived state.
package wishlist

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/botanica-home/botanica/internal/storage"
	"github.com/botanica-home/botanica/pkg/types"
)

// Repository owns the wishlist collection. Same persistence discipline
// as the plant repository: load on construction, write through on
// every mutation.
type Repository struct {
	mu     sync.RWMutex
	store  storage.Store
	logger *zap.Logger
	wishes []types.WishItem
	now    func() time.Time
}

// New constructs a Repository backed by store, loading the persisted
// collection.
func New(store storage.Store, logger *zap.Logger) *Repository {
	r := &Repository{
		store:  store,
		logger: logger,
		wishes: []types.WishItem{},
		now:    time.Now,
	}
	store.Load(storage.KeyWishlist, &r.wishes)
	return r
}

// AddWish stamps the item with an ID and creation time and inserts it
// at the head of the collection (most recent first).
func (r *Repository) AddWish(w types.WishItem) *types.WishItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	w.ID = types.NewID()
	w.CreatedAt = r.now()
	r.wishes = append([]types.WishItem{w}, r.wishes...)
	r.persist()

	added := r.wishes[0]
	return &added
}

// Wishes returns a copy of the collection in insertion order.
func (r *Repository) Wishes() []types.WishItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.WishItem, len(r.wishes))
	copy(out, r.wishes)
	return out
}

// WishByID returns a copy of the item, or false if no item has the
// given ID.
func (r *Repository) WishByID(id string) (*types.WishItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.wishes {
		if r.wishes[i].ID == id {
			w := r.wishes[i]
			return &w, true
		}
	}
	return nil, false
}

// DeleteWish removes the item by ID. Returns false if no item matched.
func (r *Repository) DeleteWish(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.wishes {
		if r.wishes[i].ID == id {
			r.wishes = append(r.wishes[:i], r.wishes[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

// persist writes the collection through to storage. Caller must hold
// r.mu.
func (r *Repository) persist() {
	if err := r.store.Save(storage.KeyWishlist, r.wishes); err != nil {
		r.logger.Warn("persisting wishlist failed, continuing in memory", zap.Error(err))
	}
}
