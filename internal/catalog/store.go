package catalog

import (
	"fmt"
	"sync/atomic"

	"mallmap/server/internal/models"
)

// Store is an immutable snapshot of the mall catalog
type Store struct {
	malls []models.Mall
	byID  map[string]int
}

// NewStore indexes malls by id. The slice is copied so later changes by the
// caller do not leak into the store.
func NewStore(malls []models.Mall) (*Store, error) {
	s := &Store{
		malls: make([]models.Mall, len(malls)),
		byID:  make(map[string]int, len(malls)),
	}
	copy(s.malls, malls)

	for i, m := range s.malls {
		if _, exists := s.byID[m.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
		}
		s.byID[m.ID] = i
	}
	return s, nil
}

// All returns the malls in catalog order. The returned slice is a copy.
func (s *Store) All() []models.Mall {
	out := make([]models.Mall, len(s.malls))
	copy(out, s.malls)
	return out
}

// Len returns the number of malls in the store
func (s *Store) Len() int {
	return len(s.malls)
}

// FindByID looks a mall up by exact id. The bool is false when no mall has
// that id.
func (s *Store) FindByID(id string) (models.Mall, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Mall{}, false
	}
	return s.malls[i], true
}

// Holder publishes the current Store snapshot to concurrent readers
type Holder struct {
	current atomic.Pointer[Store]
}

func NewHolder(store *Store) *Holder {
	h := &Holder{}
	if store != nil {
		h.current.Store(store)
	}
	return h
}

// Current returns the active snapshot, or nil if none was loaded
func (h *Holder) Current() *Store {
	return h.current.Load()
}

// Swap replaces the active snapshot and returns the previous one
func (h *Holder) Swap(store *Store) *Store {
	return h.current.Swap(store)
}
