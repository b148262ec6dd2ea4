package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithSeed preloads the store with assessments, normalizing dates the same
// way Create does. Intended for tests and demos.
func WithSeed(assessments []model.Assessment) Option {
	return func(s *MemStore) {
		for _, a := range assessments {
			a.Date = model.DateOnly(a.Date)
			s.items = append(s.items, a)
			s.ids[a.ID] = struct{}{}
		}
	}
}

// MemStore is the in-memory Store used by default and in tests. Reads return
// copies of the backing slice, so callers can never observe later writes.
type MemStore struct {
	mu    sync.RWMutex
	items []model.Assessment
	ids   map[string]struct{}
}

// NewMemStore creates an empty in-memory assessment store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{ids: make(map[string]struct{})}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create persists a new assessment, normalizing its date to a UTC calendar day.
func (s *MemStore) Create(_ context.Context, a model.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[a.ID]; ok {
		return ErrDuplicateID
	}
	a.Date = model.DateOnly(a.Date)
	s.items = append(s.items, a)
	s.ids[a.ID] = struct{}{}
	return nil
}

// List returns matching assessments ordered by date, then creation time.
func (s *MemStore) List(_ context.Context, f Filter) ([]model.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Assessment, 0, len(s.items))
	for _, a := range s.items {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Count returns the number of persisted assessments.
func (s *MemStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
