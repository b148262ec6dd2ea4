// Package directory resolves trainer and manager ids to display profiles
// (name and team). Reports must never fail on a missing profile, so unknown
// ids resolve to themselves.
package directory

import (
	"context"
	"sync"
)

// Profile is the display identity of a trainer or manager.
type Profile struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// Directory resolves ids to profiles.
type Directory interface {
	// Resolve returns a profile for every requested id. Unknown ids map to a
	// profile whose Name is the id itself.
	Resolve(ctx context.Context, ids []string) (map[string]Profile, error)
}

// MemDirectory is an in-memory Directory populated via Register.
type MemDirectory struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewMemDirectory creates an empty in-memory directory.
func NewMemDirectory() *MemDirectory {
	return &MemDirectory{profiles: make(map[string]Profile)}
}

// Register adds or replaces the profile for an id.
func (d *MemDirectory) Register(id string, p Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profiles[id] = p
}

// Resolve implements Directory.
func (d *MemDirectory) Resolve(_ context.Context, ids []string) (map[string]Profile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]Profile, len(ids))
	for _, id := range ids {
		if p, ok := d.profiles[id]; ok {
			out[id] = p
		} else {
			out[id] = Profile{Name: id}
		}
	}
	return out, nil
}

// Names flattens a resolved profile map to id -> display name.
func Names(profiles map[string]Profile) map[string]string {
	names := make(map[string]string, len(profiles))
	for id, p := range profiles {
		names[id] = p.Name
	}
	return names
}
