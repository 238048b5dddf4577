package platforms

import (
	"errors"

	"freecast/models"
)

// ErrNotFound is returned when a platform key is absent from the registry.
var ErrNotFound = errors.New("platform not found")

// Registry is the fixed set of free streaming platforms the service knows
// about. It is built once at startup and read-only afterwards, so it is safe
// to share across requests without locking.
type Registry struct {
	keys  []string
	descs map[string]models.PlatformDescriptor
}

// Entry pairs a platform key with its descriptor for ordered iteration.
type Entry struct {
	Key        string
	Descriptor models.PlatformDescriptor
}

// CastSummary counts how many platforms support each casting protocol.
type CastSummary struct {
	Chromecast     int `json:"chromecast"`
	Airplay        int `json:"airplay"`
	DLNA           int `json:"dlna"`
	TotalPlatforms int `json:"total_platforms"`
}

// New builds a registry from the given entries, preserving their order.
// Primarily useful for tests that need a small controlled registry.
func New(entries []Entry) *Registry {
	r := &Registry{descs: make(map[string]models.PlatformDescriptor, len(entries))}
	for _, e := range entries {
		if _, dup := r.descs[e.Key]; dup {
			continue
		}
		r.keys = append(r.keys, e.Key)
		r.descs[e.Key] = e.Descriptor
	}
	return r
}

// NewDefault builds the production registry with the full platform table.
func NewDefault() *Registry {
	return New(defaultEntries)
}

// Lookup returns the descriptor for a platform key.
func (r *Registry) Lookup(key string) (models.PlatformDescriptor, error) {
	d, ok := r.descs[key]
	if !ok {
		return models.PlatformDescriptor{}, ErrNotFound
	}
	return d, nil
}

// Has reports whether the key is present without fetching the descriptor.
func (r *Registry) Has(key string) bool {
	_, ok := r.descs[key]
	return ok
}

// All returns every platform in registration order.
func (r *Registry) All() []Entry {
	entries := make([]Entry, 0, len(r.keys))
	for _, k := range r.keys {
		entries = append(entries, Entry{Key: k, Descriptor: r.descs[k]})
	}
	return entries
}

// Map returns the full key-to-descriptor mapping for API responses.
func (r *Registry) Map() map[string]models.PlatformDescriptor {
	m := make(map[string]models.PlatformDescriptor, len(r.descs))
	for k, d := range r.descs {
		m[k] = d
	}
	return m
}

// Len returns the number of registered platforms.
func (r *Registry) Len() int {
	return len(r.keys)
}

// EligibleFor returns the keys of all platforms carrying the given content
// type, in registration order.
func (r *Registry) EligibleFor(ct models.ContentType) []string {
	var keys []string
	for _, k := range r.keys {
		if r.descs[k].SupportsContentType(ct) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Summary tallies casting protocol support across the whole registry.
func (r *Registry) Summary() CastSummary {
	s := CastSummary{TotalPlatforms: len(r.keys)}
	for _, k := range r.keys {
		cs := r.descs[k].CastSupport
		if cs.Chromecast {
			s.Chromecast++
		}
		if cs.Airplay {
			s.Airplay++
		}
		if cs.DLNA {
			s.DLNA++
		}
	}
	return s
}
