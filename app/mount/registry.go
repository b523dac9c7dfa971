// Package mount keeps track of live page mounts. Each mount owns its own shell and theme
// state. A mount is dropped explicitly on unload, once it is older than the configured TTL,
// or when it is the oldest one and the registry is full.
package mount

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/umputun/themeshell/app/enum"
	"github.com/umputun/themeshell/app/shell"
)

// ErrNotMounted is returned for unknown or expired mount ids.
var ErrNotMounted = errors.New("not mounted")

// defaults used when Config leaves a field empty
const (
	defaultTTL       = 24 * time.Hour
	defaultMaxMounts = 10000
)

// Config defines registry limits.
type Config struct {
	TTL       time.Duration // lifetime of a mount since creation
	MaxMounts int           // oldest mounts are evicted above this count
}

// Stats describes registry activity since creation.
type Stats struct {
	Mounts  int   // live mounts
	Hits    int64 // lookups of live mounts
	Misses  int64 // lookups of unknown or expired mounts
	Added   int64 // mounts created
	Dropped int64 // mounts unmounted, expired or evicted
	Toggles int64 // theme switches across all mounts
}

func (s Stats) String() string {
	return fmt.Sprintf("mounts:%d, hits:%d, misses:%d, added:%d, dropped:%d, toggles:%d",
		s.Mounts, s.Hits, s.Misses, s.Added, s.Dropped, s.Toggles)
}

// Registry holds live mounts keyed by id.
type Registry struct {
	cache *expirable.LRU[string, *shell.App]

	hits, misses, added, dropped, toggles atomic.Int64
}

// NewRegistry creates a registry with the given limits.
func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.TTL < 0 || cfg.MaxMounts < 0 {
		return nil, fmt.Errorf("invalid mount limits, ttl:%s, max:%d", cfg.TTL, cfg.MaxMounts)
	}
	if cfg.TTL == 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.MaxMounts == 0 {
		cfg.MaxMounts = defaultMaxMounts
	}
	r := &Registry{}
	r.cache = expirable.NewLRU[string, *shell.App](cfg.MaxMounts, r.onDrop, cfg.TTL)
	return r, nil
}

// Mount creates a new shell with a fresh theme state and registers it.
// A full registry makes room by dropping its oldest mount.
func (r *Registry) Mount() (string, *shell.App, error) {
	id := uuid.NewString()
	app := shell.NewApp()
	app.Subscribe(func(m enum.Mode) {
		r.toggles.Add(1)
		log.Printf("[DEBUG] mount %s switched to %s", id, m)
	})

	if evicted := r.cache.Add(id, app); evicted {
		log.Printf("[DEBUG] mount registry is full, oldest mount dropped")
	}
	if !r.cache.Contains(id) {
		return "", nil, fmt.Errorf("mount %s was not stored", id)
	}
	r.added.Add(1)
	log.Printf("[DEBUG] mounted %s", id)
	return id, app, nil
}

// Get returns the shell of a live mount.
func (r *Registry) Get(id string) (*shell.App, error) {
	if id == "" {
		r.misses.Add(1)
		return nil, ErrNotMounted
	}
	app, ok := r.cache.Get(id)
	if !ok || app == nil {
		r.misses.Add(1)
		return nil, fmt.Errorf("mount %q: %w", id, ErrNotMounted)
	}
	r.hits.Add(1)
	return app, nil
}

// Unmount drops a mount. Unknown ids are ignored.
func (r *Registry) Unmount(id string) {
	if r.cache.Remove(id) {
		log.Printf("[DEBUG] unmounted %s", id)
	}
}

// Stats returns registry statistics.
func (r *Registry) Stats() Stats {
	return Stats{
		Mounts:  r.cache.Len(),
		Hits:    r.hits.Load(),
		Misses:  r.misses.Load(),
		Added:   r.added.Load(),
		Dropped: r.dropped.Load(),
		Toggles: r.toggles.Load(),
	}
}

// Close drops all mounts.
func (r *Registry) Close() error {
	r.cache.Purge()
	return nil
}

func (r *Registry) onDrop(id string, _ *shell.App) {
	r.dropped.Add(1)
	log.Printf("[DEBUG] mount %s dropped", id)
}
