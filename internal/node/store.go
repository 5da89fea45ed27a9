package node

import (
	"sync"
	"time"
)

// Status summarizes the state of a Store.
type Status struct {
	Path      string    `json:"path" example:"/etc/vibelight/node.toml" doc:"Configuration file"`
	Loaded    bool      `json:"loaded" doc:"Whether a valid configuration is active"`
	LoadedAt  time.Time `json:"loaded_at,omitzero" doc:"Time the active configuration was loaded"`
	LastError string    `json:"last_error,omitempty" doc:"Error of the most recent failed load"`
}

// Store holds the active configuration. A failed reload records the error but
// keeps serving the last valid configuration.
type Store struct {
	mu       sync.RWMutex
	path     string
	cfg      Config
	loaded   bool
	loadedAt time.Time
	lastErr  error
}

// NewStore creates an empty store for the given file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Set activates cfg and clears the last error.
func (s *Store) Set(cfg Config, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.loaded = true
	s.loadedAt = at
	s.lastErr = nil
}

// Fail records a failed load.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

// Current returns the active configuration and whether one was ever loaded.
func (s *Store) Current() (Config, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.loaded
}

// Status returns a snapshot for reporting.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{Path: s.path, Loaded: s.loaded, LoadedAt: s.loadedAt}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}
