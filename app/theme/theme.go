// Package theme provides the shared theme state and the indicator shown for each mode.
// A State is the single source of truth for one mounted shell; consumers receive it
// through the Reader or Switch interfaces and never set the mode directly.
package theme

import (
	"sync"

	"github.com/umputun/themeshell/app/enum"
)

// Reader gives read access to the current mode.
type Reader interface {
	Mode() enum.Mode
}

// Switch gives read access to the current mode and the ability to flip it.
type Switch interface {
	Reader
	Toggle()
}

// State holds the current mode and notifies subscribers on every toggle.
type State struct {
	mu     sync.RWMutex
	mode   enum.Mode
	subs   map[int]func(enum.Mode)
	nextID int
}

// New creates a State in light mode.
func New() *State {
	return &State{mode: enum.ModeLight, subs: make(map[int]func(enum.Mode))}
}

// Mode returns the current mode.
func (s *State) Mode() enum.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Toggle flips the mode and calls every subscriber with the new value.
// Subscribers run synchronously, after the lock is released.
func (s *State) Toggle() {
	s.mu.Lock()
	s.mode = s.mode.Toggle()
	mode := s.mode
	subs := make([]func(enum.Mode), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(mode)
	}
}

// Subscribe registers fn to be called after each toggle and returns a function removing it.
func (s *State) Subscribe(fn func(enum.Mode)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}
