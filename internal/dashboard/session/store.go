// Package session holds the dashboard's single authenticated-user
// record. The store is purely in-memory: it never touches the network
// or the credential file.
package session

import (
	"sync"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

// User is the session-side view of the authenticated operator.
type User struct {
	UserID string
	Name   string
	Email  string
	Phone  string
	Role   domain.Role
}

// State is a snapshot of the store.
type State struct {
	// User is nil while unauthenticated.
	User *User
	// Loading is true only while an identity resolution is in flight.
	Loading bool
}

// Listener receives the new state synchronously after each transition.
type Listener func(State)

// Store holds at most one authenticated user and a loading flag. The
// only three transitions are SetUser, Clear, and SetLoading; nothing
// merges or skips them.
type Store struct {
	mu        sync.Mutex
	user      *User
	loading   bool
	listeners []Listener
}

// NewStore returns an empty, non-loading store.
func NewStore() *Store {
	return &Store{}
}

// SetUser populates the session and forces the loading flag off.
func (s *Store) SetUser(user User) {
	s.mu.Lock()
	u := user
	s.user = &u
	s.loading = false
	state := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, state)
}

// Clear empties the session and forces the loading flag off.
func (s *Store) Clear() {
	s.mu.Lock()
	s.user = nil
	s.loading = false
	state := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, state)
}

// SetLoading sets only the loading flag, leaving the user untouched.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	state := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, state)
}

// Get returns the current snapshot.
func (s *Store) Get() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a listener invoked synchronously on every
// transition. It returns an unsubscribe function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, l)
	idx := len(s.listeners) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < len(s.listeners) {
			s.listeners[idx] = nil
		}
	}
}

func (s *Store) snapshotLocked() State {
	state := State{Loading: s.loading}
	if s.user != nil {
		u := *s.user
		state.User = &u
	}
	return state
}

func (s *Store) listenersLocked() []Listener {
	out := make([]Listener, len(s.listeners))
	copy(out, s.listeners)
	return out
}

// notify runs outside the lock so listeners can call back into the
// store without deadlocking, but still on the mutating goroutine so
// observers are never stale behind the transition that fired them.
func notify(listeners []Listener, state State) {
	for _, l := range listeners {
		if l != nil {
			l(state)
		}
	}
}
