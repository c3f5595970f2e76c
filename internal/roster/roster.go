// Package roster implements the in-memory store of activities and their
// participant lists. It is the only owner of roster state; all access goes
// through Store methods under a single mutex.
package roster

import (
	"errors"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// ErrNotFound is returned when a requested activity does not exist.
var ErrNotFound = errors.New("activity not found")

// ErrAlreadyRegistered is returned when the same email signs up twice.
var ErrAlreadyRegistered = errors.New("email already signed up for this activity")

// ErrNotRegistered is returned when unregistering an email that is not on
// the participant list.
var ErrNotRegistered = errors.New("email not signed up for this activity")

// ErrActivityFull is returned when capacity enforcement is on and an
// activity has no remaining spots.
var ErrActivityFull = errors.New("activity is full")

// Store holds the roster for the lifetime of the process.
type Store struct {
	mu               sync.RWMutex
	activities       model.Roster
	capacityEnforced bool
}

// NewStore constructs a Store seeded with the given roster. The seed is
// cloned so the caller cannot alias live state.
func NewStore(seed model.Roster, capacityEnforced bool) *Store {
	return &Store{
		activities:       seed.Clone(),
		capacityEnforced: capacityEnforced,
	}
}

// List returns a deep-copy snapshot of the full roster.
func (s *Store) List() model.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activities.Clone()
}

// Get returns a copy of a single activity or ErrNotFound.
func (s *Store) Get(name string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activity, ok := s.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	return activity.Clone(), nil
}

// Count returns the number of activities in the roster.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// Signup appends email to the activity's participant list. Duplicates are
// rejected before capacity so a student already on a full list gets the
// duplicate error, matching what the list actually shows.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if activity.IsRegistered(email) {
		return ErrAlreadyRegistered
	}
	if s.capacityEnforced && activity.IsFull() {
		return ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list, preserving
// the order of the remaining participants.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}
