// Package service implements business logic and orchestration between HTTP
// handlers and the roster store.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/observability"
	"github.com/mergington/activities/internal/roster"
)

// ActivityService orchestrates roster operations.
type ActivityService struct {
	store *roster.Store
}

// NewActivityService constructs an ActivityService.
func NewActivityService(store *roster.Store) *ActivityService {
	return &ActivityService{store: store}
}

// ListActivities returns a snapshot of the full roster.
func (s *ActivityService) ListActivities() model.Roster {
	return s.store.List()
}

// Signup registers email for the named activity and returns a confirmation
// message. Sentinel errors from the store pass through untouched so handlers
// can set the correct HTTP status.
func (s *ActivityService) Signup(name, email string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		observability.RecordRejection("invalid")
		return "", fmt.Errorf("activity name is required")
	}
	// Emails are opaque identifiers; the only requirement is that one was
	// actually supplied.
	if strings.TrimSpace(email) == "" {
		observability.RecordRejection("invalid")
		return "", fmt.Errorf("email is required")
	}

	if err := s.store.Signup(name, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return "", err
	}

	observability.RecordSignup()
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns a
// confirmation message.
func (s *ActivityService) Unregister(name, email string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		observability.RecordRejection("invalid")
		return "", fmt.Errorf("activity name is required")
	}
	if strings.TrimSpace(email) == "" {
		observability.RecordRejection("invalid")
		return "", fmt.Errorf("email is required")
	}

	if err := s.store.Unregister(name, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return "", err
	}

	observability.RecordUnregistration()
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, roster.ErrNotFound):
		return "not_found"
	case errors.Is(err, roster.ErrAlreadyRegistered):
		return "duplicate"
	case errors.Is(err, roster.ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, roster.ErrActivityFull):
		return "full"
	default:
		return "other"
	}
}
