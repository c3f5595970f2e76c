// Package model defines the core domain types for the activity signup service.
package model

// Activity represents a single extracurricular offering.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// Remaining returns the number of open spots.
func (a *Activity) Remaining() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull returns true when the participant list has reached capacity.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// IsRegistered returns true when email is already on the participant list.
func (a *Activity) IsRegistered(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the activity.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return &c
}

// Roster maps activity name to its record.
type Roster map[string]*Activity

// Clone returns a deep copy of the roster.
func (r Roster) Clone() Roster {
	c := make(Roster, len(r))
	for name, activity := range r {
		c[name] = activity.Clone()
	}
	return c
}

// MessageResponse is the JSON envelope for successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope for error responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
