package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityHelpers(t *testing.T) {
	a := &Activity{
		MaxParticipants: 2,
		Participants:    []string{"a@mergington.edu"},
	}

	assert.Equal(t, 1, a.Remaining())
	assert.False(t, a.IsFull())
	assert.True(t, a.IsRegistered("a@mergington.edu"))
	assert.False(t, a.IsRegistered("b@mergington.edu"))

	a.Participants = append(a.Participants, "b@mergington.edu")
	assert.True(t, a.IsFull())
	assert.Equal(t, 0, a.Remaining())
}

func TestRosterCloneIsDeep(t *testing.T) {
	r := Roster{
		"Chess Club": {
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
	}

	c := r.Clone()
	c["Chess Club"].Participants[0] = "someone@else.edu"
	c["Chess Club"].Participants = append(c["Chess Club"].Participants, "extra@mergington.edu")

	assert.Equal(t, []string{"michael@mergington.edu"}, r["Chess Club"].Participants)
}
