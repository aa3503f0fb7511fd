package roster_test

import (
	"testing"

	"github.com/mergington/activities/pkg/roster"
	"github.com/stretchr/testify/assert"
)

func TestActivitySpotsLeft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		activity roster.Activity
		expected int
	}{
		{
			name: "capacity minus participants",
			activity: roster.Activity{
				MaxParticipants: 10,
				Participants:    []string{"a@x.com"},
			},
			expected: 9,
		},
		{
			name: "empty activity keeps full capacity",
			activity: roster.Activity{
				MaxParticipants: 12,
			},
			expected: 12,
		},
		{
			name: "full activity has zero spots",
			activity: roster.Activity{
				MaxParticipants: 2,
				Participants:    []string{"a@x.com", "b@x.com"},
			},
			expected: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.activity.SpotsLeft())
		})
	}
}

func TestActivityHasParticipant(t *testing.T) {
	t.Parallel()

	activity := roster.Activity{
		MaxParticipants: 10,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}

	assert.True(t, activity.HasParticipant("michael@mergington.edu"))
	assert.False(t, activity.HasParticipant("sophia@mergington.edu"))
}

func TestRosterNamesAreSorted(t *testing.T) {
	t.Parallel()

	rst := roster.Roster{
		"Programming Class": {},
		"Basketball Team":   {},
		"Chess Club":        {},
	}

	assert.Equal(
		t,
		[]string{"Basketball Team", "Chess Club", "Programming Class"},
		rst.Names(),
	)
}

func TestRosterNamesEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, roster.Roster{}.Names())
}
