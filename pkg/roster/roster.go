// Package roster defines the activity roster data model shared by the
// transport client and the UI layers.
package roster

import "sort"

// Activity describes a single extracurricular activity as reported by the
// server. Participants keeps the server-authoritative order.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity for the activity. It is derived
// from the snapshot on every call and never stored.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant reports whether email is registered for the activity.
func (a Activity) HasParticipant(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}

	return false
}

// Roster maps activity names to activities. It is fetched wholesale on every
// sync; the client holds no copy between program runs.
type Roster map[string]Activity

// Names returns the activity names in sorted order so rendering and
// selection controls are deterministic.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
