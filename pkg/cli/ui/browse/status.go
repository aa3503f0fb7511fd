package browse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusKind classifies a status banner message.
type statusKind int

const (
	// statusSuccess renders the banner in the success style.
	statusSuccess statusKind = iota
	// statusError renders the banner in the error style.
	statusError
)

// statusBanner is the transient feedback element reflecting the outcome of
// the last user-initiated action. Every show bumps the generation, which
// invalidates any dismissal timer scheduled for an earlier message; a new
// timer is only scheduled when the caller asks for auto-hide. Unregister
// failures deliberately skip auto-hide and stay visible until the next
// operation replaces them.
type statusBanner struct {
	kind       statusKind
	text       string
	visible    bool
	generation int
	hideDelay  time.Duration
}

// show displays text in the given style and returns the dismissal command,
// or nil when autoHide is false.
func (b *statusBanner) show(kind statusKind, text string, autoHide bool) tea.Cmd {
	b.kind = kind
	b.text = text
	b.visible = true
	b.generation++

	if !autoHide {
		return nil
	}

	generation := b.generation

	return tea.Tick(b.hideDelay, func(time.Time) tea.Msg {
		return statusExpiredMsg{generation: generation}
	})
}

// expire hides the banner if the timer that fired belongs to the currently
// shown message.
func (b *statusBanner) expire(generation int) {
	if generation == b.generation {
		b.visible = false
	}
}
