// Package browse implements the interactive roster browser: an activity
// list with remaining capacity, a participant panel with per-participant
// removal, a signup form, and a transient status banner.
//
// The UI state lives in a single Model; every render derives "spots left"
// from the current roster snapshot, and every mutation triggers a fresh
// wholesale fetch. Overlapping requests are not cancelled; the last
// response to arrive determines the rendered state.
package browse

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mergington/activities/pkg/client/activities"
	"github.com/mergington/activities/pkg/io/configmanager"
	"github.com/mergington/activities/pkg/roster"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	emailCharLimit  = 254
	emailInputWidth = 40
)

// Generic fallback texts for failures that carry no server detail.
const (
	genericErrorText     = "An error occurred"
	loadFailedText       = "Failed to load activities. Please try again later."
	signupFailedText     = "Failed to sign up. Please try again."
	unregisterFailedText = "Failed to unregister. Please try again."
	unregisteredText     = "Unregistered from activity"
)

// focusArea identifies which panel receives key input.
type focusArea int

const (
	focusActivities focusArea = iota
	focusParticipants
	focusForm
)

// confirmPrompt holds a pending unregister awaiting user confirmation.
// Declining discards it without sending anything.
type confirmPrompt struct {
	activity string
	email    string
}

// Options configures the browse TUI.
type Options struct {
	// Service performs the roster operations.
	Service activities.Service
	// RequestTimeout bounds each request. Zero means the configmanager
	// default.
	RequestTimeout time.Duration
	// StatusHideDelay is the status banner auto-dismiss delay. Zero means
	// the configmanager default.
	StatusHideDelay time.Duration
	// ErrLog receives diagnostic lines for failed operations. Nil discards
	// them. The TUI owns the terminal, so callers buffer this and flush it
	// after the program exits.
	ErrLog io.Writer
}

// Model is the Bubbletea model for the browse TUI.
type Model struct {
	// Dependencies
	service        activities.Service
	requestTimeout time.Duration
	errLog         io.Writer

	// Roster snapshot
	roster     roster.Roster
	names      []string
	loaded     bool
	loadFailed bool

	// Request tracking: number of in-flight requests, drives the spinner.
	// Requests are never cancelled; overlapping responses apply last-wins.
	pending int

	// Navigation
	focus             focusArea
	cursor            int
	participantCursor int

	// Components
	emailInput textinput.Model
	spinner    spinner.Model
	help       help.Model
	keys       KeyMap

	// Status banner
	status statusBanner

	// Pending unregister confirmation, nil when no modal is shown.
	confirm *confirmPrompt

	// Dimensions
	width  int
	height int

	quitting bool
}

// New creates a browse model.
func New(opts Options) *Model {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = configmanager.DefaultRequestTimeout
	}

	if opts.StatusHideDelay <= 0 {
		opts.StatusHideDelay = configmanager.DefaultStatusHideDelay
	}

	if opts.ErrLog == nil {
		opts.ErrLog = io.Discard
	}

	emailInput := textinput.New()
	emailInput.Placeholder = "your-email@mergington.edu"
	emailInput.CharLimit = emailCharLimit
	emailInput.Width = emailInputWidth

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = dimStyle

	return &Model{
		service:        opts.Service,
		requestTimeout: opts.RequestTimeout,
		errLog:         opts.ErrLog,
		emailInput:     emailInput,
		spinner:        spin,
		help:           help.New(),
		keys:           DefaultKeyMap(),
		status:         statusBanner{hideDelay: opts.StatusHideDelay},
		width:          defaultWidth,
		height:         defaultHeight,
	}
}

// Init loads the roster and starts the spinner.
func (m *Model) Init() tea.Cmd {
	m.pending++

	return tea.Batch(m.spinner.Tick, m.loadRosterCmd())
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case rosterLoadedMsg:
		m.finishRequest()
		m.applyRoster(msg.roster)

		return m, nil

	case rosterLoadErrMsg:
		m.finishRequest()
		m.loadFailed = true
		m.roster = nil
		m.names = nil
		fmt.Fprintf(m.errLog, "Error fetching activities: %v\n", msg.err)

		return m, nil

	case signupDoneMsg:
		return m.handleSignupDone(msg)

	case signupErrMsg:
		m.finishRequest()
		fmt.Fprintf(m.errLog, "Error signing up: %v\n", msg.err)

		// Server detail text when present, generic fallback otherwise.
		// The form keeps its contents so the user can correct and retry.
		return m, m.status.show(statusError, errorText(msg.err, signupFailedText), true)

	case unregisterDoneMsg:
		m.finishRequest()
		m.pending++

		// Fixed client-side success text; unlike signup, the server message
		// is not used here.
		return m, tea.Batch(
			m.status.show(statusSuccess, unregisteredText, true),
			m.loadRosterCmd(),
			m.spinner.Tick,
		)

	case unregisterErrMsg:
		m.finishRequest()
		fmt.Fprintf(m.errLog, "Error unregistering: %v\n", msg.err)

		// No auto-hide on this path: the message stays until the next
		// operation replaces it.
		return m, m.status.show(statusError, errorText(msg.err, unregisterFailedText), false)

	case statusExpiredMsg:
		m.status.expire(msg.generation)

		return m, nil
	}

	return m, nil
}

// handleSignupDone applies a successful signup: show the server's message,
// clear the form, and re-sync the roster.
func (m *Model) handleSignupDone(msg signupDoneMsg) (tea.Model, tea.Cmd) {
	m.finishRequest()
	m.emailInput.Reset()
	m.pending++

	text := msg.message
	if text == "" {
		text = fmt.Sprintf("Signed up %s for %s", msg.email, msg.activity)
	}

	return m, tea.Batch(
		m.status.show(statusSuccess, text, true),
		m.loadRosterCmd(),
		m.spinner.Tick,
	)
}

// handleKeyMsg routes key input to the confirm modal, the signup form, or
// the browse panels.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, including the form.
	if msg.String() == "ctrl+c" {
		m.quitting = true

		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.handleConfirmKeys(msg)
	}

	if m.focus == focusForm {
		return m.handleFormKeys(msg)
	}

	return m.handleBrowseKeys(msg)
}

// handleConfirmKeys resolves the unregister confirmation modal.
func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		prompt := *m.confirm
		m.confirm = nil
		m.pending++

		return m, tea.Batch(
			m.unregisterCmd(prompt.activity, prompt.email),
			m.spinner.Tick,
		)

	case key.Matches(msg, m.keys.Deny):
		// Declined: no request is sent and nothing changes.
		m.confirm = nil

		return m, nil
	}

	return m, nil
}

// handleFormKeys drives the signup email form.
func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = focusActivities
		m.emailInput.Blur()

		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitSignup()
	}

	var cmd tea.Cmd

	m.emailInput, cmd = m.emailInput.Update(msg)

	return m, cmd
}

// submitSignup issues the signup request for the selected activity.
func (m *Model) submitSignup() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.emailInput.Value())
	if email == "" {
		return m, nil
	}

	activity, ok := m.selectedActivity()
	if !ok {
		return m, nil
	}

	m.pending++

	return m, tea.Batch(m.signupCmd(activity, email), m.spinner.Tick)
}

// handleBrowseKeys drives the activity and participant panels.
func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.NextPanel):
		m.togglePanel()

	case key.Matches(msg, m.keys.Signup):
		if m.loaded && len(m.names) > 0 {
			m.focus = focusForm

			return m, m.emailInput.Focus()
		}

	case key.Matches(msg, m.keys.Remove):
		m.openConfirm()

	case key.Matches(msg, m.keys.Reload):
		m.pending++

		return m, tea.Batch(m.loadRosterCmd(), m.spinner.Tick)
	}

	return m, nil
}

// moveCursor moves the cursor in the focused panel, clamped to its bounds.
func (m *Model) moveCursor(delta int) {
	if m.focus == focusParticipants {
		participants := m.selectedParticipants()
		m.participantCursor = clamp(m.participantCursor+delta, 0, len(participants)-1)

		return
	}

	previous := m.cursor
	m.cursor = clamp(m.cursor+delta, 0, len(m.names)-1)

	if m.cursor != previous {
		m.participantCursor = 0
	}
}

// togglePanel switches focus between the activity list and the participant
// panel.
func (m *Model) togglePanel() {
	if m.focus == focusActivities && len(m.selectedParticipants()) > 0 {
		m.focus = focusParticipants

		return
	}

	m.focus = focusActivities
}

// openConfirm opens the unregister confirmation for the participant under
// the cursor.
func (m *Model) openConfirm() {
	if m.focus != focusParticipants {
		return
	}

	activity, ok := m.selectedActivity()
	if !ok {
		return
	}

	participants := m.selectedParticipants()
	if m.participantCursor >= len(participants) {
		return
	}

	m.confirm = &confirmPrompt{
		activity: activity,
		email:    participants[m.participantCursor],
	}
}

// applyRoster replaces the rendered snapshot with a fresh one.
func (m *Model) applyRoster(rst roster.Roster) {
	m.roster = rst
	m.names = rst.Names()
	m.loaded = true
	m.loadFailed = false
	m.cursor = clamp(m.cursor, 0, len(m.names)-1)
	m.participantCursor = clamp(m.participantCursor, 0, len(m.selectedParticipants())-1)

	if m.focus == focusParticipants && len(m.selectedParticipants()) == 0 {
		m.focus = focusActivities
	}
}

// finishRequest marks one in-flight request as complete.
func (m *Model) finishRequest() {
	if m.pending > 0 {
		m.pending--
	}
}

// selectedActivity returns the activity name under the cursor.
func (m *Model) selectedActivity() (string, bool) {
	if len(m.names) == 0 || m.cursor >= len(m.names) {
		return "", false
	}

	return m.names[m.cursor], true
}

// selectedParticipants returns the participant list of the selected
// activity in server order.
func (m *Model) selectedParticipants() []string {
	name, ok := m.selectedActivity()
	if !ok {
		return nil
	}

	return m.roster[name].Participants
}

// loadRosterCmd fetches the full roster.
func (m *Model) loadRosterCmd() tea.Cmd {
	service := m.service
	timeout := m.requestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		rst, err := service.List(ctx)
		if err != nil {
			return rosterLoadErrMsg{err: err}
		}

		return rosterLoadedMsg{roster: rst}
	}
}

// signupCmd submits a signup request.
func (m *Model) signupCmd(activity, email string) tea.Cmd {
	service := m.service
	timeout := m.requestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		message, err := service.Signup(ctx, activity, email)
		if err != nil {
			return signupErrMsg{activity: activity, email: email, err: err}
		}

		return signupDoneMsg{activity: activity, email: email, message: message}
	}
}

// unregisterCmd submits an unregister request.
func (m *Model) unregisterCmd(activity, email string) tea.Cmd {
	service := m.service
	timeout := m.requestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := service.Unregister(ctx, activity, email)
		if err != nil {
			return unregisterErrMsg{activity: activity, email: email, err: err}
		}

		return unregisterDoneMsg{activity: activity, email: email}
	}
}

// errorText extracts the server-provided detail from err, falling back to
// the generic text for API failures without detail, and to requestFallback
// for transport or decoding failures.
func errorText(err error, requestFallback string) string {
	if _, ok := activities.AsAPIError(err); ok {
		return activities.Detail(err, genericErrorText)
	}

	return requestFallback
}

// clamp bounds value to [low, high]. A negative high collapses to low.
func clamp(value, low, high int) int {
	if high < low {
		high = low
	}

	return min(max(value, low), high)
}

// Run starts the browse TUI and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	model := New(opts)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := program.Run()
	if err != nil {
		return fmt.Errorf("running browse program: %w", err)
	}

	return nil
}
