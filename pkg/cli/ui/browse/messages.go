package browse

import "github.com/mergington/activities/pkg/roster"

// rosterLoadedMsg carries a fresh roster snapshot from the server.
type rosterLoadedMsg struct {
	roster roster.Roster
}

// rosterLoadErrMsg signals that the roster fetch failed. The list area shows
// a static failure notice until the next successful reload.
type rosterLoadErrMsg struct {
	err error
}

// signupDoneMsg signals a successful signup. message is the server-provided
// success text.
type signupDoneMsg struct {
	activity string
	email    string
	message  string
}

// signupErrMsg signals a failed signup.
type signupErrMsg struct {
	activity string
	email    string
	err      error
}

// unregisterDoneMsg signals a successful unregister.
type unregisterDoneMsg struct {
	activity string
	email    string
}

// unregisterErrMsg signals a failed unregister.
type unregisterErrMsg struct {
	activity string
	email    string
	err      error
}

// statusExpiredMsg fires when a scheduled status dismissal comes due. The
// generation identifies which banner the timer belongs to; stale timers are
// ignored.
type statusExpiredMsg struct {
	generation int
}
