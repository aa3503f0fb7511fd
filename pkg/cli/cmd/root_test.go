package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/pkg/cli/cmd"
	"github.com/mergington/activities/pkg/cli/ui/confirm"
	"github.com/mergington/activities/pkg/io/configmanager"
	"github.com/mergington/activities/pkg/roster"
)

var errServiceDown = errors.New("service unavailable")

// fakeService records calls and returns canned responses.
type fakeService struct {
	roster        roster.Roster
	listErr       error
	signupMessage string
	signupErr     error
	unregisterErr error

	signupCalls     []string
	unregisterCalls []string
}

func (f *fakeService) List(_ context.Context) (roster.Roster, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.roster, nil
}

func (f *fakeService) Signup(_ context.Context, activity, email string) (string, error) {
	f.signupCalls = append(f.signupCalls, activity+"/"+email)

	if f.signupErr != nil {
		return "", f.signupErr
	}

	return f.signupMessage, nil
}

func (f *fakeService) Unregister(_ context.Context, activity, email string) error {
	f.unregisterCalls = append(f.unregisterCalls, activity+"/"+email)

	return f.unregisterErr
}

func testDeps(service *fakeService) cmd.Deps {
	return cmd.Deps{
		Service: service,
		Config: &configmanager.Config{
			ServerURL:       "http://localhost:8000",
			RequestTimeout:  configmanager.DefaultRequestTimeout,
			StatusHideDelay: configmanager.DefaultStatusHideDelay,
		},
	}
}

func testRoster() roster.Roster {
	return roster.Roster{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"michael@mergington.edu"},
		},
	}
}

// newTestCommand builds a bare command with an output buffer and the given
// flag registration applied.
func newTestCommand(registerFlags func(*cobra.Command)) (*cobra.Command, *bytes.Buffer) {
	command := &cobra.Command{Use: "test"}

	if registerFlags != nil {
		registerFlags(command)
	}

	var out bytes.Buffer

	command.SetOut(&out)
	command.SetErr(&out)

	return command, &out
}

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("1.0.0", "abc123", "2026-01-01")

	var names []string

	for _, subCmd := range rootCmd.Commands() {
		names = append(names, subCmd.Name())
	}

	assert.Contains(t, names, "list")
	assert.Contains(t, names, "signup")
	assert.Contains(t, names, "unregister")
	assert.Contains(t, names, "browse")
	assert.Contains(t, rootCmd.Version, "1.0.0")
	assert.Contains(t, rootCmd.Version, "abc123")
}

func TestRootCmdPrintsLogoAndHelp(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("1.0.0", "abc123", "2026-01-01")

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Mergington High School activity signup")
	assert.Contains(t, out.String(), "Available Commands")
}

func TestHandleListRunE(t *testing.T) {
	t.Parallel()

	service := &fakeService{roster: testRoster()}
	command, out := newTestCommand(func(c *cobra.Command) {
		c.Flags().Bool(cmd.WideFlagName, false, "")
	})

	err := cmd.HandleListRunE(command, testDeps(service))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Chess Club (9 spots left)")
	assert.NotContains(t, out.String(), "michael@mergington.edu")
}

func TestHandleListRunEWide(t *testing.T) {
	t.Parallel()

	service := &fakeService{roster: testRoster()}
	command, out := newTestCommand(func(c *cobra.Command) {
		c.Flags().Bool(cmd.WideFlagName, true, "")
	})

	err := cmd.HandleListRunE(command, testDeps(service))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Fridays, 3:30 PM - 5:00 PM")
	assert.Contains(t, out.String(), "Enrolled: 1/10")
	assert.Contains(t, out.String(), "michael@mergington.edu")
}

func TestHandleListRunEError(t *testing.T) {
	t.Parallel()

	service := &fakeService{listErr: errServiceDown}
	command, _ := newTestCommand(func(c *cobra.Command) {
		c.Flags().Bool(cmd.WideFlagName, false, "")
	})

	err := cmd.HandleListRunE(command, testDeps(service))

	require.Error(t, err)
	assert.ErrorIs(t, err, errServiceDown)
}

func TestHandleSignupRunE(t *testing.T) {
	t.Parallel()

	service := &fakeService{
		signupMessage: "Signed up ana@mergington.edu for Chess Club",
	}
	command, out := newTestCommand(nil)

	err := cmd.HandleSignupRunE(command, testDeps(service), "Chess Club", "ana@mergington.edu")

	require.NoError(t, err)
	assert.Equal(t, []string{"Chess Club/ana@mergington.edu"}, service.signupCalls)
	assert.Contains(t, out.String(), "Signed up ana@mergington.edu for Chess Club")
}

func TestHandleSignupRunEError(t *testing.T) {
	t.Parallel()

	service := &fakeService{signupErr: errServiceDown}
	command, _ := newTestCommand(nil)

	err := cmd.HandleSignupRunE(command, testDeps(service), "Chess Club", "ana@mergington.edu")

	require.Error(t, err)
	assert.ErrorIs(t, err, errServiceDown)
}

//nolint:paralleltest // mutates shared confirm prompt overrides
func TestHandleUnregisterRunEDeclined(t *testing.T) {
	restoreTTY := confirm.SetTTYCheckerForTests(func() bool { return true })
	defer restoreTTY()

	restoreStdin := confirm.SetStdinReaderForTests(bytes.NewBufferString("n\n"))
	defer restoreStdin()

	service := &fakeService{}
	command, out := newTestCommand(func(c *cobra.Command) {
		c.Flags().BoolP(cmd.ForceFlagName, "f", false, "")
	})

	err := cmd.HandleUnregisterRunE(
		command, testDeps(service), "Chess Club", "michael@mergington.edu",
	)

	require.ErrorIs(t, err, confirm.ErrUnregisterCancelled)
	assert.Empty(t, service.unregisterCalls, "declined confirmation must not send a request")
	assert.Contains(t, out.String(), "Remove michael@mergington.edu from Chess Club?")
}

//nolint:paralleltest // mutates shared confirm prompt overrides
func TestHandleUnregisterRunEConfirmed(t *testing.T) {
	restoreTTY := confirm.SetTTYCheckerForTests(func() bool { return true })
	defer restoreTTY()

	restoreStdin := confirm.SetStdinReaderForTests(bytes.NewBufferString("y\n"))
	defer restoreStdin()

	service := &fakeService{}
	command, out := newTestCommand(func(c *cobra.Command) {
		c.Flags().BoolP(cmd.ForceFlagName, "f", false, "")
	})

	err := cmd.HandleUnregisterRunE(
		command, testDeps(service), "Chess Club", "michael@mergington.edu",
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"Chess Club/michael@mergington.edu"}, service.unregisterCalls)
	assert.Contains(t, out.String(), "Unregistered michael@mergington.edu from Chess Club")
}

func TestHandleUnregisterRunEForceSkipsPrompt(t *testing.T) {
	t.Parallel()

	service := &fakeService{}
	command, out := newTestCommand(func(c *cobra.Command) {
		c.Flags().BoolP(cmd.ForceFlagName, "f", false, "")
	})

	err := command.Flags().Set(cmd.ForceFlagName, "true")
	require.NoError(t, err)

	err = cmd.HandleUnregisterRunE(
		command, testDeps(service), "Chess Club", "michael@mergington.edu",
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"Chess Club/michael@mergington.edu"}, service.unregisterCalls)
	assert.NotContains(t, out.String(), "Remove")
}

func TestHandleUnregisterRunEError(t *testing.T) {
	t.Parallel()

	service := &fakeService{unregisterErr: errServiceDown}
	command, _ := newTestCommand(func(c *cobra.Command) {
		c.Flags().BoolP(cmd.ForceFlagName, "f", false, "")
	})

	err := command.Flags().Set(cmd.ForceFlagName, "true")
	require.NoError(t, err)

	err = cmd.HandleUnregisterRunE(
		command, testDeps(service), "Chess Club", "michael@mergington.edu",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errServiceDown)
}
