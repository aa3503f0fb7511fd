package errorhandler_test

import (
	"errors"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/pkg/cli/ui/errorhandler"
)

var errSignupRejected = errors.New("server returned status 400: Student is already signed up")

func TestExecuteSuccessReturnsNil(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use: "activities",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	cmd.SetOut(io.Discard)

	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)

	assert.NoError(t, err)
}

func TestExecuteNilCommandReturnsNil(t *testing.T) {
	t.Parallel()

	executor := errorhandler.NewExecutor()

	assert.NoError(t, executor.Execute(nil))
}

func TestExecutePreservesErrorChain(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:           "activities",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return errSignupRejected
		},
	}
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errSignupRejected)

	var cmdErr *errorhandler.CommandError

	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Error(), "Student is already signed up")
}

func TestExecuteNormalizesStderrPrefix(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "activities"}
	root.AddCommand(&cobra.Command{Use: "list"})
	root.SetArgs([]string{"bogus"})
	root.SetOut(io.Discard)

	executor := errorhandler.NewExecutor()

	err := executor.Execute(root)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "Error: Error:")
}
