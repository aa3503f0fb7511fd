package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	runtime "github.com/mergington/activities/pkg/di"
	"github.com/mergington/activities/pkg/ui/notify"
)

// NewSignupCmd wires the signup command using the shared runtime container.
func NewSignupCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:          "signup <activity> <email>",
		Short:        "Sign a student up for an activity",
		Long:         "Sign a student up for an activity by name and email address.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := resolveDeps(cmd, runtimeContainer)
			if err != nil {
				return err
			}

			return HandleSignupRunE(cmd, deps, args[0], args[1])
		},
	}
}

// HandleSignupRunE submits the signup and prints the server's confirmation
// message.
func HandleSignupRunE(cmd *cobra.Command, deps Deps, activity, email string) error {
	message, err := deps.Service.Signup(cmd.Context(), activity, email)
	if err != nil {
		return fmt.Errorf("signing up %s for %s: %w", email, activity, err)
	}

	if message == "" {
		message = fmt.Sprintf("Signed up %s for %s", email, activity)
	}

	notify.Successf(cmd.OutOrStdout(), "%s", message)

	return nil
}
