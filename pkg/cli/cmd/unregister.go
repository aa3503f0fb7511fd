package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mergington/activities/pkg/cli/ui/confirm"
	runtime "github.com/mergington/activities/pkg/di"
	"github.com/mergington/activities/pkg/ui/notify"
)

// ForceFlagName skips the interactive confirmation prompt.
const ForceFlagName = "force"

// NewUnregisterCmd wires the unregister command using the shared runtime
// container.
func NewUnregisterCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "unregister <activity> <email>",
		Short:        "Remove a student from an activity",
		Long:         "Remove a student from an activity after confirmation.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := resolveDeps(cmd, runtimeContainer)
			if err != nil {
				return err
			}

			return HandleUnregisterRunE(cmd, deps, args[0], args[1])
		},
	}

	cmd.Flags().BoolP(ForceFlagName, "f", false, "Skip the confirmation prompt")

	return cmd
}

// HandleUnregisterRunE confirms and submits the removal. Declining the
// prompt aborts without sending a request.
func HandleUnregisterRunE(cmd *cobra.Command, deps Deps, activity, email string) error {
	force, err := cmd.Flags().GetBool(ForceFlagName)
	if err != nil {
		return fmt.Errorf("reading --%s flag: %w", ForceFlagName, err)
	}

	if !confirm.ShouldSkipPrompt(force) {
		confirmed := confirm.PromptForUnregister(cmd.OutOrStdout(), activity, email)
		if !confirmed {
			return confirm.ErrUnregisterCancelled
		}
	}

	err = deps.Service.Unregister(cmd.Context(), activity, email)
	if err != nil {
		return fmt.Errorf("unregistering %s from %s: %w", email, activity, err)
	}

	notify.Successf(cmd.OutOrStdout(), "Unregistered %s from %s", email, activity)

	return nil
}
