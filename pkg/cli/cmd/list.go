package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	runtime "github.com/mergington/activities/pkg/di"
	"github.com/mergington/activities/pkg/roster"
	"github.com/mergington/activities/pkg/ui/notify"
)

// WideFlagName enables the detailed listing with schedules and
// participants.
const WideFlagName = "wide"

// NewListCmd wires the list command using the shared runtime container.
func NewListCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List activities with remaining capacity",
		Long:         "List all extracurricular activities with their remaining capacity.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := resolveDeps(cmd, runtimeContainer)
			if err != nil {
				return err
			}

			return HandleListRunE(cmd, deps)
		},
	}

	cmd.Flags().Bool(WideFlagName, false, "Show schedule, description, and participants")

	return cmd
}

// HandleListRunE fetches the roster and prints one line per activity, or
// the full details with --wide.
func HandleListRunE(cmd *cobra.Command, deps Deps) error {
	wide, err := cmd.Flags().GetBool(WideFlagName)
	if err != nil {
		return fmt.Errorf("reading --%s flag: %w", WideFlagName, err)
	}

	rst, err := deps.Service.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	out := cmd.OutOrStdout()

	for _, name := range rst.Names() {
		activity := rst[name]

		notify.Titlef(out, "📋", "%s (%d spots left)", name, activity.SpotsLeft())

		if wide {
			printActivityDetails(out, activity)
		}
	}

	return nil
}

func printActivityDetails(out io.Writer, activity roster.Activity) {
	notify.Infof(out, "%s", activity.Description)
	notify.Infof(out, "Schedule: %s", activity.Schedule)
	notify.Infof(out, "Enrolled: %d/%d", len(activity.Participants), activity.MaxParticipants)

	for _, email := range activity.Participants {
		notify.Activityf(out, "%s", email)
	}
}
