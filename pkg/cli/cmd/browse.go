package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mergington/activities/pkg/cli/ui/browse"
	runtime "github.com/mergington/activities/pkg/di"
)

// NewBrowseCmd wires the interactive browse command using the shared
// runtime container.
func NewBrowseCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:          "browse",
		Short:        "Browse activities interactively",
		Long:         "Browse activities, sign up, and unregister in an interactive terminal UI.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := resolveDeps(cmd, runtimeContainer)
			if err != nil {
				return err
			}

			return HandleBrowseRunE(cmd, deps)
		},
	}
}

// HandleBrowseRunE runs the TUI. Diagnostics are buffered while the UI
// owns the terminal and flushed to stderr afterwards.
func HandleBrowseRunE(cmd *cobra.Command, deps Deps) error {
	var diagnostics bytes.Buffer

	err := browse.Run(cmd.Context(), browse.Options{
		Service:         deps.Service,
		RequestTimeout:  deps.Config.RequestTimeout,
		StatusHideDelay: deps.Config.StatusHideDelay,
		ErrLog:          &diagnostics,
	})

	if diagnostics.Len() > 0 {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), diagnostics.String())
	}

	if err != nil {
		return fmt.Errorf("browsing activities: %w", err)
	}

	return nil
}
