// Package cmd wires the activities command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mergington/activities/pkg/cli/ui/errorhandler"
	runtime "github.com/mergington/activities/pkg/di"
	"github.com/mergington/activities/pkg/ui/asciiart"
)

// ServerFlagName is the persistent flag overriding the configured server
// URL.
const ServerFlagName = "server"

// NewRootCmd creates and returns the root command with version info and
// subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := runtime.NewRuntime()

	cmd := &cobra.Command{
		Use:          "activities",
		Short:        "Browse and manage Mergington High School activity signups",
		Long:         "Browse and manage Mergington High School activity signups",
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().String(
		ServerFlagName,
		"",
		"Base URL of the activities server (overrides configuration)",
	)

	cmd.AddCommand(NewListCmd(runtimeContainer))
	cmd.AddCommand(NewSignupCmd(runtimeContainer))
	cmd.AddCommand(NewUnregisterCmd(runtimeContainer))
	cmd.AddCommand(NewBrowseCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE handles the root command.
func handleRootRunE(
	cmd *cobra.Command,
	_ []string,
) error {
	asciiart.PrintLogo(cmd.OutOrStdout())

	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
