package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mergington/activities/pkg/client/activities"
	runtime "github.com/mergington/activities/pkg/di"
	"github.com/mergington/activities/pkg/io/configmanager"
)

// Deps groups the resolved dependencies handed to command handlers. Tests
// construct this directly with fakes.
type Deps struct {
	Service activities.Service
	Config  *configmanager.Config
}

// resolveDeps loads the configuration, applies the --server flag override,
// and builds the roster service through the runtime container.
func resolveDeps(cmd *cobra.Command, runtimeContainer *runtime.Runtime) (Deps, error) {
	cfgManager := configmanager.NewConfigManager(cmd.OutOrStdout())

	config, err := cfgManager.LoadConfig()
	if err != nil {
		return Deps{}, fmt.Errorf("loading configuration: %w", err)
	}

	serverURL, err := cmd.Flags().GetString(ServerFlagName)
	if err != nil {
		return Deps{}, fmt.Errorf("reading --%s flag: %w", ServerFlagName, err)
	}

	if serverURL != "" {
		config.ServerURL = serverURL
	}

	deps := Deps{Config: config}

	err = runtimeContainer.Invoke(func(injector runtime.Injector) error {
		factory, err := runtime.ResolveServiceFactory(injector)
		if err != nil {
			return err
		}

		deps.Service = factory(config.ServerURL)

		return nil
	})
	if err != nil {
		return Deps{}, fmt.Errorf("resolving dependencies: %w", err)
	}

	return deps, nil
}
