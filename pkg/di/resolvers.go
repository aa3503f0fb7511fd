package di

import (
	"fmt"

	"github.com/samber/do/v2"
)

// Dependency resolvers.

// ResolveServiceFactory retrieves the roster service factory from the
// injector with consistent error handling.
func ResolveServiceFactory(injector Injector) (ServiceFactory, error) {
	factory, err := do.Invoke[ServiceFactory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve roster service factory dependency: %w", err)
	}

	return factory, nil
}
