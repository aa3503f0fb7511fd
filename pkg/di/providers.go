package di

import (
	"github.com/mergington/activities/pkg/client/activities"
	"github.com/samber/do/v2"
)

// Dependency providers.

// ServiceFactory creates a roster service for the given server base URL.
// Commands resolve the factory and apply the configured URL at run time.
type ServiceFactory func(baseURL string) activities.Service

// NewRuntime constructs the shared runtime container used by the root
// command and tests. It registers the default roster service factory.
func NewRuntime() *Runtime {
	return New(
		provideServiceFactory,
	)
}

// provideServiceFactory registers the roster service factory with the
// injector.
func provideServiceFactory(i Injector) error {
	do.Provide(i, func(Injector) (ServiceFactory, error) {
		return func(baseURL string) activities.Service {
			return activities.NewClient(baseURL)
		}, nil
	})

	return nil
}
