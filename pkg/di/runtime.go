// Package di wires shared dependencies into commands through a small
// runtime container built on samber/do.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
)

// Injector aliases the samber/do injector used across the command tree.
type Injector = do.Injector

// Provider registers a dependency with the injector.
type Provider func(Injector) error

// Runtime owns the set of providers shared by the root command and tests.
type Runtime struct {
	providers []Provider
}

// New constructs a runtime from the given providers. Tests pass fake
// providers to substitute dependencies.
func New(providers ...Provider) *Runtime {
	return &Runtime{providers: providers}
}

// Invoke creates a fresh injector, runs every provider, and hands the
// injector to fn. The injector is shut down when fn returns.
func (r *Runtime) Invoke(fn func(Injector) error) error {
	injector := do.New()
	defer func() {
		_ = injector.Shutdown()
	}()

	for _, provider := range r.providers {
		err := provider(injector)
		if err != nil {
			return fmt.Errorf("register dependency: %w", err)
		}
	}

	return fn(injector)
}
