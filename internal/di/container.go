// Package di provides dependency injection configuration for the reading-preferences service.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/readconfig/internal/config"
	"github.com/listenupapp/readconfig/internal/di/providers"
	"github.com/listenupapp/readconfig/internal/logger"
	"github.com/listenupapp/readconfig/internal/readconfig"
	"github.com/listenupapp/readconfig/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
// Every provider is lazy: nothing is opened until first invoked.
func NewContainer(flags config.Flags) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, flags)
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideValueStore)

	// Preferences
	do.Provide(injector, providers.ProvidePalette)
	do.Provide(injector, providers.ProvideTheme)
	do.Provide(injector, providers.ProvideManager)

	// Business services
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvidePreferencesService)

	// Server
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// SharedInstance returns the process-wide preferences manager. The first
// call constructs it and loads persisted values; later calls return the
// same instance without reloading.
func SharedInstance(injector do.Injector) *readconfig.Manager {
	return do.MustInvoke[*readconfig.Manager](injector)
}

// Bootstrap initializes the preference services, surfacing configuration
// errors before any command runs.
func Bootstrap(injector do.Injector) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*readconfig.Manager](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.PreferencesService](injector); err != nil {
		return err
	}
	return nil
}
