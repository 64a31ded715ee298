package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/readconfig/internal/logger"
	"github.com/listenupapp/readconfig/internal/readconfig"
	"github.com/listenupapp/readconfig/internal/service"
	"github.com/listenupapp/readconfig/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(_ do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvidePreferencesService provides the preferences boundary service.
func ProvidePreferencesService(i do.Injector) (*service.PreferencesService, error) {
	manager := do.MustInvoke[*readconfig.Manager](i)
	themeHandle := do.MustInvoke[*ThemeHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPreferencesService(manager, themeHandle.Switch, validator, log.Logger), nil
}
