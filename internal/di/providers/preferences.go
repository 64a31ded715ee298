package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/listenupapp/readconfig/internal/config"
	"github.com/listenupapp/readconfig/internal/domain"
	"github.com/listenupapp/readconfig/internal/logger"
	"github.com/listenupapp/readconfig/internal/palette"
	"github.com/listenupapp/readconfig/internal/readconfig"
	"github.com/listenupapp/readconfig/internal/theme"
)

// ProvidePalette provides the color palette, loading the configured file
// when set. A bad palette file falls back to the built-in palette.
func ProvidePalette(i do.Injector) (*palette.Palette, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Palette.Path == "" {
		return palette.Default(), nil
	}

	pal, err := palette.Load(cfg.Palette.Path)
	if err != nil {
		log.WithError(err).Warn("Failed to load palette, using built-in", "path", cfg.Palette.Path)
		return palette.Default(), nil
	}

	log.Info("Palette loaded",
		"path", cfg.Palette.Path,
		"light", pal.Len(domain.ThemeModeLight),
		"dark", pal.Len(domain.ThemeModeDark),
	)
	return pal, nil
}

// ThemeHandle exposes the configured theme provider with lifecycle management.
type ThemeHandle struct {
	theme.Provider

	// Switch is set only for the switch source; other sources are read-only.
	Switch *theme.Switch

	file *theme.FileSignal
}

// Run drives background theme sources until ctx is done.
func (h *ThemeHandle) Run(ctx context.Context) error {
	if h.file != nil {
		return h.file.Start(ctx)
	}
	<-ctx.Done()
	return nil
}

// Shutdown implements do.Shutdownable.
func (h *ThemeHandle) Shutdown() error {
	if h.file != nil {
		return h.file.Close()
	}
	return nil
}

// ProvideTheme provides the ambient theme source.
func ProvideTheme(i do.Injector) (*ThemeHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	switch cfg.Theme.Source {
	case config.ThemeSourceFile:
		signal, err := theme.NewFileSignal(cfg.Theme.File, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Theme file unavailable, falling back to switch", "path", cfg.Theme.File)
			sw := theme.NewSwitch(domain.ThemeModeLight)
			return &ThemeHandle{Provider: sw, Switch: sw}, nil
		}
		return &ThemeHandle{Provider: signal, file: signal}, nil

	case config.ThemeSourcePortal:
		return &ThemeHandle{Provider: theme.NewPortalSignal(log.Logger)}, nil

	default:
		mode, err := domain.ParseThemeMode(cfg.Theme.Mode)
		if err != nil {
			return nil, err
		}
		sw := theme.NewSwitch(mode)
		return &ThemeHandle{Provider: sw, Switch: sw}, nil
	}
}

// ProvideManager provides the process-wide preferences manager.
func ProvideManager(i do.Injector) (*readconfig.Manager, error) {
	storeHandle := do.MustInvoke[*ValueStoreHandle](i)
	pal := do.MustInvoke[*palette.Palette](i)
	themeHandle := do.MustInvoke[*ThemeHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	manager := readconfig.New(storeHandle.ValueStore, pal, themeHandle.Provider, log.Logger)

	log.WithFields(map[string]any{
		"backend":  storeHandle.Backend,
		"degraded": storeHandle.Degraded,
		"theme":    manager.ThemeMode(),
	}).Info("Reading preferences ready")
	return manager, nil
}
