package theme

import (
	"log/slog"

	"github.com/rymdport/portal/settings"
)

const (
	appearanceNamespace = "org.freedesktop.appearance"
	colorSchemeKey      = "color-scheme"

	// colorSchemePreferDark is the portal value for "prefer dark appearance".
	// 0 means no preference and 2 prefers light.
	colorSchemePreferDark uint32 = 1
)

// readSetting is swapped in tests.
var readSetting = settings.ReadOne

// PortalSignal reads the desktop color scheme through the XDG desktop portal.
// Every call queries the portal, so the answer is never stale. Failures read as light.
type PortalSignal struct {
	logger *slog.Logger
}

// NewPortalSignal creates a PortalSignal.
func NewPortalSignal(logger *slog.Logger) *PortalSignal {
	return &PortalSignal{logger: logger}
}

// IsDark implements Provider.
func (p *PortalSignal) IsDark() bool {
	value, err := readSetting(appearanceNamespace, colorSchemeKey)
	if err != nil {
		p.logger.Debug("portal color scheme unavailable", "error", err)
		return false
	}

	scheme, ok := value.(uint32)
	if !ok {
		p.logger.Debug("unexpected portal color scheme type", "value", value)
		return false
	}
	return scheme == colorSchemePreferDark
}
