package domain

import (
	"strings"

	domainerrors "github.com/listenupapp/readconfig/internal/errors"
)

// ThemeMode is the ambient presentation theme.
// It is an input to color resolution, never stored with the preferences.
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// ThemeModeFor maps a dark flag to its ThemeMode.
func ThemeModeFor(dark bool) ThemeMode {
	if dark {
		return ThemeModeDark
	}
	return ThemeModeLight
}

// IsValid reports whether t is light or dark.
func (t ThemeMode) IsValid() bool {
	return t == ThemeModeLight || t == ThemeModeDark
}

// IsDark reports whether t is the dark theme.
func (t ThemeMode) IsDark() bool {
	return t == ThemeModeDark
}

func (t ThemeMode) String() string {
	return string(t)
}

// ParseThemeMode converts a raw value into a ThemeMode.
func ParseThemeMode(raw string) (ThemeMode, error) {
	t := ThemeMode(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", domainerrors.InvalidEnumValuef("unknown theme mode %q", raw)
	}
	return t, nil
}
