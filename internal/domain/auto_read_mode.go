package domain

import (
	"strings"

	domainerrors "github.com/listenupapp/readconfig/internal/errors"
)

// AutoReadMode is the strategy for hands-free content advancement.
type AutoReadMode string

const (
	AutoReadModeScroll AutoReadMode = "scroll" // continuous scroll
	AutoReadModeCover  AutoReadMode = "cover"  // discrete page cover
)

// AutoReadModes returns every supported auto-read mode.
func AutoReadModes() []AutoReadMode {
	return []AutoReadMode{AutoReadModeScroll, AutoReadModeCover}
}

// IsValid reports whether m is a member of the supported set.
func (m AutoReadMode) IsValid() bool {
	return m == AutoReadModeScroll || m == AutoReadModeCover
}

func (m AutoReadMode) String() string {
	return string(m)
}

// ParseAutoReadMode converts a raw value into an AutoReadMode.
func ParseAutoReadMode(raw string) (AutoReadMode, error) {
	m := AutoReadMode(strings.ToLower(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return "", domainerrors.InvalidEnumValuef("unknown auto-read mode %q", raw)
	}
	return m, nil
}
