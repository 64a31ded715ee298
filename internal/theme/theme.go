// Package theme provides sources for the ambient light/dark presentation theme.
//
// The theme is owned by the surrounding UI shell. The preferences store only
// reads it, at call time, through the Provider interface.
package theme

import (
	"sync/atomic"

	"github.com/listenupapp/readconfig/internal/domain"
)

// Provider answers whether the ambient presentation theme is dark right now.
type Provider interface {
	IsDark() bool
}

// Switch is a Provider the UI shell flips directly. Safe for concurrent use.
type Switch struct {
	dark atomic.Bool
}

// NewSwitch creates a Switch starting in the given mode.
func NewSwitch(mode domain.ThemeMode) *Switch {
	s := &Switch{}
	s.dark.Store(mode.IsDark())
	return s
}

// IsDark implements Provider.
func (s *Switch) IsDark() bool {
	return s.dark.Load()
}

// Set changes the current mode.
func (s *Switch) Set(mode domain.ThemeMode) {
	s.dark.Store(mode.IsDark())
}

// Toggle flips between light and dark and returns the new mode.
func (s *Switch) Toggle() domain.ThemeMode {
	for {
		old := s.dark.Load()
		if s.dark.CompareAndSwap(old, !old) {
			return domain.ThemeModeFor(!old)
		}
	}
}

// Static is a Provider with a fixed answer.
type Static bool

// IsDark implements Provider.
func (s Static) IsDark() bool { return bool(s) }
