// Package readconfig holds the reader's display preferences: the in-memory
// snapshot, the values derived from it, and write-through persistence.
package readconfig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/listenupapp/readconfig/internal/domain"
	domainerrors "github.com/listenupapp/readconfig/internal/errors"
	"github.com/listenupapp/readconfig/internal/palette"
	"github.com/listenupapp/readconfig/internal/store"
	"github.com/listenupapp/readconfig/internal/theme"
)

// Manager owns the reading preferences for the process.
//
// All reads and writes go through one RWMutex. The color-index write reads
// the theme and picks the target field inside the same critical section, so
// a concurrent theme change cannot route the index into the wrong field.
// The provider is therefore asked while the write lock is held; a slow
// provider such as the desktop portal delays other readers for that call.
// Every setter persists before returning; persistence failures are logged and
// leave the in-memory value in place.
type Manager struct {
	backend store.ValueStore
	palette *palette.Palette
	theme   theme.Provider
	logger  *slog.Logger

	mu    sync.RWMutex
	prefs domain.ReadingPreferences
}

// New creates a Manager and loads persisted values from backend.
// Missing or unreadable entries fall back to their defaults.
// Auto-read always starts off regardless of anything stored.
func New(backend store.ValueStore, pal *palette.Palette, themeProvider theme.Provider, logger *slog.Logger) *Manager {
	if pal == nil {
		pal = palette.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Manager{
		backend: backend,
		palette: pal,
		theme:   themeProvider,
		logger:  logger,
	}
	m.prefs = m.load(context.Background())
	return m
}

// load reads every persisted field, falling back per field.
func (m *Manager) load(ctx context.Context) domain.ReadingPreferences {
	prefs := domain.NewReadingPreferences()

	loadValue(ctx, m, store.KeyLightColorIndex, &prefs.LightColorIndex, nonNegative)
	loadValue(ctx, m, store.KeyDarkColorIndex, &prefs.DarkColorIndex, nonNegative)
	loadValue(ctx, m, store.KeyLineSpacing, &prefs.LineSpacing, nonNegativeSpacing)
	loadValue(ctx, m, store.KeyParagraphSpacing, &prefs.ParagraphSpacing, nonNegativeSpacing)
	loadValue(ctx, m, store.KeyFontSize, &prefs.FontSize, positive)
	loadValue(ctx, m, store.KeyPageType, &prefs.PageType, domain.PageType.IsValid)
	loadValue(ctx, m, store.KeyAutoReadMode, &prefs.AutoReadMode, domain.AutoReadMode.IsValid)
	loadValue(ctx, m, store.KeyAutoReadSpeed, &prefs.AutoReadSpeed, positive)

	prefs.IsAutoRead = false

	m.logger.Debug("reading preferences loaded",
		"font_size", prefs.FontSize,
		"page_type", prefs.PageType,
		"auto_read_mode", prefs.AutoReadMode,
	)
	return prefs
}

// loadValue reads key into dest. dest keeps its default when the key is
// absent, the backend fails, the stored value is null, or valid rejects it.
func loadValue[T any](ctx context.Context, m *Manager, key string, dest *T, valid func(T) bool) {
	if m.backend == nil {
		return
	}

	var v *T
	err := m.backend.Get(ctx, key, &v)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return
	case err == nil && v == nil:
		err = fmt.Errorf("%w: %s: null", store.ErrCorrupt, key)
	}
	if err != nil {
		m.logger.Warn("failed to read preference, using default",
			"key", key,
			"error", domainerrors.StorageRead(key, err),
		)
		return
	}

	if valid != nil && !valid(*v) {
		m.logger.Warn("stored preference out of range, using default", "key", key, "value", *v)
		return
	}
	*dest = *v
}

func nonNegative(v int) bool { return v >= 0 }

func positive(v int) bool { return v > 0 }

func nonNegativeSpacing(v float64) bool { return v >= 0 }

// persist writes one field. Must be called with mu held so stored order
// matches in-memory order.
func (m *Manager) persist(key string, value any) {
	if m.backend == nil {
		return
	}
	if err := m.backend.Set(context.Background(), key, value); err != nil {
		m.logger.Error("failed to persist preference",
			"key", key,
			"error", domainerrors.StorageWrite(key, err),
		)
	}
}

// Snapshot returns a copy of every preference.
func (m *Manager) Snapshot() domain.ReadingPreferences {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs
}

// IsDarkMode reports whether the ambient theme is dark, asked at call time.
func (m *Manager) IsDarkMode() bool {
	if m.theme == nil {
		return false
	}
	return m.theme.IsDark()
}

// ThemeMode returns the ambient theme as a ThemeMode.
func (m *Manager) ThemeMode() domain.ThemeMode {
	return domain.ThemeModeFor(m.IsDarkMode())
}

// CurrentColorIndex returns the dark index in dark mode, else the light index.
func (m *Manager) CurrentColorIndex() int {
	mode := m.ThemeMode()

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.ColorIndexFor(mode)
}

// CurrentColors resolves the current index against the active theme's palette.
// Indices outside the palette clamp to its nearest entry.
func (m *Manager) CurrentColors() palette.Entry {
	mode := m.ThemeMode()

	m.mu.RLock()
	index := m.prefs.ColorIndexFor(mode)
	m.mu.RUnlock()

	return m.palette.Resolve(index, mode)
}

// CurrentBackgroundColor returns the reading background for the current theme.
func (m *Manager) CurrentBackgroundColor() palette.Color {
	return m.CurrentColors().Background
}

// CurrentTextColor returns the reading text color for the current theme.
func (m *Manager) CurrentTextColor() palette.Color {
	return m.CurrentColors().Text
}

// Palette returns the palette used for color resolution.
func (m *Manager) Palette() *palette.Palette {
	return m.palette
}

// LightColorIndex returns the index selected for the light theme.
func (m *Manager) LightColorIndex() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.LightColorIndex
}

// DarkColorIndex returns the index selected for the dark theme.
func (m *Manager) DarkColorIndex() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.DarkColorIndex
}

// UpdateColorIndex stores index for whichever theme is active and persists
// only that field. Indices past the palette end are kept as-is; resolution
// clamps them.
func (m *Manager) UpdateColorIndex(index int) error {
	if index < 0 {
		return domainerrors.Validationf("color index must be non-negative, got %d", index)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.IsDarkMode() {
		m.prefs.DarkColorIndex = index
		m.persist(store.KeyDarkColorIndex, index)
		return nil
	}

	m.prefs.LightColorIndex = index
	m.persist(store.KeyLightColorIndex, index)
	return nil
}

// PageType returns the page-turn mode.
func (m *Manager) PageType() domain.PageType {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.PageType
}

// UpdatePageType changes the page-turn mode. Values outside the supported set
// are rejected and leave the current mode untouched.
func (m *Manager) UpdatePageType(pageType domain.PageType) error {
	if !pageType.IsValid() {
		return domainerrors.InvalidEnumValuef("unknown page type %q", pageType)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.prefs.PageType = pageType
	m.persist(store.KeyPageType, pageType)
	return nil
}

// AutoReadMode returns the auto-read advancement mode.
func (m *Manager) AutoReadMode() domain.AutoReadMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.AutoReadMode
}

// UpdateAutoReadMode changes the auto-read mode with the same contract as UpdatePageType.
func (m *Manager) UpdateAutoReadMode(mode domain.AutoReadMode) error {
	if !mode.IsValid() {
		return domainerrors.InvalidEnumValuef("unknown auto-read mode %q", mode)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.prefs.AutoReadMode = mode
	m.persist(store.KeyAutoReadMode, mode)
	return nil
}

// LineSpacing returns the line spacing.
func (m *Manager) LineSpacing() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.LineSpacing
}

// SetLineSpacing sets and persists the line spacing.
func (m *Manager) SetLineSpacing(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.LineSpacing = v
	m.persist(store.KeyLineSpacing, v)
}

// ParagraphSpacing returns the paragraph spacing.
func (m *Manager) ParagraphSpacing() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.ParagraphSpacing
}

// SetParagraphSpacing sets and persists the paragraph spacing.
func (m *Manager) SetParagraphSpacing(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.ParagraphSpacing = v
	m.persist(store.KeyParagraphSpacing, v)
}

// FontSize returns the font size.
func (m *Manager) FontSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.FontSize
}

// SetFontSize sets and persists the font size.
func (m *Manager) SetFontSize(v int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.FontSize = v
	m.persist(store.KeyFontSize, v)
}

// AutoReadSpeed returns the auto-read page speed.
func (m *Manager) AutoReadSpeed() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.AutoReadSpeed
}

// SetAutoReadSpeed sets and persists the auto-read page speed.
func (m *Manager) SetAutoReadSpeed(v int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.AutoReadSpeed = v
	m.persist(store.KeyAutoReadSpeed, v)
}

// IsAutoRead reports whether auto-read is on for this session.
func (m *Manager) IsAutoRead() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs.IsAutoRead
}

// SetAutoRead turns auto-read on or off. Session-only: never written to the
// backend, so every process starts with auto-read off.
func (m *Manager) SetAutoRead(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.IsAutoRead = on
}
