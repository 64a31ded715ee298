// Package service holds the boundary services that sit between transports and the preferences manager.
package service

import (
	"context"
	"log/slog"

	"github.com/listenupapp/readconfig/internal/domain"
	domainerrors "github.com/listenupapp/readconfig/internal/errors"
	"github.com/listenupapp/readconfig/internal/palette"
	"github.com/listenupapp/readconfig/internal/readconfig"
	"github.com/listenupapp/readconfig/internal/theme"
	"github.com/listenupapp/readconfig/internal/validation"
)

// PreferencesService is the boundary between raw client input and the
// preferences manager. It parses enum strings, validates ranges and applies
// batch updates.
type PreferencesService struct {
	manager   *readconfig.Manager
	switcher  *theme.Switch
	validator *validation.Validator
	logger    *slog.Logger
}

// NewPreferencesService creates a new preferences service.
// switcher may be nil when the theme is owned by an external signal.
func NewPreferencesService(manager *readconfig.Manager, switcher *theme.Switch, validator *validation.Validator, logger *slog.Logger) *PreferencesService {
	return &PreferencesService{
		manager:   manager,
		switcher:  switcher,
		validator: validator,
		logger:    logger,
	}
}

// PreferencesView is the client-facing read model: stored preferences plus
// the values derived from the active theme.
type PreferencesView struct {
	domain.ReadingPreferences
	ThemeMode         domain.ThemeMode `json:"theme_mode"`
	IsDarkMode        bool             `json:"is_dark_mode"`
	CurrentColorIndex int              `json:"current_color_index"`
	BackgroundColor   string           `json:"background_color"`
	TextColor         string           `json:"text_color"`
}

// ThemeView describes the active theme and the colors it resolves to.
type ThemeView struct {
	Mode            domain.ThemeMode `json:"mode"`
	Switchable      bool             `json:"switchable"`
	ColorIndex      int              `json:"color_index"`
	MaxColorIndex   int              `json:"max_color_index"`
	BackgroundColor string           `json:"background_color"`
	TextColor       string           `json:"text_color"`
}

// UpdatePreferencesRequest contains fields that can be updated.
// Nil fields are left unchanged.
type UpdatePreferencesRequest struct {
	ColorIndex       *int     `json:"color_index" validate:"omitempty,gte=0"`
	LineSpacing      *float64 `json:"line_spacing" validate:"omitempty,gte=0,lte=100"`
	ParagraphSpacing *float64 `json:"paragraph_spacing" validate:"omitempty,gte=0,lte=100"`
	FontSize         *int     `json:"font_size" validate:"omitempty,gte=8,lte=72"`
	PageType         *string  `json:"page_type"`
	IsAutoRead       *bool    `json:"is_auto_read"`
	AutoReadMode     *string  `json:"auto_read_mode"`
	AutoReadSpeed    *int     `json:"auto_read_speed" validate:"omitempty,gte=1,lte=20"`
}

// Get returns the current preferences.
func (s *PreferencesService) Get(_ context.Context) PreferencesView {
	return s.view()
}

// Update applies every non-nil field of req. Enum and range errors reject
// the whole request before anything is written.
func (s *PreferencesService) Update(ctx context.Context, req UpdatePreferencesRequest) (PreferencesView, error) {
	var (
		pageType     domain.PageType
		autoReadMode domain.AutoReadMode
		err          error
	)
	if req.PageType != nil {
		if pageType, err = domain.ParsePageType(*req.PageType); err != nil {
			return PreferencesView{}, err
		}
	}
	if req.AutoReadMode != nil {
		if autoReadMode, err = domain.ParseAutoReadMode(*req.AutoReadMode); err != nil {
			return PreferencesView{}, err
		}
	}

	if err := s.validator.Validate(req); err != nil {
		return PreferencesView{}, err
	}

	// Apply updates
	if req.ColorIndex != nil {
		if err := s.manager.UpdateColorIndex(*req.ColorIndex); err != nil {
			return PreferencesView{}, err
		}
	}
	if req.LineSpacing != nil {
		s.manager.SetLineSpacing(*req.LineSpacing)
	}
	if req.ParagraphSpacing != nil {
		s.manager.SetParagraphSpacing(*req.ParagraphSpacing)
	}
	if req.FontSize != nil {
		s.manager.SetFontSize(*req.FontSize)
	}
	if req.PageType != nil {
		if err := s.manager.UpdatePageType(pageType); err != nil {
			return PreferencesView{}, err
		}
	}
	if req.IsAutoRead != nil {
		s.manager.SetAutoRead(*req.IsAutoRead)
	}
	if req.AutoReadMode != nil {
		if err := s.manager.UpdateAutoReadMode(autoReadMode); err != nil {
			return PreferencesView{}, err
		}
	}
	if req.AutoReadSpeed != nil {
		s.manager.SetAutoReadSpeed(*req.AutoReadSpeed)
	}

	s.logger.DebugContext(ctx, "preferences updated")
	return s.view(), nil
}

// SetColorIndex selects a palette entry for the active theme.
func (s *PreferencesService) SetColorIndex(ctx context.Context, index int) (PreferencesView, error) {
	return s.Update(ctx, UpdatePreferencesRequest{ColorIndex: &index})
}

// SetPageType parses raw and updates the page-turn mode.
func (s *PreferencesService) SetPageType(_ context.Context, raw string) (PreferencesView, error) {
	pageType, err := domain.ParsePageType(raw)
	if err != nil {
		return PreferencesView{}, err
	}
	if err := s.manager.UpdatePageType(pageType); err != nil {
		return PreferencesView{}, err
	}
	return s.view(), nil
}

// SetAutoReadMode parses raw and updates the auto-read mode.
func (s *PreferencesService) SetAutoReadMode(_ context.Context, raw string) (PreferencesView, error) {
	mode, err := domain.ParseAutoReadMode(raw)
	if err != nil {
		return PreferencesView{}, err
	}
	if err := s.manager.UpdateAutoReadMode(mode); err != nil {
		return PreferencesView{}, err
	}
	return s.view(), nil
}

// SetAutoRead starts or stops auto-read for this session.
func (s *PreferencesService) SetAutoRead(_ context.Context, on bool) PreferencesView {
	s.manager.SetAutoRead(on)
	return s.view()
}

// Theme returns the active theme and its resolved colors.
func (s *PreferencesService) Theme(_ context.Context) ThemeView {
	prefs, mode, colors := s.current()

	return ThemeView{
		Mode:            mode,
		Switchable:      s.switcher != nil,
		ColorIndex:      prefs.ColorIndexFor(mode),
		MaxColorIndex:   s.manager.Palette().MaxIndex(mode),
		BackgroundColor: colors.Background.Hex(),
		TextColor:       colors.Text.Hex(),
	}
}

// SetTheme changes the ambient theme. Only possible when the theme is
// driven by a Switch; external signals are read-only.
func (s *PreferencesService) SetTheme(ctx context.Context, raw string) (ThemeView, error) {
	if s.switcher == nil {
		return ThemeView{}, domainerrors.Conflict("theme is controlled by an external signal")
	}

	mode, err := domain.ParseThemeMode(raw)
	if err != nil {
		return ThemeView{}, err
	}

	s.switcher.Set(mode)
	s.logger.InfoContext(ctx, "theme switched", "mode", mode)
	return s.Theme(ctx), nil
}

// current reads the theme once so the index and colors in a view always
// belong to the same mode.
func (s *PreferencesService) current() (domain.ReadingPreferences, domain.ThemeMode, palette.Entry) {
	mode := s.manager.ThemeMode()
	prefs := s.manager.Snapshot()
	return prefs, mode, s.manager.Palette().Resolve(prefs.ColorIndexFor(mode), mode)
}

func (s *PreferencesService) view() PreferencesView {
	prefs, mode, colors := s.current()

	return PreferencesView{
		ReadingPreferences: prefs,
		ThemeMode:          mode,
		IsDarkMode:         mode.IsDark(),
		CurrentColorIndex:  prefs.ColorIndexFor(mode),
		BackgroundColor:    colors.Background.Hex(),
		TextColor:          colors.Text.Hex(),
	}
}
