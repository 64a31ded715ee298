// Package domain contains the reading-preference model shared by every layer.
package domain

// Defaults applied when a persisted value is missing or unreadable.
const (
	DefaultColorIndex       = 0
	DefaultLineSpacing      = 10.0
	DefaultParagraphSpacing = 20.0
	DefaultFontSize         = 18
	DefaultPageType         = PageTypeCurl
	DefaultAutoReadMode     = AutoReadModeScroll
	DefaultAutoReadSpeed    = 5
)

// ReadingPreferences is the full set of reader display preferences.
// IsAutoRead is session-only and is never persisted.
type ReadingPreferences struct {
	LightColorIndex  int          `json:"light_color_index"`
	DarkColorIndex   int          `json:"dark_color_index"`
	LineSpacing      float64      `json:"line_spacing"`
	ParagraphSpacing float64      `json:"paragraph_spacing"`
	FontSize         int          `json:"font_size"`
	PageType         PageType     `json:"page_type"`
	IsAutoRead       bool         `json:"is_auto_read"`
	AutoReadMode     AutoReadMode `json:"auto_read_mode"`
	AutoReadSpeed    int          `json:"auto_read_speed"`
}

// NewReadingPreferences creates preferences populated with defaults.
func NewReadingPreferences() ReadingPreferences {
	return ReadingPreferences{
		LightColorIndex:  DefaultColorIndex,
		DarkColorIndex:   DefaultColorIndex,
		LineSpacing:      DefaultLineSpacing,
		ParagraphSpacing: DefaultParagraphSpacing,
		FontSize:         DefaultFontSize,
		PageType:         DefaultPageType,
		AutoReadMode:     DefaultAutoReadMode,
		AutoReadSpeed:    DefaultAutoReadSpeed,
	}
}

// ColorIndexFor returns the color index selected for the given theme.
func (p ReadingPreferences) ColorIndexFor(mode ThemeMode) int {
	if mode.IsDark() {
		return p.DarkColorIndex
	}
	return p.LightColorIndex
}
