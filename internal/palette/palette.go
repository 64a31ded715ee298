// Package palette maps color indices to background/text pairs for light and dark reading themes.
package palette

import "github.com/listenupapp/readconfig/internal/domain"

// Entry is one selectable reading color scheme.
type Entry struct {
	Background Color `json:"background" yaml:"background"`
	Text       Color `json:"text" yaml:"text"`
}

// Palette holds separate tables for the light and dark themes.
// Resolve is total over every index: out-of-range indices clamp to the nearest entry.
type Palette struct {
	Light []Entry
	Dark  []Entry
}

// fallback is returned when a theme's table is empty.
var fallback = map[domain.ThemeMode]Entry{
	domain.ThemeModeLight: {Background: MustParseHex("#FFFFFF"), Text: MustParseHex("#333333")},
	domain.ThemeModeDark:  {Background: MustParseHex("#1C1C1E"), Text: MustParseHex("#8E8E93")},
}

// Default returns the built-in reading palette.
func Default() *Palette {
	return &Palette{
		Light: []Entry{
			{Background: MustParseHex("#FFFFFF"), Text: MustParseHex("#333333")}, // paper
			{Background: MustParseHex("#F5EFDC"), Text: MustParseHex("#4A3B28")}, // parchment
			{Background: MustParseHex("#E9F1E3"), Text: MustParseHex("#2F3E2A")}, // eye care green
			{Background: MustParseHex("#E4EEF5"), Text: MustParseHex("#26384A")}, // mist blue
			{Background: MustParseHex("#F6E7E9"), Text: MustParseHex("#4B2E33")}, // rose
			{Background: MustParseHex("#D8D8D8"), Text: MustParseHex("#222222")}, // slate
		},
		Dark: []Entry{
			{Background: MustParseHex("#1C1C1E"), Text: MustParseHex("#8E8E93")}, // night
			{Background: MustParseHex("#000000"), Text: MustParseHex("#7A7A7A")}, // oled
			{Background: MustParseHex("#1F2A24"), Text: MustParseHex("#8FA598")}, // forest
			{Background: MustParseHex("#2B2520"), Text: MustParseHex("#A89885")}, // cocoa
		},
	}
}

// Len returns the number of entries for a theme.
func (p *Palette) Len(mode domain.ThemeMode) int {
	return len(p.table(mode))
}

// MaxIndex returns the largest valid index for a theme, or -1 when the table is empty.
func (p *Palette) MaxIndex(mode domain.ThemeMode) int {
	return p.Len(mode) - 1
}

// Resolve returns the entry for index in the given theme's table.
// Indices below zero resolve to the first entry and indices past the end to the last.
func (p *Palette) Resolve(index int, mode domain.ThemeMode) Entry {
	table := p.table(mode)
	if len(table) == 0 {
		return fallback[domain.ThemeModeFor(mode.IsDark())]
	}
	return table[clamp(index, 0, len(table)-1)]
}

func (p *Palette) table(mode domain.ThemeMode) []Entry {
	if p == nil {
		return nil
	}
	if mode.IsDark() {
		return p.Dark
	}
	return p.Light
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
