package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/listenupapp/readconfig/internal/validation"
)

// fileEntry is the on-disk form of an Entry.
type fileEntry struct {
	Background string `yaml:"background" json:"background" validate:"required,hexcolor"`
	Text       string `yaml:"text" json:"text" validate:"required,hexcolor"`
}

// paletteFile is the YAML layout accepted by Load:
//
//	light:
//	  - background: "#FFFFFF"
//	    text: "#333333"
//	dark:
//	  - background: "#1C1C1E"
//	    text: "#8E8E93"
type paletteFile struct {
	Light []fileEntry `yaml:"light" json:"light" validate:"required,min=1,dive"`
	Dark  []fileEntry `yaml:"dark" json:"dark" validate:"required,min=1,dive"`
}

// Load reads a palette from a YAML file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- palette path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML palette document.
func Parse(data []byte) (*Palette, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse palette file: %w", err)
	}

	if err := validation.New().Validate(f); err != nil {
		return nil, fmt.Errorf("invalid palette file: %w", err)
	}

	light, err := toEntries(f.Light)
	if err != nil {
		return nil, err
	}
	dark, err := toEntries(f.Dark)
	if err != nil {
		return nil, err
	}

	return &Palette{Light: light, Dark: dark}, nil
}

func toEntries(in []fileEntry) ([]Entry, error) {
	out := make([]Entry, 0, len(in))
	for i, fe := range in {
		bg, err := ParseHex(fe.Background)
		if err != nil {
			return nil, fmt.Errorf("entry %d background: %w", i, err)
		}
		fg, err := ParseHex(fe.Text)
		if err != nil {
			return nil, fmt.Errorf("entry %d text: %w", i, err)
		}
		out = append(out, Entry{Background: bg, Text: fg})
	}
	return out, nil
}
