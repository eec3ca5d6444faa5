package styles

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTheme is returned when a requested theme is not registered.
var ErrUnknownTheme = errors.New("unknown theme")

// Palette maps token keys to concrete colors for one mode.
type Palette map[string]string

// Theme bundles a light and a dark palette with a name.
type Theme struct {
	Name  string
	Light Palette
	Dark  Palette
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// ThemeNames returns the registered theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns a registered theme by name.
func LookupTheme(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultTheme.Name
	}
	theme, ok := Themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return theme, nil
}

// Palette returns the palette for the requested mode.
func (t Theme) Palette(dark bool) Palette {
	if dark {
		return t.Dark
	}
	return t.Light
}

// MergeTheme layers override entries on top of base. The result owns its
// maps; neither input is modified.
func MergeTheme(base, override Theme) Theme {
	merged := Theme{
		Name:  base.Name,
		Light: mergePalettes(base.Light, override.Light),
		Dark:  mergePalettes(base.Dark, override.Dark),
	}
	if strings.TrimSpace(override.Name) != "" {
		merged.Name = override.Name
	}
	return merged
}

func mergePalettes(base, override Palette) Palette {
	out := make(Palette, len(base)+len(override))
	for k, v := range base {
		out[normalizeKey(k)] = v
	}
	for k, v := range override {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out[normalizeKey(k)] = strings.TrimSpace(v)
	}
	return out
}
