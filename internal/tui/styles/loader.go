package styles

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type paletteFile struct {
	Name  string            `toml:"name"`
	Base  string            `toml:"base"`
	Light map[string]string `toml:"light"`
	Dark  map[string]string `toml:"dark"`
}

// LoadPaletteFile decodes a TOML palette override file:
//
//	name = "sepia"
//	base = "default"
//
//	[light]
//	background = "#F4ECD8"
//
//	[dark]
//	background = "#1E1A14"
//
// The returned theme is the named base theme with the file's entries layered
// on top.
func LoadPaletteFile(path string) (Theme, error) {
	var file paletteFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Theme{}, fmt.Errorf("failed to decode palette file %s: %w", path, err)
	}

	base, err := LookupTheme(file.Base)
	if err != nil {
		return Theme{}, fmt.Errorf("palette file %s: %w", path, err)
	}

	override := Theme{
		Name:  strings.TrimSpace(file.Name),
		Light: Palette(file.Light),
		Dark:  Palette(file.Dark),
	}
	return MergeTheme(base, override), nil
}
