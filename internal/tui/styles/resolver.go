package styles

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nahw-app/nahw/internal/logging"
)

// FallbackColor is returned for tokens no palette knows about. Mid-gray stays
// readable on both light and dark backgrounds while still looking off.
const FallbackColor = "#808080"

// Resolver maps color tokens to concrete colors for a theme.
//
// A Resolver is immutable after construction and safe for concurrent use.
// Resolution never fails: unknown tokens resolve to FallbackColor.
type Resolver struct {
	theme   Theme
	classes Palette
}

// NewResolver builds a resolver over a private copy of the theme palettes.
func NewResolver(theme Theme) *Resolver {
	return &Resolver{
		theme:   MergeTheme(theme, Theme{}),
		classes: mergePalettes(ClassPalette, nil),
	}
}

// ResolverFor returns a resolver for a registered theme, falling back to the
// default theme when the name is unknown.
func ResolverFor(name string) *Resolver {
	theme, err := LookupTheme(name)
	if err != nil {
		logger := logging.Component("styles")
		logger.Debug().Str("theme", name).Msg("unknown theme, using default")
		theme = DefaultTheme
	}
	return NewResolver(theme)
}

// ThemeName reports the theme the resolver was built from.
func (r *Resolver) ThemeName() string {
	if r == nil {
		return ""
	}
	return r.theme.Name
}

// Resolve returns the concrete color for token in the given mode.
func (r *Resolver) Resolve(token ColorToken, dark bool) string {
	if token.Kind == TokenLiteral {
		if token.Name == "" {
			return FallbackColor
		}
		return token.Name
	}
	if r == nil {
		return FallbackColor
	}
	if value, ok := r.palette(dark)[token.Name]; ok {
		return value
	}
	if value, ok := r.classes[token.Name]; ok {
		return value
	}
	return FallbackColor
}

// ResolveString parses raw with ParseToken and resolves it.
func (r *Resolver) ResolveString(raw string, dark bool) string {
	return r.Resolve(ParseToken(raw), dark)
}

// Known reports whether token resolves without falling back.
func (r *Resolver) Known(token ColorToken, dark bool) bool {
	if token.Kind == TokenLiteral {
		return token.Name != ""
	}
	if r == nil {
		return false
	}
	if _, ok := r.palette(dark)[token.Name]; ok {
		return true
	}
	_, ok := r.classes[token.Name]
	return ok
}

// ResolveWithOpacity resolves token and attaches an alpha value. Opacity is
// clamped to [0, 1]; NaN counts as 0.
func (r *Resolver) ResolveWithOpacity(token ColorToken, dark bool, opacity float64) AlphaColor {
	return AlphaColor{
		Color: r.Resolve(token, dark),
		Alpha: clampUnit(opacity),
	}
}

func (r *Resolver) palette(dark bool) Palette {
	return r.theme.Palette(dark)
}

// AlphaColor is a concrete color with an alpha channel.
type AlphaColor struct {
	Color string
	Alpha float64
}

// Over flattens the color onto background. Terminals have no alpha channel,
// so translucency is rendered by blending toward the backdrop. Colors that
// are not hex values are returned unblended.
func (c AlphaColor) Over(background string) string {
	fg, err := colorful.Hex(c.Color)
	if err != nil {
		return c.Color
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return c.Color
	}
	return bg.BlendRgb(fg, clampUnit(c.Alpha)).Clamped().Hex()
}

func (c AlphaColor) String() string {
	return fmt.Sprintf("%s@%.2f", c.Color, c.Alpha)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
