package styles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want ColorToken
	}{
		{raw: "#112233", want: ColorToken{Kind: TokenLiteral, Name: "#112233"}},
		{raw: "  #abc ", want: ColorToken{Kind: TokenLiteral, Name: "#abc"}},
		{raw: "212", want: ColorToken{Kind: TokenLiteral, Name: "212"}},
		{raw: "256", want: ColorToken{Kind: TokenSemantic, Name: "256"}},
		{raw: "orange-600", want: ColorToken{Kind: TokenClass, Name: "orange-600"}},
		{raw: "Teal-500", want: ColorToken{Kind: TokenClass, Name: "teal-500"}},
		{raw: "surface-muted", want: ColorToken{Kind: TokenSemantic, Name: "surface-muted"}},
		{raw: "Primary", want: ColorToken{Kind: TokenSemantic, Name: "primary"}},
		{raw: "", want: ColorToken{Kind: TokenSemantic, Name: ""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseToken(tt.raw))
		})
	}
}

func TestResolveSemanticPerMode(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTheme)
	assert.Equal(t, DefaultTheme.Light[TokenPrimary], r.Resolve(Semantic(TokenPrimary), false))
	assert.Equal(t, DefaultTheme.Dark[TokenPrimary], r.Resolve(Semantic(TokenPrimary), true))
	assert.NotEqual(t, r.Resolve(Semantic(TokenBackground), false), r.Resolve(Semantic(TokenBackground), true))
}

func TestResolveClassFallsThroughToClassPalette(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTheme)
	for _, dark := range []bool{false, true} {
		assert.Equal(t, "#EA580C", r.Resolve(Class("orange-600"), dark))
		assert.Equal(t, "#EA580C", r.ResolveString("orange-600", dark))
	}
}

func TestResolveModePaletteShadowsClass(t *testing.T) {
	t.Parallel()

	theme := MergeTheme(DefaultTheme, Theme{Dark: Palette{"orange-600": "#FFAA55"}})
	r := NewResolver(theme)
	assert.Equal(t, "#EA580C", r.Resolve(Class("orange-600"), false))
	assert.Equal(t, "#FFAA55", r.Resolve(Class("orange-600"), true))
}

func TestResolvePassthroughLiterals(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTheme)
	for _, literal := range []string{"#112233", "#fff", "#0B0F14", "212"} {
		for _, dark := range []bool{false, true} {
			assert.Equal(t, literal, r.ResolveString(literal, dark), "literal %q dark=%t", literal, dark)
			assert.Equal(t, literal, r.Resolve(Literal(literal), dark))
		}
	}
}

func TestResolveFallbackTotality(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTheme)
	unknown := []ColorToken{
		Semantic("sidebar"),
		Semantic(""),
		Class("chartreuse-450"),
		ParseToken("brand-primary"),
		Literal(""),
	}
	for _, token := range unknown {
		for _, dark := range []bool{false, true} {
			assert.Equal(t, FallbackColor, r.Resolve(token, dark), "token %+v dark=%t", token, dark)
		}
	}

	var nilResolver *Resolver
	assert.Equal(t, FallbackColor, nilResolver.Resolve(Semantic(TokenText), true))
	assert.Equal(t, "#123456", nilResolver.Resolve(Literal("#123456"), true))
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	r := NewResolver(HighContrastTheme)
	inputs := []string{"text", "border", "orange-600", "#010203", "nope"}
	for _, raw := range inputs {
		for _, dark := range []bool{false, true} {
			first := r.ResolveString(raw, dark)
			second := r.ResolveString(raw, dark)
			assert.Equal(t, first, second)
		}
	}
}

func TestResolverCopiesPalettes(t *testing.T) {
	t.Parallel()

	theme := Theme{
		Name:  "scratch",
		Light: Palette{TokenText: "#000000"},
		Dark:  Palette{TokenText: "#FFFFFF"},
	}
	r := NewResolver(theme)
	theme.Light[TokenText] = "#FF0000"

	assert.Equal(t, "#000000", r.Resolve(Semantic(TokenText), false))
	assert.Equal(t, "#FFFFFF", r.Resolve(Semantic(TokenText), true))
}

func TestThemePaletteSelectsMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultTheme.Light, DefaultTheme.Palette(false))
	assert.Equal(t, DefaultTheme.Dark, DefaultTheme.Palette(true))

	r := NewResolver(HighContrastTheme)
	for _, dark := range []bool{false, true} {
		for key, want := range HighContrastTheme.Palette(dark) {
			assert.Equal(t, want, r.ResolveString(key, dark), "%s dark=%t", key, dark)
		}
	}
}

func TestBuiltinThemesCoverSemanticTokens(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		theme, err := LookupTheme(name)
		require.NoError(t, err)
		r := NewResolver(theme)
		for _, token := range SemanticTokens {
			for _, dark := range []bool{false, true} {
				assert.True(t, r.Known(Semantic(token), dark), "theme %s missing %s (dark=%t)", name, token, dark)
			}
		}
	}
}

func TestResolveWithOpacityClamps(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTheme)
	token := Semantic(TokenPrimary)

	assert.Equal(t, r.ResolveWithOpacity(token, false, 0), r.ResolveWithOpacity(token, false, -0.5))
	assert.Equal(t, r.ResolveWithOpacity(token, true, 1), r.ResolveWithOpacity(token, true, 1.5))
	assert.Equal(t, 0.0, r.ResolveWithOpacity(token, true, math.NaN()).Alpha)

	half := r.ResolveWithOpacity(token, false, 0.5)
	assert.Equal(t, DefaultTheme.Light[TokenPrimary], half.Color)
	assert.InDelta(t, 0.5, half.Alpha, 1e-9)
}

func TestAlphaColorOver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#808080", AlphaColor{Color: "#000000", Alpha: 0.5}.Over("#FFFFFF"))
	assert.Equal(t, "#000000", AlphaColor{Color: "#000000", Alpha: 1}.Over("#FFFFFF"))
	assert.Equal(t, "#ffffff", AlphaColor{Color: "#000000", Alpha: 0}.Over("#FFFFFF"))
	assert.Equal(t, "212", AlphaColor{Color: "212", Alpha: 0.3}.Over("#FFFFFF"))
	assert.Equal(t, "#000000", AlphaColor{Color: "#000000", Alpha: 0.3}.Over("not-a-color"))
}

func TestLookupTheme(t *testing.T) {
	t.Parallel()

	theme, err := LookupTheme("")
	require.NoError(t, err)
	assert.Equal(t, "default", theme.Name)

	theme, err = LookupTheme(" High-Contrast ")
	require.NoError(t, err)
	assert.Equal(t, "high-contrast", theme.Name)

	_, err = LookupTheme("neon")
	require.ErrorIs(t, err, ErrUnknownTheme)

	assert.Equal(t, "default", ResolverFor("neon").ThemeName())
}
