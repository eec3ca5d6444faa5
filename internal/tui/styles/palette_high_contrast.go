package styles

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Light: Palette{
		TokenBackground:   "#FFFFFF",
		TokenSurface:      "#FFFFFF",
		TokenSurfaceMuted: "#F0F0F0",
		TokenText:         "#000000",
		TokenTextMuted:    "#303030",
		TokenBorder:       "#000000",
		TokenPrimary:      "#B33F00",
		TokenAccent:       "#0047AB",
		TokenFocus:        "#6A00B3",
		TokenSuccess:      "#006B1F",
		TokenWarning:      "#8A5A00",
		TokenError:        "#B00000",
		TokenInfo:         "#004C99",
	},
	Dark: Palette{
		TokenBackground:   "#000000",
		TokenSurface:      "#0A0A0A",
		TokenSurfaceMuted: "#141414",
		TokenText:         "#FFFFFF",
		TokenTextMuted:    "#C0C0C0",
		TokenBorder:       "#FFFFFF",
		TokenPrimary:      "#FF8C1A",
		TokenAccent:       "#00A2FF",
		TokenFocus:        "#FFD400",
		TokenSuccess:      "#00FF5A",
		TokenWarning:      "#FFB000",
		TokenError:        "#FF4040",
		TokenInfo:         "#66CCFF",
	},
}
