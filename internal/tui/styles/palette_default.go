package styles

// DefaultTheme is the baseline palette pair.
var DefaultTheme = Theme{
	Name: "default",
	Light: Palette{
		TokenBackground:   "#FFFFFF",
		TokenSurface:      "#F8FAFC",
		TokenSurfaceMuted: "#F1F5F9",
		TokenText:         "#1F2937",
		TokenTextMuted:    "#6B7280",
		TokenBorder:       "#E5E7EB",
		TokenPrimary:      "#EA580C",
		TokenAccent:       "#0F766E",
		TokenFocus:        "#2563EB",
		TokenSuccess:      "#16A34A",
		TokenWarning:      "#D97706",
		TokenError:        "#DC2626",
		TokenInfo:         "#0284C7",
	},
	Dark: Palette{
		TokenBackground:   "#0B0F14",
		TokenSurface:      "#121821",
		TokenSurfaceMuted: "#1A2230",
		TokenText:         "#E6EDF3",
		TokenTextMuted:    "#8B9AAE",
		TokenBorder:       "#223043",
		TokenPrimary:      "#FB923C",
		TokenAccent:       "#2DD4BF",
		TokenFocus:        "#7AA2F7",
		TokenSuccess:      "#3FB950",
		TokenWarning:      "#D29922",
		TokenError:        "#F85149",
		TokenInfo:         "#58A6FF",
	},
}
