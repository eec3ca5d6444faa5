package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens for one mode.
type Styles struct {
	Theme    Theme
	Dark     bool
	Resolver *Resolver

	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// DefaultStyles builds light-mode styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme, false)
}

// BuildStyles converts theme tokens into lipgloss styles for the given mode.
func BuildStyles(theme Theme, dark bool) Styles {
	resolver := NewResolver(theme)
	c := func(token string) lipgloss.Color {
		return lipgloss.Color(resolver.Resolve(Semantic(token), dark))
	}

	return Styles{
		Theme:    theme,
		Dark:     dark,
		Resolver: resolver,
		Title:    lipgloss.NewStyle().Foreground(c(TokenText)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(c(TokenText)),
		Muted:    lipgloss.NewStyle().Foreground(c(TokenTextMuted)),
		Accent:   lipgloss.NewStyle().Foreground(c(TokenAccent)),
		Panel:    lipgloss.NewStyle().Foreground(c(TokenText)).Background(c(TokenSurface)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(c(TokenBorder)),
		Border:   lipgloss.NewStyle().Foreground(c(TokenBorder)),
		Focus:    lipgloss.NewStyle().Foreground(c(TokenFocus)).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(c(TokenSuccess)),
		Warning:  lipgloss.NewStyle().Foreground(c(TokenWarning)),
		Error:    lipgloss.NewStyle().Foreground(c(TokenError)),
		Info:     lipgloss.NewStyle().Foreground(c(TokenInfo)),
	}
}

// Color resolves a loosely typed color string for the current mode.
func (s Styles) Color(raw string) lipgloss.Color {
	return lipgloss.Color(s.Resolver.ResolveString(raw, s.Dark))
}

// Faded resolves raw at the given opacity, flattened onto the background.
func (s Styles) Faded(raw string, opacity float64) lipgloss.Color {
	alpha := s.Resolver.ResolveWithOpacity(ParseToken(raw), s.Dark, opacity)
	background := s.Resolver.Resolve(Semantic(TokenBackground), s.Dark)
	return lipgloss.Color(alpha.Over(background))
}
