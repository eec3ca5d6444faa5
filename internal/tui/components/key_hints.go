package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nahw-app/nahw/internal/tui/styles"
)

// KeyHint represents a keyboard shortcut shown in the footer.
type KeyHint struct {
	Key     string // Keyboard key (e.g., "enter", "t")
	Label   string // Display label (e.g., "Open", "Theme")
	Enabled bool
}

// RenderKeyHintBar renders a horizontal bar of enabled key hints.
// Format: "enter:Open  t:Theme  q:Quit"
func RenderKeyHintBar(styleSet styles.Styles, hints []KeyHint) string {
	var parts []string
	for _, hint := range hints {
		if !hint.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		parts = append(parts, fmt.Sprintf("%s:%s", keyStyle.Render(hint.Key), styleSet.Muted.Render(hint.Label)))
	}
	return strings.Join(parts, "  ")
}

// MenuKeyHints returns the hints for the lesson menu. The primary action label
// depends on what the cursor is on.
func MenuKeyHints(card *ExpandableCard, onSubItem bool, dark bool) []KeyHint {
	var action string
	switch {
	case card == nil:
		action = ""
	case onSubItem:
		action = "Select"
	case card.Delegated():
		action = "Open"
	case card.Expanded():
		action = "Collapse"
	default:
		action = "Expand"
	}

	mode := "Dark"
	if dark {
		mode = "Light"
	}

	return []KeyHint{
		{Key: "↑/↓", Label: "Move", Enabled: card != nil},
		{Key: "enter", Label: action, Enabled: action != ""},
		{Key: "t", Label: mode, Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}

// RenderFooter renders the key hint bar centered in width.
func RenderFooter(styleSet styles.Styles, hints []KeyHint, width int) string {
	bar := RenderKeyHintBar(styleSet, hints)
	if bar == "" || width <= 0 {
		return bar
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar)
}
