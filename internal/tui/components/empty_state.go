package components

import (
	"fmt"
	"strings"

	"github.com/nahw-app/nahw/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭", "📘").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are commands or keys the user can try.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the command or key to use (e.g., "nahw theme list").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// EmptyMenu is shown when no lesson sections are loaded.
func EmptyMenu() EmptyState {
	return EmptyState{
		Icon:     "📘",
		Title:    "No lessons yet",
		Subtitle: "Lesson sections appear here once they are loaded.",
		Suggestions: []Suggestion{
			{Command: "q", Description: "quit"},
		},
	}
}

// EmptyLesson is shown after selecting a lesson that has no content.
func EmptyLesson(title string) EmptyState {
	return EmptyState{
		Icon:     "📭",
		Title:    fmt.Sprintf("'%s' has no exercises yet", title),
		Subtitle: "Press esc to return to the menu.",
	}
}
