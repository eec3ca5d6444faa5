package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ThemeStore persists the process-wide theme mode flag.
type ThemeStore interface {
	DarkMode(ctx context.Context, fallback bool) (bool, error)
	SetDarkMode(ctx context.Context, dark bool) error
}

const storeTimeout = 2 * time.Second

// ThemeModeLoadedMsg carries the stored theme mode read at startup.
type ThemeModeLoadedMsg struct {
	Dark bool
	Err  error
}

// ThemeModeSavedMsg reports the result of persisting the theme mode.
type ThemeModeSavedMsg struct {
	Dark bool
	Err  error
}

// LessonOpenedMsg is emitted when a lesson is chosen from the menu.
type LessonOpenedMsg struct {
	SectionID string
	LessonID  string
	Title     string
}

// pressReleaseMsg ends the press feedback started by a key press.
type pressReleaseMsg struct {
	card int
	sub  int
}

func loadThemeModeCmd(store ThemeStore, fallback bool) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		dark, err := store.DarkMode(ctx, fallback)
		return ThemeModeLoadedMsg{Dark: dark, Err: err}
	}
}

func saveThemeModeCmd(store ThemeStore, dark bool) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return ThemeModeSavedMsg{Dark: dark, Err: store.SetDarkMode(ctx, dark)}
	}
}

func lessonOpenedCmd(msg LessonOpenedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
