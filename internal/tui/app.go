// Package tui implements the nahw terminal lesson menu.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/nahw-app/nahw/internal/logging"
	"github.com/nahw-app/nahw/internal/models"
	"github.com/nahw-app/nahw/internal/tui/anim"
	"github.com/nahw-app/nahw/internal/tui/components"
	"github.com/nahw-app/nahw/internal/tui/styles"
)

const (
	minWidth     = 40
	minHeight    = 12
	maxCardWidth = 64
	headerLines  = 3
)

// Options configures the lesson menu.
type Options struct {
	Sections []models.MenuSection
	Theme    styles.Theme
	// DarkMode is the initial mode, used until the store answers.
	DarkMode bool
	Store    ThemeStore
	// ArabicFont is the resolved Arabic font family, shown in the header.
	ArabicFont string

	Timing      anim.Timing
	PressTiming anim.Timing

	// Schedule delivers press-release messages. Nil uses tea.Tick.
	Schedule      anim.Scheduler
	DriverOptions []anim.Option
	Logger        *zerolog.Logger
}

// Run launches the lesson menu program.
func Run(opts Options) error {
	m := New(opts)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	m.Unmount()
	return err
}

type target struct {
	card int
	// sub is the sub-item index, or -1 for the card header.
	sub int
}

var firstHeader = target{card: 0, sub: -1}

// Model is the bubbletea model for the lesson menu.
type Model struct {
	width  int
	height int

	theme  styles.Theme
	dark   bool
	styles styles.Styles
	store  ThemeStore
	font   string

	sections []models.MenuSection
	cards    []*components.ExpandableCard
	cursor   target
	pressed  *target
	lesson   *LessonOpenedMsg
	outbox   []tea.Msg
	status   string

	schedule      anim.Scheduler
	pressDuration time.Duration
	logger        zerolog.Logger
}

// New builds the menu model and mounts one card per section.
func New(opts Options) *Model {
	logger := logging.Component("tui")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = styles.DefaultTheme
	}
	schedule := opts.Schedule
	if schedule == nil {
		schedule = tea.Tick
	}
	pressDuration := opts.PressTiming.Duration
	if pressDuration <= 0 {
		pressDuration = components.DefaultPressTiming.Duration
	}

	m := &Model{
		theme:         theme,
		dark:          opts.DarkMode,
		styles:        styles.BuildStyles(theme, opts.DarkMode),
		store:         opts.Store,
		font:          opts.ArabicFont,
		sections:      opts.Sections,
		cursor:        firstHeader,
		schedule:      schedule,
		pressDuration: pressDuration,
		logger:        logger,
	}

	for _, section := range opts.Sections {
		section := section
		cardOpts := components.ExpandableCardOptions{
			Main:          section.Main,
			SubItems:      section.SubItems,
			Timing:        opts.Timing,
			PressTiming:   opts.PressTiming,
			DriverOptions: opts.DriverOptions,
			Logger:        &logger,
			OnSubItemPress: func(item models.MenuItem) {
				m.post(LessonOpenedMsg{SectionID: section.Main.ID, LessonID: item.ID, Title: item.Title})
			},
			OnTransitionEnd: func(expanded bool) {
				m.logger.Debug().Str("section", section.Main.ID).Bool("expanded", expanded).Msg("section settled")
			},
		}
		if len(section.SubItems) == 0 {
			cardOpts.OnMainPress = func() {
				m.post(LessonOpenedMsg{SectionID: section.Main.ID, LessonID: section.Main.ID, Title: section.Main.Title})
			}
		}
		m.cards = append(m.cards, components.NewExpandableCard(cardOpts))
	}
	return m
}

// Init loads the stored theme mode.
func (m *Model) Init() tea.Cmd {
	return loadThemeModeCmd(m.store, m.dark)
}

// Dark reports the current theme mode.
func (m *Model) Dark() bool { return m.dark }

// Cards returns the mounted section cards.
func (m *Model) Cards() []*components.ExpandableCard { return m.cards }

// Unmount releases every card. It is safe to call more than once.
func (m *Model) Unmount() {
	for _, card := range m.cards {
		card.Unmount()
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var quit bool
		if cmd, quit = m.handleKey(msg); quit {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case anim.FrameMsg:
		cmds := make([]tea.Cmd, 0, len(m.cards))
		for _, card := range m.cards {
			cmds = append(cmds, card.Update(msg))
		}
		cmd = tea.Batch(cmds...)
	case pressReleaseMsg:
		cmd = m.release(target{card: msg.card, sub: msg.sub})
	case ThemeModeLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn().Err(msg.Err).Msg("failed to load theme mode")
			break
		}
		m.setDark(msg.Dark)
	case ThemeModeSavedMsg:
		if msg.Err != nil {
			m.logger.Warn().Err(msg.Err).Bool("dark", msg.Dark).Msg("failed to save theme mode")
			m.status = "Theme mode not saved"
		}
	case LessonOpenedMsg:
		m.logger.Info().Str("section", msg.SectionID).Str("lesson", msg.LessonID).Msg("lesson opened")
		lesson := msg
		m.lesson = &lesson
	}

	return m, tea.Batch(cmd, m.flush())
}

// handleKey reports whether the program should quit.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		m.Unmount()
		return nil, true
	}

	if m.lesson != nil {
		switch key {
		case "esc", "backspace", "enter":
			m.lesson = nil
		}
		return nil, false
	}

	switch key {
	case "up", "k":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "enter", " ":
		return m.press(m.cursor), false
	case "t":
		m.setDark(!m.dark)
		return saveThemeModeCmd(m.store, m.dark), false
	case "esc":
		m.Unmount()
		return nil, true
	}
	return nil, false
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.lesson != nil {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.move(-1)
		return nil
	case tea.MouseButtonWheelDown:
		m.move(1)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	hit, ok := m.hitTest(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if !ok {
			return nil
		}
		m.cursor = hit
		m.pressed = &hit
		if hit.sub >= 0 {
			return nil
		}
		return m.cards[hit.card].PressIn()
	case tea.MouseActionRelease:
		pressed := m.pressed
		m.pressed = nil
		if pressed == nil {
			return nil
		}
		var cmds []tea.Cmd
		if pressed.sub < 0 {
			cmds = append(cmds, m.cards[pressed.card].PressOut())
		}
		// Releasing outside the pressed target cancels the press.
		if ok && hit == *pressed {
			cmds = append(cmds, m.activate(hit))
		}
		return tea.Batch(cmds...)
	}
	return nil
}

// press starts feedback on a header and schedules its release. Sub-items
// activate immediately.
func (m *Model) press(t target) tea.Cmd {
	if !m.valid(t) {
		return nil
	}
	if t.sub >= 0 {
		return m.activate(t)
	}
	card := m.cards[t.card]
	if !card.Mounted() {
		return nil
	}
	release := m.schedule(m.pressDuration, func(time.Time) tea.Msg {
		return pressReleaseMsg{card: t.card, sub: t.sub}
	})
	return tea.Batch(card.PressIn(), release)
}

func (m *Model) release(t target) tea.Cmd {
	if !m.valid(t) {
		return nil
	}
	return tea.Batch(m.cards[t.card].PressOut(), m.activate(t))
}

func (m *Model) activate(t target) tea.Cmd {
	if !m.valid(t) {
		return nil
	}
	card := m.cards[t.card]
	if t.sub >= 0 {
		card.SubItemPressAt(t.sub)
		return nil
	}
	cmd := card.MainPress()
	if !card.Expanded() && m.cursor.card == t.card {
		m.cursor = target{card: t.card, sub: -1}
	}
	return cmd
}

func (m *Model) valid(t target) bool {
	if t.card < 0 || t.card >= len(m.cards) {
		return false
	}
	return t.sub < len(m.cards[t.card].SubItems())
}

// targets lists focusable rows in display order. Sub-items are focusable only
// while their card is expanded.
func (m *Model) targets() []target {
	var out []target
	for i, card := range m.cards {
		out = append(out, target{card: i, sub: -1})
		if !card.Expanded() {
			continue
		}
		for j := range card.SubItems() {
			out = append(out, target{card: i, sub: j})
		}
	}
	return out
}

func (m *Model) move(delta int) {
	targets := m.targets()
	if len(targets) == 0 {
		return
	}
	idx := 0
	for i, t := range targets {
		if t == m.cursor {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(targets) {
		idx = len(targets) - 1
	}
	m.cursor = targets[idx]
}

func (m *Model) setDark(dark bool) {
	m.dark = dark
	m.styles = styles.BuildStyles(m.theme, dark)
}

func (m *Model) post(msg tea.Msg) {
	m.outbox = append(m.outbox, msg)
}

func (m *Model) flush() tea.Cmd {
	if len(m.outbox) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.outbox))
	for _, msg := range m.outbox {
		if opened, ok := msg.(LessonOpenedMsg); ok {
			cmds = append(cmds, lessonOpenedCmd(opened))
		}
	}
	m.outbox = nil
	return tea.Batch(cmds...)
}

// hitTest maps a screen row to the target rendered there. Border rows and
// reveal rows that are not drawn, or belong to a collapsing card, hit nothing.
func (m *Model) hitTest(y int) (target, bool) {
	top := headerLines
	width := m.cardWidth()
	for i, card := range m.cards {
		height := lipgloss.Height(card.View(m.styles, components.CardView{Width: width, Cursor: -1}))
		if y < top || y >= top+height {
			top += height
			continue
		}
		// Row 0 and the last row are borders.
		inner := y - top - 1
		if inner < 0 || y == top+height-1 {
			return target{}, false
		}
		infoRows := 1
		if strings.TrimSpace(card.Main().Subtitle) != "" {
			infoRows = 2
		}
		if inner < infoRows {
			return target{card: i, sub: -1}, true
		}
		sub := inner - infoRows
		visible := int(math.Round(card.State().ExpandProgress * float64(len(card.SubItems()))))
		if !card.Expanded() || sub >= visible {
			return target{}, false
		}
		return target{card: i, sub: sub}, true
	}
	return target{}, false
}

func (m *Model) cardWidth() int {
	if m.width <= 0 {
		return maxCardWidth
	}
	width := m.width - 2
	if width > maxCardWidth {
		width = maxCardWidth
	}
	return width
}

func (m *Model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := m.headerViewLines()
	if m.lesson != nil {
		lines = append(lines, m.lessonViewLines()...)
		return fmt.Sprintf("%s\n", joinLines(lines))
	}

	if len(m.cards) == 0 {
		lines = append(lines, components.EmptyMenu().Render(m.styles))
	}
	width := m.cardWidth()
	for i, card := range m.cards {
		view := components.CardView{Width: width, Cursor: -1}
		if m.cursor.card == i {
			view.Focused = true
			view.Cursor = m.cursor.sub
		}
		lines = append(lines, card.View(m.styles, view))
	}

	lines = append(lines, "")
	if m.status != "" {
		lines = append(lines, m.styles.Warning.Render(m.status))
	}
	lines = append(lines, components.RenderFooter(m.styles, m.keyHints(), width))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m *Model) keyHints() []components.KeyHint {
	var card *components.ExpandableCard
	if m.valid(m.cursor) {
		card = m.cards[m.cursor.card]
	}
	return components.MenuKeyHints(card, m.cursor.sub >= 0, m.dark)
}

func (m *Model) headerViewLines() []string {
	mode := "light"
	if m.dark {
		mode = "dark"
	}
	font := m.font
	if font == "" {
		font = "terminal default"
	}
	info := fmt.Sprintf("Theme: %s (%s)  Arabic font: %s", m.theme.Name, mode, font)
	return []string{
		m.styles.Title.Render("نحو  Nahw"),
		m.styles.Muted.Render(info),
		"",
	}
}

func (m *Model) lessonViewLines() []string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Accent.Render(m.lesson.Title),
		"",
		components.EmptyLesson(m.lesson.Title).Render(m.styles),
	)
	// Width excludes the panel border.
	return []string{m.styles.Panel.Width(m.cardWidth() - 2).Padding(0, 1).Render(body)}
}

func (m *Model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
