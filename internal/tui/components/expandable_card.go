// Package components provides reusable TUI components.
package components

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/nahw-app/nahw/internal/logging"
	"github.com/nahw-app/nahw/internal/models"
	"github.com/nahw-app/nahw/internal/tui/anim"
	"github.com/nahw-app/nahw/internal/tui/styles"
)

const (
	pressedScale = 0.95
	minCardWidth = 24
)

// DefaultPressTiming is the press-feedback transition.
var DefaultPressTiming = anim.Timing{Duration: 100 * time.Millisecond, Easing: anim.EaseInOutCubic}

// Chevron frames from 0° (collapsed) to 90° (expanded).
var chevronFrames = []string{"▶", "◢", "▼"}

// ExpandableCardOptions configures an ExpandableCard.
type ExpandableCardOptions struct {
	Main     models.MenuItem
	SubItems []models.MenuItem

	// OnMainPress, when set, replaces the expand/collapse behavior: the card
	// becomes a plain button and never changes state on its own.
	OnMainPress func()
	// OnSubItemPress receives sub-items pressed while the card is expanded.
	OnSubItemPress func(models.MenuItem)
	// OnTransitionEnd fires when the expand transition settles.
	OnTransitionEnd func(expanded bool)

	// Timing drives the expand and rotate tracks. Zero uses anim.DefaultTiming.
	Timing anim.Timing
	// PressTiming drives press feedback. Zero uses DefaultPressTiming.
	PressTiming anim.Timing

	DriverOptions []anim.Option
	Logger        *zerolog.Logger
}

// CardState is a snapshot of a card's interaction state.
type CardState struct {
	Expanded       bool
	PressScale     float64
	ExpandProgress float64
	RotateProgress float64
}

// ExpandableCard is a menu card that toggles between collapsed and expanded,
// revealing its sub-items with an animated transition.
//
// The card owns its animation driver. Call Unmount when the card leaves the
// screen so pending frames and callbacks are released.
type ExpandableCard struct {
	main     models.MenuItem
	subItems []models.MenuItem

	onMainPress     func()
	onSubItemPress  func(models.MenuItem)
	onTransitionEnd func(expanded bool)

	timing      anim.Timing
	pressTiming anim.Timing

	driver *anim.Driver
	scale  *anim.Track
	expand *anim.Track
	rotate *anim.Track

	expanded bool
	mounted  bool
	logger   zerolog.Logger
}

// NewExpandableCard creates a mounted, collapsed card.
func NewExpandableCard(opts ExpandableCardOptions) *ExpandableCard {
	logger := logging.Component("card")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	timing := opts.Timing
	if timing.Duration <= 0 {
		timing = anim.DefaultTiming
	}
	pressTiming := opts.PressTiming
	if pressTiming.Duration <= 0 {
		pressTiming = DefaultPressTiming
	}

	driverOpts := append([]anim.Option{anim.WithLogger(logger)}, opts.DriverOptions...)
	driver := anim.NewDriver(driverOpts...)

	return &ExpandableCard{
		main:            opts.Main,
		subItems:        append([]models.MenuItem(nil), opts.SubItems...),
		onMainPress:     opts.OnMainPress,
		onSubItemPress:  opts.OnSubItemPress,
		onTransitionEnd: opts.OnTransitionEnd,
		timing:          timing,
		pressTiming:     pressTiming,
		driver:          driver,
		scale:           driver.NewTrack("press_scale", anim.PipelineCompositor, 1),
		expand:          driver.NewTrack("expand_progress", anim.PipelineLayout, 0),
		rotate:          driver.NewTrack("rotate_progress", anim.PipelineCompositor, 0),
		mounted:         true,
		logger:          logger.With().Str("card", opts.Main.ID).Logger(),
	}
}

// Main returns the card's main item.
func (c *ExpandableCard) Main() models.MenuItem { return c.main }

// SubItems returns a copy of the card's sub-items.
func (c *ExpandableCard) SubItems() []models.MenuItem {
	return append([]models.MenuItem(nil), c.subItems...)
}

// Delegated reports whether an external main-press handler is bound.
func (c *ExpandableCard) Delegated() bool { return c.onMainPress != nil }

// Expanded reports whether the card is expanded.
func (c *ExpandableCard) Expanded() bool { return c.expanded }

// Mounted reports whether the card is still interactive.
func (c *ExpandableCard) Mounted() bool { return c.mounted }

// Animating reports whether any transition is in flight.
func (c *ExpandableCard) Animating() bool { return c.driver.Running() }

// State returns a snapshot of the card state.
func (c *ExpandableCard) State() CardState {
	return CardState{
		Expanded:       c.expanded,
		PressScale:     c.scale.Value(),
		ExpandProgress: c.expand.Value(),
		RotateProgress: c.rotate.Value(),
	}
}

// PressIn starts press feedback. It does not change the expanded state.
func (c *ExpandableCard) PressIn() tea.Cmd {
	if !c.mounted {
		return nil
	}
	return c.driver.Animate(c.scale, pressedScale, c.pressTiming, nil)
}

// PressOut reverses press feedback.
func (c *ExpandableCard) PressOut() tea.Cmd {
	if !c.mounted {
		return nil
	}
	return c.driver.Animate(c.scale, 1, c.pressTiming, nil)
}

// MainPress handles a press on the card header. With an external handler
// bound it only calls the handler. Otherwise it toggles the expanded state
// and starts the expand (layout) and rotate (compositor) transitions
// together. Presses during a transition are not ignored: each one flips the
// state and retargets both tracks from wherever they are.
func (c *ExpandableCard) MainPress() tea.Cmd {
	if !c.mounted {
		return nil
	}
	if c.onMainPress != nil {
		c.onMainPress()
		return nil
	}

	c.expanded = !c.expanded
	expanded := c.expanded
	target := 0.0
	if expanded {
		target = 1
	}

	c.logger.Debug().Bool("expanded", expanded).Msg("card toggled")

	layout := c.driver.Animate(c.expand, target, c.timing, func() {
		if c.onTransitionEnd != nil {
			c.onTransitionEnd(expanded)
		}
	})
	compositor := c.driver.Animate(c.rotate, target, c.timing, nil)
	return tea.Batch(layout, compositor)
}

// SubItemPress forwards a pressed sub-item to OnSubItemPress. It has no
// effect while the card is collapsed or when the item is not one of the
// card's sub-items. It reports whether the callback ran.
func (c *ExpandableCard) SubItemPress(item models.MenuItem) bool {
	if !c.mounted || !c.expanded || c.onSubItemPress == nil {
		return false
	}
	match, ok := models.FindItem(c.subItems, item.ID)
	if !ok {
		return false
	}
	c.onSubItemPress(match)
	return true
}

// SubItemPressAt presses the sub-item at index.
func (c *ExpandableCard) SubItemPressAt(index int) bool {
	if index < 0 || index >= len(c.subItems) {
		return false
	}
	return c.SubItemPress(c.subItems[index])
}

// Update feeds animation frames to the card.
func (c *ExpandableCard) Update(msg tea.Msg) tea.Cmd {
	if !c.mounted {
		return nil
	}
	return c.driver.Update(msg)
}

// Unmount releases the animation driver and resets the card state. No
// callback registered by the card fires afterwards. Unmount is idempotent.
func (c *ExpandableCard) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.driver.Release()
	c.driver.Set(c.scale, 1)
	c.driver.Set(c.expand, 0)
	c.driver.Set(c.rotate, 0)
	c.expanded = false
	c.onMainPress = nil
	c.onSubItemPress = nil
	c.onTransitionEnd = nil
}

// CardView carries per-render presentation inputs.
type CardView struct {
	Width   int
	Focused bool
	// Cursor is the highlighted sub-item index, or -1 for the header.
	Cursor int
}

// View renders the card. Item colors are resolved on every call so a theme
// mode switch shows up on the next frame.
func (c *ExpandableCard) View(styleSet styles.Styles, view CardView) string {
	state := c.State()

	titleStyle := lipgloss.NewStyle().Foreground(styleSet.Color(c.main.Color)).Bold(true)
	header := joinNonEmpty(" ", c.main.Icon, titleStyle.Render(c.main.Title))
	if affordance := c.affordance(state); affordance != "" {
		header += "  " + styleSet.Muted.Render(affordance)
	}

	lines := []string{header}
	if strings.TrimSpace(c.main.Subtitle) != "" {
		lines = append(lines, styleSet.Muted.Render(c.main.Subtitle))
	}
	lines = append(lines, c.revealLines(styleSet, state, view)...)

	borderColor := styleSet.Color(c.main.Color)
	if view.Focused {
		borderColor = styleSet.Color(styles.TokenFocus)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	if view.Width > 0 {
		outer := view.Width
		if outer < minCardWidth {
			outer = minCardWidth
		}
		scaled := int(math.Round(float64(outer) * state.PressScale))
		inset := (outer - scaled) / 2
		// Width excludes the border.
		box = box.Width(scaled - 2).MarginLeft(inset)
	}

	return box.Render(strings.Join(lines, "\n"))
}

func (c *ExpandableCard) affordance(state CardState) string {
	if c.Delegated() {
		return "→"
	}
	idx := int(math.Round(state.RotateProgress * float64(len(chevronFrames)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(chevronFrames) {
		idx = len(chevronFrames) - 1
	}
	return chevronFrames[idx]
}

// revealLines renders the sub-item region. Its height follows the expand
// track and its text fades in with it.
func (c *ExpandableCard) revealLines(styleSet styles.Styles, state CardState, view CardView) []string {
	visible := int(math.Round(state.ExpandProgress * float64(len(c.subItems))))
	if visible <= 0 {
		return nil
	}

	lines := make([]string, 0, visible)
	for i, item := range c.subItems[:visible] {
		marker := "  "
		if view.Focused && c.expanded && view.Cursor == i {
			marker = styleSet.Focus.Render("› ")
		}
		title := lipgloss.NewStyle().Foreground(styleSet.Faded(item.Color, state.ExpandProgress)).Render(item.Title)
		line := marker + joinNonEmpty(" ", item.Icon, title)
		if strings.TrimSpace(item.Subtitle) != "" {
			subtitle := lipgloss.NewStyle().Foreground(styleSet.Faded(styles.TokenTextMuted, state.ExpandProgress)).Render(item.Subtitle)
			line += "  " + subtitle
		}
		lines = append(lines, line)
	}
	return lines
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
