package components

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahw-app/nahw/internal/models"
	"github.com/nahw-app/nahw/internal/tui/anim"
	"github.com/nahw-app/nahw/internal/tui/anim/animtest"
	"github.com/nahw-app/nahw/internal/tui/styles"
)

const frame = 50 * time.Millisecond

var pronounItems = []models.MenuItem{
	{ID: "a", Title: "Detached pronouns", Subtitle: "ضمائر منفصلة", Icon: "👤", Color: "teal-600"},
	{ID: "b", Title: "Attached pronouns", Subtitle: "ضمائر متصلة", Icon: "🔗", Color: "primary"},
}

func newTestCard(loop *animtest.Loop, opts ExpandableCardOptions) *ExpandableCard {
	nop := zerolog.Nop()
	opts.Logger = &nop
	opts.DriverOptions = append(opts.DriverOptions, anim.WithClock(loop.Clock), anim.WithScheduler(loop.Schedule))
	if opts.Main.ID == "" {
		opts.Main = models.MenuItem{ID: "pronouns", Title: "Pronouns", Subtitle: "الضمائر", Icon: "📘", Color: "orange-600"}
	}
	return NewExpandableCard(opts)
}

func settle(loop *animtest.Loop, card *ExpandableCard) {
	loop.Run(frame, 100, card.Update)
}

func TestExpandableCardStartsCollapsed(t *testing.T) {
	loop := animtest.NewLoop()
	card := newTestCard(loop, ExpandableCardOptions{SubItems: pronounItems})

	assert.Equal(t, CardState{Expanded: false, PressScale: 1, ExpandProgress: 0, RotateProgress: 0}, card.State())
	assert.True(t, card.Mounted())
	assert.False(t, card.Delegated())
}

func TestExpandableCardToggleSymmetry(t *testing.T) {
	for n := 0; n <= 3; n++ {
		loop := animtest.NewLoop()
		card := newTestCard(loop, ExpandableCardOptions{SubItems: pronounItems})
		initial := card.Expanded()

		loop.Enqueue(card.MainPress())
		assert.True(t, card.Expanded(), "one press expands")
		loop.Enqueue(card.MainPress())
		assert.False(t, card.Expanded(), "two presses collapse")

		for i := 0; i < 2*n; i++ {
			loop.Enqueue(card.MainPress())
		}
		settle(loop, card)
		assert.Equal(t, initial, card.Expanded(), "after %d extra presses", 2*n)
		assert.Equal(t, 0.0, card.State().ExpandProgress)
		assert.Equal(t, 0.0, card.State().RotateProgress)
	}
}

func TestExpandableCardExpandAnimatesBothTracks(t *testing.T) {
	loop := animtest.NewLoop()
	ended := []bool{}
	card := newTestCard(loop, ExpandableCardOptions{
		SubItems:        pronounItems,
		OnTransitionEnd: func(expanded bool) { ended = append(ended, expanded) },
	})

	cmd := card.MainPress()
	require.NotNil(t, cmd)
	assert.Equal(t, 2, loop.Scheduled, "layout and compositor frames issued together")
	loop.Enqueue(cmd)

	loop.Step(150*time.Millisecond, card.Update)
	state := card.State()
	assert.Greater(t, state.ExpandProgress, 0.0)
	assert.Less(t, state.ExpandProgress, 1.0)
	assert.Greater(t, state.RotateProgress, 0.0)
	assert.True(t, card.Animating())

	settle(loop, card)
	state = card.State()
	assert.Equal(t, 1.0, state.ExpandProgress)
	assert.Equal(t, 1.0, state.RotateProgress)
	assert.False(t, card.Animating())
	assert.Equal(t, []bool{true}, ended)
}

func TestExpandableCardReentrantPressRestartsFromCurrent(t *testing.T) {
	loop := animtest.NewLoop()
	card := newTestCard(loop, ExpandableCardOptions{
		SubItems: pronounItems,
		Timing:   anim.Timing{Duration: 300 * time.Millisecond, Easing: anim.Linear},
	})

	loop.Enqueue(card.MainPress())
	loop.Step(150*time.Millisecond, card.Update)
	mid := card.State().ExpandProgress
	require.InDelta(t, 0.5, mid, 1e-9)

	loop.Enqueue(card.MainPress())
	assert.False(t, card.Expanded())
	assert.InDelta(t, mid, card.State().ExpandProgress, 1e-9, "second press must not jump")

	loop.Step(frame, card.Update)
	assert.Less(t, card.State().ExpandProgress, mid)

	settle(loop, card)
	assert.Equal(t, 0.0, card.State().ExpandProgress)
}

func TestExpandableCardDelegationLaw(t *testing.T) {
	loop := animtest.NewLoop()
	presses := 0
	card := newTestCard(loop, ExpandableCardOptions{
		SubItems:    pronounItems,
		OnMainPress: func() { presses++ },
	})
	require.True(t, card.Delegated())

	for i := 0; i < 5; i++ {
		assert.Nil(t, card.MainPress())
		assert.False(t, card.Expanded())
	}
	assert.Equal(t, 5, presses)
	assert.Equal(t, 0, loop.Scheduled)
	assert.Equal(t, 0.0, card.State().ExpandProgress)
}

func TestExpandableCardPressFeedbackIsCosmetic(t *testing.T) {
	loop := animtest.NewLoop()
	card := newTestCard(loop, ExpandableCardOptions{SubItems: pronounItems})

	loop.Enqueue(card.PressIn())
	settle(loop, card)
	assert.InDelta(t, 0.95, card.State().PressScale, 1e-9)
	assert.False(t, card.Expanded())

	loop.Enqueue(card.PressOut())
	settle(loop, card)
	assert.Equal(t, 1.0, card.State().PressScale)
	assert.False(t, card.Expanded())
}

func TestExpandableCardSubItemPress(t *testing.T) {
	loop := animtest.NewLoop()
	var pressed []models.MenuItem
	card := newTestCard(loop, ExpandableCardOptions{
		SubItems:       pronounItems,
		OnSubItemPress: func(item models.MenuItem) { pressed = append(pressed, item) },
	})

	// Collapsed: items are mounted but inert.
	assert.False(t, card.SubItemPress(pronounItems[1]))
	assert.Empty(t, pressed)

	loop.Enqueue(card.MainPress())
	settle(loop, card)

	assert.True(t, card.SubItemPress(models.MenuItem{ID: "b"}))
	require.Len(t, pressed, 1)
	assert.Equal(t, "b", pressed[0].ID)
	assert.Equal(t, pronounItems[1], pressed[0])
	assert.True(t, card.Expanded())

	assert.False(t, card.SubItemPress(models.MenuItem{ID: "zzz"}))
	assert.False(t, card.SubItemPressAt(7))
	assert.Len(t, pressed, 1)

	assert.True(t, card.SubItemPressAt(0))
	require.Len(t, pressed, 2)
	assert.Equal(t, "a", pressed[1].ID)
}

func TestExpandableCardSubItemsAreCopied(t *testing.T) {
	loop := animtest.NewLoop()
	items := append([]models.MenuItem(nil), pronounItems...)
	card := newTestCard(loop, ExpandableCardOptions{SubItems: items})

	items[0].Title = "changed"
	assert.Equal(t, "Detached pronouns", card.SubItems()[0].Title)

	copied := card.SubItems()
	copied[1].Title = "changed"
	assert.Equal(t, "Attached pronouns", card.SubItems()[1].Title)
}

func TestExpandableCardUnmountSafety(t *testing.T) {
	loop := animtest.NewLoop()
	calls := 0
	card := newTestCard(loop, ExpandableCardOptions{
		SubItems:        pronounItems,
		OnTransitionEnd: func(bool) { calls++ },
		OnSubItemPress:  func(models.MenuItem) { calls++ },
	})

	loop.Enqueue(card.MainPress())
	loop.Step(100*time.Millisecond, card.Update)
	require.True(t, card.Animating())
	before := calls

	card.Unmount()
	card.Unmount()

	loop.Run(frame, 100, card.Update)
	assert.Equal(t, before, calls)
	assert.False(t, card.Mounted())
	assert.Equal(t, CardState{PressScale: 1}, card.State())

	assert.Nil(t, card.MainPress())
	assert.Nil(t, card.PressIn())
	assert.False(t, card.SubItemPress(pronounItems[0]))
	assert.Equal(t, before, calls)
}

func TestExpandableCardWithoutSubItems(t *testing.T) {
	loop := animtest.NewLoop()
	card := newTestCard(loop, ExpandableCardOptions{})
	styleSet := styles.DefaultStyles()

	collapsed := card.View(styleSet, CardView{Width: 40, Cursor: -1})
	assert.Contains(t, collapsed, "▶")

	loop.Enqueue(card.MainPress())
	settle(loop, card)
	assert.True(t, card.Expanded())

	expanded := card.View(styleSet, CardView{Width: 40, Cursor: -1})
	assert.Contains(t, expanded, "▼")
	assert.Equal(t, strings.Count(collapsed, "\n"), strings.Count(expanded, "\n"), "empty reveal region")
}

func TestExpandableCardView(t *testing.T) {
	loop := animtest.NewLoop()
	card := newTestCard(loop, ExpandableCardOptions{SubItems: pronounItems})
	styleSet := styles.BuildStyles(styles.DefaultTheme, true)

	collapsed := card.View(styleSet, CardView{Width: 48, Focused: true, Cursor: -1})
	assert.Contains(t, collapsed, "Pronouns")
	assert.Contains(t, collapsed, "الضمائر")
	assert.NotContains(t, collapsed, "Detached pronouns")

	loop.Enqueue(card.MainPress())
	settle(loop, card)

	expanded := card.View(styleSet, CardView{Width: 48, Focused: true, Cursor: 1})
	assert.Contains(t, expanded, "Detached pronouns")
	assert.Contains(t, expanded, "Attached pronouns")
	assert.Contains(t, expanded, "›")
}

func TestExpandableCardRendersMalformedItems(t *testing.T) {
	loop := animtest.NewLoop()
	card := newTestCard(loop, ExpandableCardOptions{
		Main:     models.MenuItem{ID: "blank", Color: "no-such-token"},
		SubItems: []models.MenuItem{{ID: "x"}},
	})
	loop.Enqueue(card.MainPress())
	settle(loop, card)

	assert.NotPanics(t, func() {
		card.View(styles.DefaultStyles(), CardView{Cursor: -1})
	})
}

func TestExpandableCardDelegatedAffordance(t *testing.T) {
	loop := animtest.NewLoop()
	card := newTestCard(loop, ExpandableCardOptions{OnMainPress: func() {}})

	view := card.View(styles.DefaultStyles(), CardView{Width: 30, Cursor: -1})
	assert.Contains(t, view, "→")
	assert.NotContains(t, view, "▶")
}
