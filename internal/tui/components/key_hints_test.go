package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nahw-app/nahw/internal/models"
	"github.com/nahw-app/nahw/internal/tui/anim/animtest"
	"github.com/nahw-app/nahw/internal/tui/styles"
)

func TestRenderKeyHintBarSkipsDisabled(t *testing.T) {
	bar := RenderKeyHintBar(styles.DefaultStyles(), []KeyHint{
		{Key: "enter", Label: "Open", Enabled: true},
		{Key: "x", Label: "Hidden", Enabled: false},
	})
	assert.Contains(t, bar, "enter")
	assert.Contains(t, bar, "Open")
	assert.NotContains(t, bar, "Hidden")

	assert.Empty(t, RenderKeyHintBar(styles.DefaultStyles(), nil))
}

func TestMenuKeyHintsFollowCardState(t *testing.T) {
	loop := animtest.NewLoop()
	card := newTestCard(loop, ExpandableCardOptions{SubItems: pronounItems})

	label := func(hints []KeyHint) string { return hints[1].Label }

	assert.Equal(t, "Expand", label(MenuKeyHints(card, false, false)))
	loop.Enqueue(card.MainPress())
	assert.Equal(t, "Collapse", label(MenuKeyHints(card, false, false)))
	assert.Equal(t, "Select", label(MenuKeyHints(card, true, false)))

	delegated := newTestCard(loop, ExpandableCardOptions{Main: models.MenuItem{ID: "alphabet"}, OnMainPress: func() {}})
	assert.Equal(t, "Open", label(MenuKeyHints(delegated, false, false)))

	none := MenuKeyHints(nil, false, true)
	assert.False(t, none[0].Enabled)
	assert.False(t, none[1].Enabled)
	assert.Equal(t, "Light", none[2].Label)
}
