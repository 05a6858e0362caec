package tcell

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/terminal"
)

func TestSimulation_SizeAndRow(t *testing.T) {
	be, sim := NewSimulation(20, 5)
	require.NoError(t, be.Init())
	defer be.Fini()

	w, h := be.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 5, h)

	style := backend.DefaultStyle().Bold(true)
	be.SetRow(2, 3, []backend.Cell{{Rune: 'h', Style: style}, {Rune: 'i', Style: style}})
	be.Show()

	r, _, got, _ := sim.GetContent(3, 2)
	assert.Equal(t, 'h', r)
	assert.Equal(t, style, got)
	r, _, _, _ = sim.GetContent(4, 2)
	assert.Equal(t, 'i', r)
}

func TestTranslate_Key(t *testing.T) {
	be := &Backend{}

	ev, ok := be.translate(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModAlt))
	require.True(t, ok)
	assert.Equal(t, terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'n', Alt: true}, ev)

	ev, ok = be.translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, terminal.KeyEscape, ev.(terminal.KeyEvent).Key)
}

func TestTranslate_ResizeAndMouse(t *testing.T) {
	be := &Backend{}

	ev, ok := be.translate(tcell.NewEventResize(80, 24))
	require.True(t, ok)
	assert.Equal(t, terminal.ResizeEvent{Width: 80, Height: 24}, ev)

	ev, ok = be.translate(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModCtrl))
	require.True(t, ok)
	assert.Equal(t, terminal.MouseEvent{X: 3, Y: 4, Button: terminal.MouseLeft, Action: terminal.MousePress, Ctrl: true}, ev)

	ev, _ = be.translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, terminal.MouseRelease, ev.(terminal.MouseEvent).Action)
}

func TestTranslate_PasteCollectsKeys(t *testing.T) {
	be := &Backend{}

	_, ok := be.translate(tcell.NewEventPaste(true))
	assert.False(t, ok)
	for _, r := range "hi" {
		_, ok = be.translate(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		assert.False(t, ok)
	}
	be.translate(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	ev, ok := be.translate(tcell.NewEventPaste(false))
	require.True(t, ok)
	assert.Equal(t, terminal.PasteEvent{Text: "hi\n"}, ev)
}
