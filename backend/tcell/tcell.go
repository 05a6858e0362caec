// Package tcell implements backend.Backend on top of tcell.
package tcell

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/terminal"
)

// Backend drives a tcell screen.
type Backend struct {
	screen tcell.Screen
	resize func()

	pasting bool
	paste   strings.Builder
}

// New creates a backend for the controlling terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing screen, typically a simulation screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// NewSimulation creates a backend over an in-memory screen of w by h
// cells. The screen is returned for injecting events and reading cells.
func NewSimulation(w, h int) (*Backend, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	be := &Backend{screen: sim}
	be.resize = func() { sim.SetSize(w, h) }
	return be, sim
}

// Screen returns the wrapped screen.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Init initializes the screen and enables mouse and paste reporting.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	if b.resize != nil {
		b.resize()
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	b.screen.Clear()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the screen size in cells.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// SetContent writes one cell.
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, style)
}

// SetRow writes a run of cells starting at (startX, y).
func (b *Backend) SetRow(y, startX int, cells []backend.Cell) {
	for i, cell := range cells {
		b.screen.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
	}
}

// Show flushes pending changes to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// HideCursor hides the text cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// PollEvent blocks until an event the runtime understands arrives.
// It returns nil once the screen is finalized.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if out, ok := b.translate(ev); ok {
			return out
		}
	}
}

func (b *Backend) translate(ev tcell.Event) (terminal.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		if e.Start() {
			b.pasting = true
			b.paste.Reset()
			return nil, false
		}
		b.pasting = false
		return terminal.PasteEvent{Text: b.paste.String()}, true
	case *tcell.EventKey:
		if b.pasting {
			switch e.Key() {
			case tcell.KeyRune:
				b.paste.WriteRune(e.Rune())
			case tcell.KeyEnter:
				b.paste.WriteByte('\n')
			}
			return nil, false
		}
		return translateKey(e), true
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}, true
	case *tcell.EventMouse:
		return translateMouse(e), true
	}
	return nil, false
}

var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyRune:       terminal.KeyRune,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyF1:         terminal.KeyF1,
}

func translateKey(e *tcell.EventKey) terminal.KeyEvent {
	mods := e.Modifiers()
	out := terminal.KeyEvent{
		Key:   keyMap[e.Key()],
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}
	if out.Key == terminal.KeyRune {
		out.Rune = e.Rune()
	}
	return out
}

func translateMouse(e *tcell.EventMouse) terminal.MouseEvent {
	x, y := e.Position()
	mods := e.Modifiers()
	out := terminal.MouseEvent{
		X:      x,
		Y:      y,
		Action: terminal.MousePress,
		Alt:    mods&tcell.ModAlt != 0,
		Ctrl:   mods&tcell.ModCtrl != 0,
		Shift:  mods&tcell.ModShift != 0,
	}
	buttons := e.Buttons()
	switch {
	case buttons&tcell.Button1 != 0:
		out.Button = terminal.MouseLeft
	case buttons&tcell.Button3 != 0:
		out.Button = terminal.MouseMiddle
	case buttons&tcell.Button2 != 0:
		out.Button = terminal.MouseRight
	case buttons&tcell.WheelUp != 0:
		out.Button = terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		out.Button = terminal.MouseWheelDown
	default:
		out.Action = terminal.MouseRelease
	}
	return out
}
