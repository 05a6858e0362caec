package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/furry-spotlight/logging"
	"github.com/odvcencio/furry-spotlight/runtime"
	"github.com/odvcencio/furry-spotlight/terminal"
	"github.com/odvcencio/furry-spotlight/widgets"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestBuiltinTours(t *testing.T) {
	tours, err := loadTours("")
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "sections"}, tours.Names())

	home, err := tours.Find("home")
	require.NoError(t, err)
	assert.Equal(t, 8, home.Len())
	assert.True(t, home.Cancellable())

	sections, err := tours.Find("sections")
	require.NoError(t, err)
	assert.False(t, sections.Cancellable())
}

func TestValidateCmd(t *testing.T) {
	t.Run("built-in tours", func(t *testing.T) {
		out, _, err := execute(t, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "home: 8 steps, cancellable")
		assert.Contains(t, out, "  2. spotlight.this.card.1 (rect(2))")
		assert.Contains(t, out, "sections: 3 steps, required")
		assert.Contains(t, out, "2 tours ok")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
tours:
  - name: broken
    steps:
      - message: no key
      - key: a
        shape: hexagon
`), 0o644))

		_, errOut, err := execute(t, "validate", path)
		require.ErrorIs(t, err, errInvalidTours)
		assert.Contains(t, errOut, `step 1: field "key"`)
		assert.Contains(t, errOut, `step 2: field "shape"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalidTours)
	})
}

func TestTraitsCmd(t *testing.T) {
	t.Run("resolved rect", func(t *testing.T) {
		out, _, err := execute(t, "traits", "--container", "0,0,100,100", "--focus", "10,10,20,20", "--shape", "rect", "--radius", "4")
		require.NoError(t, err)

		var got traitsOutput
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.True(t, got.Resolved)
		assert.Equal(t, rectOutput{X: 8, Y: 8, Width: 24, Height: 24}, got.Focus)
		assert.Equal(t, 4.0, got.CornerRadius)
		assert.Equal(t, "bottom", got.MessageAlignment)
	})

	t.Run("unresolved circle covers container", func(t *testing.T) {
		out, _, err := execute(t, "traits", "--container", "0,0,100,100")
		require.NoError(t, err)

		var got traitsOutput
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.False(t, got.Resolved)
		assert.InDelta(t, 141.42, got.Focus.Width, 0.01)
		assert.InDelta(t, 70.71, got.CornerRadius, 0.01)
		assert.Equal(t, "top", got.MessageAlignment)
	})

	t.Run("bad input", func(t *testing.T) {
		_, _, err := execute(t, "traits", "--focus", "1,2,3")
		assert.ErrorContains(t, err, "--focus")

		_, _, err = execute(t, "traits", "--shape", "star")
		assert.ErrorContains(t, err, "unknown shape")
	})
}

func newTestDemo(t *testing.T, name string) (*demo, *runtime.Screen) {
	t.Helper()
	tours, err := loadTours("")
	require.NoError(t, err)
	tour, err := tours.Find(name)
	require.NoError(t, err)

	d := newDemo(tour, widgets.DefaultOverlayOptions(), logging.NewNop())
	screen := runtime.NewScreen(100, 30)
	screen.SetRoot(d.root)
	d.overlay.Bind(runtime.Services{})
	return d, screen
}

func TestDemo_EveryTourKeyResolves(t *testing.T) {
	for _, name := range []string{"home", "sections"} {
		t.Run(name, func(t *testing.T) {
			d, screen := newTestDemo(t, name)
			d.replay()

			for i, el := range d.tour.Elements() {
				screen.Render()
				frame := d.overlay.Frame()
				require.True(t, frame.Active, "step %d", i+1)
				assert.Equal(t, el.Key, frame.Key)
				assert.True(t, frame.Resolved, "key %s should resolve", el.Key)
				assert.Equal(t, i+1, frame.Step)
				screen.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})
			}

			screen.Render()
			assert.False(t, d.overlay.Frame().Active)
		})
	}
}

func TestDemo_Shortcuts(t *testing.T) {
	d, screen := newTestDemo(t, "home")
	d.replay()

	result := screen.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'q'})
	assert.True(t, result.Handled)
	assert.Empty(t, result.Commands, "q is swallowed while the tour runs")

	screen.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEscape})
	require.False(t, d.overlay.Sequencer().Active())

	screen.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'p'})
	step, total := d.overlay.Sequencer().Progress()
	assert.Equal(t, 1, step)
	assert.Equal(t, 8, total)

	screen.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEscape})
	result = screen.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'q'})
	assert.Equal(t, []runtime.Command{runtime.Quit{}}, result.Commands)
}

func TestDemo_StatusLine(t *testing.T) {
	d, screen := newTestDemo(t, "home")
	screen.Render()
	assert.False(t, d.overlay.Frame().Active)

	d.replay()
	screen.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})
	screen.Render()

	buf := screen.Buffer()
	found := false
	_, h := buf.Size()
	for y := 0; y < h && !found; y++ {
		var row []rune
		for _, c := range buf.Row(y, 0, 100) {
			row = append(row, c.Rune)
		}
		found = strings.Contains(string(row), "step 2 of 8")
	}
	assert.True(t, found, "status line should show the current step")
}
