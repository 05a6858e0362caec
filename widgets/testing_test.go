package widgets

import (
	"strings"

	"github.com/odvcencio/furry-spotlight/runtime"
)

// recorder is a content widget that records the messages it receives.
type recorder struct {
	Base
	got     []runtime.Message
	handled bool
}

func (r *recorder) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: c.MaxWidth, Height: c.MaxHeight})
}

func (r *recorder) Render(runtime.RenderContext) {}

func (r *recorder) HandleMessage(msg runtime.Message) runtime.HandleResult {
	r.got = append(r.got, msg)
	if r.handled {
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func lineText(l Line) string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func linesText(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = lineText(l)
	}
	return out
}

func rowText(buf *runtime.Buffer, y, x0, x1 int) string {
	var b strings.Builder
	for x := x0; x < x1; x++ {
		b.WriteRune(buf.Get(x, y).Rune)
	}
	return b.String()
}
