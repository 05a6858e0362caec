package widgets

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/runtime"
)

// Span is a run of text drawn with one style.
type Span struct {
	Text  string
	Style backend.Style
}

// Line is one rendered row of spans.
type Line []Span

// Width returns the display width of the line in cells.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

// Draw writes the line at (x, y), clipped to width cells.
func (l Line) Draw(buf *runtime.Buffer, x, y, width int) {
	for _, s := range clipLine(l, width) {
		x += buf.SetString(x, y, s.Text, s.Style)
	}
}

// MarkdownTheme styles rendered markdown.
type MarkdownTheme struct {
	Text     backend.Style
	Strong   backend.Style
	Emphasis backend.Style
	Code     backend.Style
	Heading  backend.Style
	Link     backend.Style
	// CodeStyle names the chroma style used for fenced code blocks.
	CodeStyle string
}

// DefaultMarkdownTheme derives a theme from a base text style.
func DefaultMarkdownTheme(base backend.Style) MarkdownTheme {
	return MarkdownTheme{
		Text:      base,
		Strong:    base.Bold(true),
		Emphasis:  base.Italic(true),
		Code:      base.Reverse(true),
		Heading:   base.Bold(true).Underline(true),
		Link:      base.Underline(true),
		CodeStyle: "monokai",
	}
}

var markdown = goldmark.New()

// RenderMarkdown parses source as CommonMark and lays it out in lines no
// wider than width. Paragraphs wrap on spaces; code blocks are highlighted
// and clipped instead of wrapped.
func RenderMarkdown(source string, width int, theme MarkdownTheme) []Line {
	width = max(width, 1)
	src := []byte(source)
	doc := markdown.Parser().Parse(text.NewReader(src))
	r := mdRenderer{src: src, theme: theme}
	return r.blocks(doc, width)
}

type mdRenderer struct {
	src   []byte
	theme MarkdownTheme
}

func (r *mdRenderer) blocks(parent ast.Node, width int) []Line {
	var out []Line
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		lines := r.block(n, width)
		if len(lines) == 0 {
			continue
		}
		if len(out) > 0 && !tightItem(parent) {
			out = append(out, nil)
		}
		out = append(out, lines...)
	}
	return out
}

// tightItem reports whether parent's blocks should not be separated by
// blank lines.
func tightItem(parent ast.Node) bool {
	item, ok := parent.(*ast.ListItem)
	if !ok {
		return false
	}
	list, ok := item.Parent().(*ast.List)
	return ok && list.IsTight
}

func (r *mdRenderer) block(n ast.Node, width int) []Line {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return wrapSpans(r.inline(n, r.theme.Text, nil), width)
	case *ast.Heading:
		return wrapSpans(r.inline(n, r.theme.Heading, nil), width)
	case *ast.FencedCodeBlock:
		return highlightCode(r.code(n), string(n.Language(r.src)), width, r.theme)
	case *ast.CodeBlock:
		return highlightCode(r.code(n), "", width, r.theme)
	case *ast.ThematicBreak:
		return []Line{{{Text: strings.Repeat("─", width), Style: r.theme.Text}}}
	case *ast.Blockquote:
		return prefixLines(r.blocks(n, width-2), Span{Text: "│ ", Style: r.theme.Emphasis}, Span{Text: "│ ", Style: r.theme.Emphasis})
	case *ast.List:
		return r.list(n, width)
	}
	return r.blocks(n, width)
}

func (r *mdRenderer) list(list *ast.List, width int) []Line {
	var out []Line
	index := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = strconv.Itoa(index) + ". "
			index++
		}
		mw := runewidth.StringWidth(marker)
		lines := r.blocks(item, width-mw)
		out = append(out, prefixLines(lines,
			Span{Text: marker, Style: r.theme.Text},
			Span{Text: strings.Repeat(" ", mw), Style: r.theme.Text},
		)...)
	}
	return out
}

func (r *mdRenderer) code(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(r.src))
	}
	return b.String()
}

// inline flattens the inline children of n into spans. A span holding a
// single "\n" marks a hard line break.
func (r *mdRenderer) inline(n ast.Node, style backend.Style, out []Span) []Span {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			out = append(out, Span{Text: string(c.Segment.Value(r.src)), Style: style})
			switch {
			case c.HardLineBreak():
				out = append(out, Span{Text: "\n", Style: style})
			case c.SoftLineBreak():
				out = append(out, Span{Text: " ", Style: style})
			}
		case *ast.String:
			out = append(out, Span{Text: string(c.Value), Style: style})
		case *ast.CodeSpan:
			out = r.inline(c, r.theme.Code, out)
		case *ast.Emphasis:
			if c.Level >= 2 {
				out = r.inline(c, style.Bold(true), out)
			} else {
				out = r.inline(c, style.Italic(true), out)
			}
		case *ast.Link:
			out = r.inline(c, r.theme.Link, out)
		case *ast.AutoLink:
			out = append(out, Span{Text: string(c.Label(r.src)), Style: r.theme.Link})
		default:
			out = r.inline(c, style, out)
		}
	}
	return out
}

// wrapSpans breaks spans into lines of at most width cells, splitting on
// spaces and hard-breaking words that do not fit on a line of their own.
func wrapSpans(spans []Span, width int) []Line {
	width = max(width, 1)
	var (
		lines []Line
		cur   Line
		curW  int
	)
	emit := func() {
		lines = append(lines, trimRight(cur))
		cur, curW = nil, 0
	}
	for _, sp := range spans {
		if sp.Text == "\n" {
			emit()
			continue
		}
		for _, tok := range splitWords(sp.Text) {
			w := runewidth.StringWidth(tok)
			if tok[0] == ' ' {
				if curW == 0 {
					continue
				}
				if curW+w > width {
					emit()
					continue
				}
				cur, curW = appendSpan(cur, tok, sp.Style), curW+w
				continue
			}
			if curW > 0 && curW+w > width {
				emit()
			}
			for w > width {
				head := runewidth.Truncate(tok, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(tok)
					head = tok[:size]
				}
				cur = appendSpan(cur, head, sp.Style)
				emit()
				tok = tok[len(head):]
				w = runewidth.StringWidth(tok)
			}
			if tok != "" {
				cur, curW = appendSpan(cur, tok, sp.Style), curW+w
			}
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		emit()
	}
	return lines
}

// splitWords splits s into alternating runs of spaces and non-spaces.
func splitWords(s string) []string {
	var out []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || (s[i] == ' ') != (s[start] == ' ') {
			out = append(out, s[start:i])
			start = i
		}
	}
	return out
}

func appendSpan(line Line, s string, style backend.Style) Line {
	if n := len(line); n > 0 && line[n-1].Style == style {
		line[n-1].Text += s
		return line
	}
	return append(line, Span{Text: s, Style: style})
}

func trimRight(line Line) Line {
	for len(line) > 0 {
		last := &line[len(line)-1]
		last.Text = strings.TrimRight(last.Text, " ")
		if last.Text != "" {
			break
		}
		line = line[:len(line)-1]
	}
	return line
}

func clipLine(line Line, width int) Line {
	var out Line
	for _, s := range line {
		if width <= 0 {
			break
		}
		w := runewidth.StringWidth(s.Text)
		if w > width {
			s.Text = runewidth.Truncate(s.Text, width, "")
			w = runewidth.StringWidth(s.Text)
		}
		out = append(out, s)
		width -= w
	}
	return out
}

func prefixLines(lines []Line, first, rest Span) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		p := rest
		if i == 0 {
			p = first
		}
		out[i] = append(Line{p}, l...)
	}
	return out
}

// highlightCode tokenises code with chroma and maps token colours onto
// base. Unknown languages are guessed, then fall back to plain text.
func highlightCode(code, lang string, width int, theme MarkdownTheme) []Line {
	code = strings.ReplaceAll(strings.TrimRight(code, "\n"), "\t", "    ")
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(theme.CodeStyle)

	lines := []Line{nil}
	iter, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		lines = nil
		for _, l := range strings.Split(code, "\n") {
			lines = append(lines, Line{{Text: l, Style: theme.Code}})
		}
	} else {
		for _, tok := range iter.Tokens() {
			st := tokenStyle(style.Get(tok.Type), theme.Code)
			for i, part := range strings.Split(tok.Value, "\n") {
				if i > 0 {
					lines = append(lines, nil)
				}
				if part != "" {
					lines[len(lines)-1] = appendSpan(lines[len(lines)-1], part, st)
				}
			}
		}
	}
	for i := range lines {
		lines[i] = clipLine(lines[i], width)
	}
	return lines
}

func tokenStyle(entry chroma.StyleEntry, base backend.Style) backend.Style {
	st := base
	if entry.Colour.IsSet() {
		st = st.Reverse(false).Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	return st
}
