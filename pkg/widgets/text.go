package widgets

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/terminal"
)

// Text is a multi-line read-only text pane with vertical scrolling.
// AddLine appends and keeps the newest lines in view.
type Text struct {
	lines  []string
	scroll int
	follow bool
}

// NewText creates a text pane that follows appended lines.
func NewText(lines ...string) *Text {
	return &Text{lines: lines, follow: true}
}

// SetText replaces the whole content, splitting on newlines.
func (t *Text) SetText(text string) {
	t.lines = strings.Split(text, "\n")
	t.scroll = 0
	t.follow = true
}

// AddLine appends one line.
func (t *Text) AddLine(line string) {
	t.lines = append(t.lines, line)
}

// Lines returns the current content.
func (t *Text) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// ScrollBy moves the viewport by delta lines. Any manual scroll stops
// the pane from following appends until it reaches the bottom again.
func (t *Text) ScrollBy(delta int) {
	t.scroll += delta
	if t.scroll < 0 {
		t.scroll = 0
	}
	if t.scroll >= len(t.lines) {
		t.scroll = max(0, len(t.lines)-1)
	}
	t.follow = false
}

func (t *Text) Kind() string { return "text" }

func (t *Text) ContentSize() core.Size {
	w := 0
	for _, line := range t.lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return core.Size{Width: w, Height: len(t.lines)}
}

func (t *Text) Paint(ctx core.PaintContext) {
	h := ctx.Bounds.Height
	top := t.scroll
	if t.follow && len(t.lines) > h {
		top = len(t.lines) - h
	}
	style := ctx.Style("text")
	for row := 0; row < h; row++ {
		i := top + row
		if i >= len(t.lines) {
			break
		}
		ctx.Print(0, row, t.lines[i], style)
	}
}

func (t *Text) HandleMouse(x, y int, ev terminal.MouseEvent) bool {
	switch ev.Button {
	case terminal.MouseWheelUp:
		t.ScrollBy(-1)
		return true
	case terminal.MouseWheelDown:
		t.ScrollBy(1)
		if t.scroll >= max(0, len(t.lines)-1) {
			t.follow = true
		}
		return true
	}
	return false
}

var (
	_ core.Painter      = (*Text)(nil)
	_ core.Measurer     = (*Text)(nil)
	_ core.MouseHandler = (*Text)(nil)
)
