package widgets

import (
	"strings"
	"testing"

	"github.com/weftui/weft/pkg/backend"
	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/signal"
	"github.com/weftui/weft/pkg/theme"
)

// cellGrid records paints for widget-level assertions.
type cellGrid struct {
	w, h   int
	cells  map[[2]int]rune
	styles map[[2]int]backend.Style
}

func newGrid(w, h int) *cellGrid {
	return &cellGrid{
		w: w, h: h,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]backend.Style),
	}
}

func (g *cellGrid) Size() (int, int) { return g.w, g.h }

func (g *cellGrid) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	g.cells[[2]int{x, y}] = mainc
	g.styles[[2]int{x, y}] = style
}

// find returns the leftmost cell of a row painted with style, or -1.
func (g *cellGrid) find(y int, style backend.Style) int {
	for x := 0; x < g.w; x++ {
		if g.styles[[2]int{x, y}] == style {
			return x
		}
	}
	return -1
}

// row returns the painted runes of one row, trimmed on the right.
func (g *cellGrid) row(y int) string {
	var sb strings.Builder
	for x := 0; x < g.w; x++ {
		r, ok := g.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// paint renders a widget into a fresh grid of the given size.
func paint(w core.Painter, width, height int, state theme.State) *cellGrid {
	g := newGrid(width, height)
	bounds := core.NewRect(0, 0, width, height)
	w.Paint(core.NewPaintContext(g, theme.Default(), bounds, bounds, state))
	return g
}

func TestLabelPaint(t *testing.T) {
	l := NewLabel("hello")

	if got := paint(l, 10, 1, theme.StateDefault).row(0); got != "hello" {
		t.Errorf("row = %q, want hello", got)
	}

	l.SetAlign(AlignRight)
	if got := paint(l, 10, 1, theme.StateDefault).row(0); got != "     hello" {
		t.Errorf("right aligned row = %q", got)
	}

	l.SetAlign(AlignCenter)
	if got := paint(l, 11, 1, theme.StateDefault).row(0); got != "   hello" {
		t.Errorf("centered row = %q", got)
	}
}

func TestLabelEmbellish(t *testing.T) {
	l := NewLabel("save")
	l.Embellish("[ ", " ]")

	if got := l.ContentSize(); got.Width != 8 {
		t.Errorf("ContentSize.Width = %d, want 8", got.Width)
	}
	if got := paint(l, 10, 1, theme.StateDefault).row(0); got != "[ save ]" {
		t.Errorf("row = %q", got)
	}
	if l.Text() != "save" {
		t.Errorf("Text() = %q, embellishment must not leak into the text", l.Text())
	}
}

func TestTextScrollFollowsTail(t *testing.T) {
	txt := NewText()
	for _, line := range []string{"one", "two", "three", "four", "five"} {
		txt.AddLine(line)
	}

	// Three visible rows follow the newest lines.
	g := paint(txt, 10, 3, theme.StateDefault)
	if g.row(0) != "three" || g.row(2) != "five" {
		t.Errorf("rows = %q, %q, want three..five", g.row(0), g.row(2))
	}

	// Scrolling up stops following.
	txt.ScrollBy(-2)
	g = paint(txt, 10, 3, theme.StateDefault)
	if g.row(0) != "two" {
		t.Errorf("after scroll, top row = %q, want two", g.row(0))
	}
}

func TestTextContentSize(t *testing.T) {
	txt := NewText("ab", "abcdef", "abc")
	got := txt.ContentSize()
	if got.Width != 6 || got.Height != 3 {
		t.Errorf("ContentSize = %+v, want 6x3", got)
	}
}

func TestPanelPaint(t *testing.T) {
	p := NewPanel("Files")
	g := paint(p, 12, 4, theme.StateDefault)

	if got := g.row(0); got != "┌ Files ───┐" {
		t.Errorf("top row = %q, want a framed title", got)
	}
	if g.cells[[2]int{0, 3}] != '└' || g.cells[[2]int{11, 3}] != '┘' {
		t.Error("bottom corners missing")
	}
	if g.cells[[2]int{0, 1}] != '│' || g.cells[[2]int{11, 2}] != '│' {
		t.Error("side borders missing")
	}
}

func TestStatusLineSignal(t *testing.T) {
	s := NewStatusLine("ready")

	if s.Message() != "ready" {
		t.Errorf("idle message = %q, want fallback", s.Message())
	}

	if !s.ReceiveSignal(signal.New(SignalStatus, signal.Payload{"message": "saved", "error": false})) {
		t.Fatal("status signal should be handled")
	}
	if s.Message() != "saved" {
		t.Errorf("message = %q, want saved", s.Message())
	}

	if s.ReceiveSignal(signal.New("other", nil)) {
		t.Error("unrelated signals must not be handled")
	}

	// An empty message restores the fallback.
	s.ReceiveSignal(signal.New(SignalStatus, signal.Payload{"message": ""}))
	if s.Message() != "ready" {
		t.Errorf("message = %q, want fallback restored", s.Message())
	}
}

func TestStatusLineInTree(t *testing.T) {
	tr := core.NewTree(core.TreeConfig{})
	status := NewStatusLine("ready")
	tr.Attach(tr.Root(), status, core.NodeConfig{Size: core.FixedSize(1)})
	leaf, _ := tr.Attach(tr.Root(), NewLabel("body"), core.NodeConfig{})

	// A widget anywhere in the tree reports status by flushing from the
	// root.
	tr.Flush(tr.Root(), signal.NewOnce(SignalStatus, signal.Payload{
		"message": "3 items copied",
	}))
	if status.Message() != "3 items copied" {
		t.Errorf("message = %q", status.Message())
	}
	_ = leaf
}
