package widgets

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
)

// Label is a one-line static text widget. A prefix and suffix can be
// attached without disturbing the label text itself.
type Label struct {
	text   string
	prefix string
	suffix string
	align  Align
}

// NewLabel creates a left-aligned label.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.text = text }

// Text returns the bare label text, without embellishments.
func (l *Label) Text() string { return l.text }

// SetAlign sets horizontal placement within the widget rectangle.
func (l *Label) SetAlign(a Align) { l.align = a }

// Embellish attaches a prefix and suffix around the label text.
func (l *Label) Embellish(prefix, suffix string) {
	l.prefix = prefix
	l.suffix = suffix
}

func (l *Label) display() string {
	return l.prefix + l.text + l.suffix
}

func (l *Label) Kind() string { return "label" }

func (l *Label) ContentSize() core.Size {
	return core.Size{Width: runewidth.StringWidth(l.display()), Height: 1}
}

func (l *Label) Paint(ctx core.PaintContext) {
	text := l.display()
	x := alignOffset(l.align, ctx.Bounds.Width, runewidth.StringWidth(text))
	ctx.Print(x, 0, text, ctx.Style("label"))
}

var (
	_ core.Painter  = (*Label)(nil)
	_ core.Measurer = (*Label)(nil)
)
