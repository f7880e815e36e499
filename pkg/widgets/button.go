package widgets

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/terminal"
)

// Button is a push button. Enter, Space, or a mouse press activates it.
type Button struct {
	Base
	label string

	// OnPress runs when the button is activated.
	OnPress func()
}

// NewButton creates a button with a label.
func NewButton(label string, onPress func()) *Button {
	return &Button{label: label, OnPress: onPress}
}

// SetLabel replaces the button label.
func (b *Button) SetLabel(label string) { b.label = label }

// Label returns the button label.
func (b *Button) Label() string { return b.label }

func (b *Button) press() {
	if b.OnPress != nil {
		b.OnPress()
	}
}

func (b *Button) Kind() string { return "button" }

// ContentSize is the label plus the parenthesis frame and its padding.
func (b *Button) ContentSize() core.Size {
	return core.Size{Width: runewidth.StringWidth(b.label) + 4, Height: 1}
}

func (b *Button) Paint(ctx core.PaintContext) {
	style := ctx.Style("button")
	if b.Focused() {
		style = style.Bold(true)
	}
	w := ctx.Bounds.Width
	ctx.SetCell(0, 0, '(', style)
	ctx.SetCell(w-1, 0, ')', style)
	inner := w - 2
	x := 1 + alignOffset(AlignCenter, inner, runewidth.StringWidth(b.label))
	ctx.Print(x, 0, b.label, style)
}

func (b *Button) HandleKey(ev terminal.KeyEvent) bool {
	if ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' ') {
		b.press()
		return true
	}
	return false
}

func (b *Button) HandleMouse(x, y int, ev terminal.MouseEvent) bool {
	if ev.Button == terminal.MouseLeft && ev.Action == terminal.MousePress {
		b.press()
		return true
	}
	return false
}

var (
	_ core.Painter      = (*Button)(nil)
	_ core.Measurer     = (*Button)(nil)
	_ core.KeyHandler   = (*Button)(nil)
	_ core.MouseHandler = (*Button)(nil)
	_ core.FocusAware   = (*Button)(nil)
)
