package widgets

import (
	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/terminal"
)

// FlipSwitch is a boolean toggle drawn as a two-chamber switch. The
// occupied chamber marks the current state.
type FlipSwitch struct {
	Base
	on bool

	// OnToggle runs after every state change.
	OnToggle func(on bool)
}

// NewFlipSwitch creates a switch in the off position.
func NewFlipSwitch(onToggle func(on bool)) *FlipSwitch {
	return &FlipSwitch{OnToggle: onToggle}
}

// On reports the switch state.
func (f *FlipSwitch) On() bool { return f.on }

// SetOn forces the switch state without firing OnToggle.
func (f *FlipSwitch) SetOn(on bool) { f.on = on }

// Toggle flips the state and fires OnToggle.
func (f *FlipSwitch) Toggle() {
	f.on = !f.on
	if f.OnToggle != nil {
		f.OnToggle(f.on)
	}
}

func (f *FlipSwitch) Kind() string { return "flipswitch" }

func (f *FlipSwitch) ContentSize() core.Size {
	return core.Size{Width: 10, Height: 3}
}

func (f *FlipSwitch) Paint(ctx core.PaintContext) {
	style := ctx.Style("switch")
	if f.Focused() {
		style = style.Bold(true)
	}
	w := ctx.Bounds.Width
	h := ctx.Bounds.Height
	half := w / 2

	ctx.Box(core.Rect{Width: w, Height: h}, style)
	// The occupied chamber gets its own frame on top.
	if f.on {
		ctx.Box(core.Rect{X: half, Width: w - half, Height: h}, style)
	} else {
		ctx.Box(core.Rect{Width: half + 1, Height: h}, style)
	}

	label := "OFF"
	x := 2
	if f.on {
		label = "ON"
		x = half + 2
	}
	ctx.Print(x, h/2, label, style.Bold(true))
}

func (f *FlipSwitch) HandleKey(ev terminal.KeyEvent) bool {
	if ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' ') {
		f.Toggle()
		return true
	}
	return false
}

func (f *FlipSwitch) HandleMouse(x, y int, ev terminal.MouseEvent) bool {
	if ev.Button == terminal.MouseLeft && ev.Action == terminal.MousePress {
		f.Toggle()
		return true
	}
	return false
}

var (
	_ core.Painter      = (*FlipSwitch)(nil)
	_ core.Measurer     = (*FlipSwitch)(nil)
	_ core.KeyHandler   = (*FlipSwitch)(nil)
	_ core.MouseHandler = (*FlipSwitch)(nil)
	_ core.FocusAware   = (*FlipSwitch)(nil)
)
