package widgets

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/terminal"
)

// List is a single-selection item list with keyboard and mouse
// navigation. The viewport scrolls to keep the selection visible.
type List struct {
	Base
	items     []string
	selection int
	top       int

	// OnSelect runs on Enter or double navigation commit with the
	// selected index and item.
	OnSelect func(index int, item string)
}

// NewList creates a list over items.
func NewList(items ...string) *List {
	return &List{items: items}
}

// SetItems replaces the items, clamping the selection.
func (l *List) SetItems(items []string) {
	l.items = items
	if l.selection >= len(items) {
		l.selection = max(0, len(items)-1)
	}
	l.top = 0
}

// Items returns the current items.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Selection returns the selected index, -1 when the list is empty.
func (l *List) Selection() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.selection
}

// Select moves the selection to index, clamped into range.
func (l *List) Select(index int) {
	if len(l.items) == 0 {
		return
	}
	l.selection = min(max(0, index), len(l.items)-1)
}

func (l *List) moveBy(delta int) {
	l.Select(l.selection + delta)
}

func (l *List) commit() {
	if l.OnSelect != nil && len(l.items) > 0 {
		l.OnSelect(l.selection, l.items[l.selection])
	}
}

func (l *List) Kind() string { return "list" }

func (l *List) ContentSize() core.Size {
	w := 0
	for _, item := range l.items {
		w = max(w, runewidth.StringWidth(item))
	}
	return core.Size{Width: w, Height: len(l.items)}
}

func (l *List) Paint(ctx core.PaintContext) {
	h := ctx.Bounds.Height
	if h <= 0 {
		return
	}

	// Keep the selection in the viewport.
	if l.selection < l.top {
		l.top = l.selection
	}
	if l.selection >= l.top+h {
		l.top = l.selection - h + 1
	}

	item := ctx.Style("list.item")
	selected := ctx.Style("list.selection")
	for row := 0; row < h; row++ {
		i := l.top + row
		if i >= len(l.items) {
			break
		}
		style := item
		if i == l.selection {
			style = selected
			if !l.Focused() {
				style = item.Reverse(true)
			}
			ctx.FillRect(core.Rect{Y: row, Width: ctx.Bounds.Width, Height: 1}, ' ', style)
		}
		ctx.Print(0, row, l.items[i], style)
	}
}

func (l *List) HandleKey(ev terminal.KeyEvent) bool {
	switch ev.Key {
	case terminal.KeyUp:
		l.moveBy(-1)
	case terminal.KeyDown:
		l.moveBy(1)
	case terminal.KeyHome:
		l.Select(0)
	case terminal.KeyEnd:
		l.Select(len(l.items) - 1)
	case terminal.KeyPageUp:
		l.moveBy(-10)
	case terminal.KeyPageDown:
		l.moveBy(10)
	case terminal.KeyEnter:
		l.commit()
	default:
		return false
	}
	return true
}

func (l *List) HandleMouse(x, y int, ev terminal.MouseEvent) bool {
	switch {
	case ev.Button == terminal.MouseWheelUp:
		l.moveBy(-1)
		return true
	case ev.Button == terminal.MouseWheelDown:
		l.moveBy(1)
		return true
	case ev.Button == terminal.MouseLeft && ev.Action == terminal.MousePress:
		i := l.top + y
		if i >= 0 && i < len(l.items) {
			if i == l.selection {
				l.commit()
			} else {
				l.Select(i)
			}
			return true
		}
	}
	return false
}

var (
	_ core.Painter      = (*List)(nil)
	_ core.Measurer     = (*List)(nil)
	_ core.KeyHandler   = (*List)(nil)
	_ core.MouseHandler = (*List)(nil)
	_ core.FocusAware   = (*List)(nil)
)
