package core

import (
	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/weftui/weft/pkg/backend"
	"github.com/weftui/weft/pkg/theme"
)

// PaintContext is handed to a Painter widget during a render pass. All
// coordinates are relative to Bounds; writes outside Clip are dropped,
// so widgets never have to reason about overlap repair themselves.
type PaintContext struct {
	target backend.RenderTarget
	theme  *theme.Theme

	// Bounds is the widget's full rectangle in screen coordinates.
	Bounds Rect

	// Clip is the visible portion of Bounds for this pass.
	Clip Rect

	// State is the paint state the widget should style itself for.
	State theme.State
}

// NewPaintContext builds a context painting into target. Exposed so
// widget tests can paint without a full tree.
func NewPaintContext(target backend.RenderTarget, th *theme.Theme, bounds, clip Rect, state theme.State) PaintContext {
	if th == nil {
		th = theme.Default()
	}
	return PaintContext{target: target, theme: th, Bounds: bounds, Clip: clip, State: state}
}

// Style resolves a named style from the theme for the current state.
func (p PaintContext) Style(name string) backend.Style {
	return p.theme.Query(p.State, name)
}

// StyleFor resolves a named style for an explicit state.
func (p PaintContext) StyleFor(state theme.State, name string) backend.Style {
	return p.theme.Query(state, name)
}

// Size returns the widget-local drawable size.
func (p PaintContext) Size() Size {
	return p.Bounds.Size()
}

// SetCell writes one rune at widget-local (x, y). Writes outside the
// clip region are dropped.
func (p PaintContext) SetCell(x, y int, r rune, s backend.Style) {
	sx := p.Bounds.X + x
	sy := p.Bounds.Y + y
	if !p.Clip.Contains(sx, sy) {
		return
	}
	p.target.SetContent(sx, sy, r, nil, s)
}

// Print writes a string starting at widget-local (x, y), clipped to the
// widget's width. Wide runes advance by their display width; combining
// marks travel with their base cell. Returns the number of cells used.
func (p PaintContext) Print(x, y int, text string, s backend.Style) int {
	col := x
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := runewidth.StringWidth(string(runes))
		if w == 0 {
			continue
		}
		if col+w > p.Bounds.Width {
			break
		}
		sx := p.Bounds.X + col
		sy := p.Bounds.Y + y
		if p.Clip.Contains(sx, sy) {
			p.target.SetContent(sx, sy, runes[0], runes[1:], s)
		}
		// A wide rune owns its trailing cell too.
		for i := 1; i < w; i++ {
			if p.Clip.Contains(sx+i, sy) {
				p.target.SetContent(sx+i, sy, ' ', nil, s)
			}
		}
		col += w
	}
	return col - x
}

// Fill covers the whole widget rectangle with one rune.
func (p PaintContext) Fill(r rune, s backend.Style) {
	p.FillRect(Rect{X: 0, Y: 0, Width: p.Bounds.Width, Height: p.Bounds.Height}, r, s)
}

// FillRect covers a widget-local rectangle with one rune.
func (p PaintContext) FillRect(r Rect, ch rune, s backend.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			p.SetCell(x, y, ch, s)
		}
	}
}

// Box draws a single-line border around a widget-local rectangle.
func (p PaintContext) Box(r Rect, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	x2 := r.X + r.Width - 1
	y2 := r.Y + r.Height - 1
	p.SetCell(r.X, r.Y, '┌', s)
	p.SetCell(x2, r.Y, '┐', s)
	p.SetCell(r.X, y2, '└', s)
	p.SetCell(x2, y2, '┘', s)
	for x := r.X + 1; x < x2; x++ {
		p.SetCell(x, r.Y, '─', s)
		p.SetCell(x, y2, '─', s)
	}
	for y := r.Y + 1; y < y2; y++ {
		p.SetCell(r.X, y, '│', s)
		p.SetCell(x2, y, '│', s)
	}
}
