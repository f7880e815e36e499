package widgets

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
)

// Panel draws a border and optional title around its node. Attach
// children to the panel's node with a padding of one cell so they sit
// inside the frame.
type Panel struct {
	title string
}

// NewPanel creates a panel with a title. An empty title draws a plain
// frame.
func NewPanel(title string) *Panel {
	return &Panel{title: title}
}

// SetTitle replaces the panel title.
func (p *Panel) SetTitle(title string) { p.title = title }

// Title returns the panel title.
func (p *Panel) Title() string { return p.title }

func (p *Panel) Kind() string { return "panel" }

func (p *Panel) Paint(ctx core.PaintContext) {
	w := ctx.Bounds.Width
	h := ctx.Bounds.Height
	ctx.Box(core.Rect{Width: w, Height: h}, ctx.Style("border"))

	if p.title == "" || w < 4 {
		return
	}
	title := " " + p.title + " "
	if runewidth.StringWidth(title) > w-2 {
		title = runewidth.Truncate(title, w-2, "… ")
	}
	ctx.Print(1, 0, title, ctx.Style("title"))
}

var _ core.Painter = (*Panel)(nil)
