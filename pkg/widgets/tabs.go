package widgets

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/terminal"
)

// Tabs is a tabbed container. Each page is a child node; exactly one
// page is visible at a time, so hidden pages drop out of layout and
// focus traversal until their tab is selected. The widget owns its node
// because page switching toggles child visibility through the tree.
type Tabs struct {
	Base
	tree   *core.Tree
	node   core.NodeID
	labels []string
	pages  []core.NodeID
	active int

	// OnChange runs after the active page switches.
	OnChange func(index int)
}

// NewTabs attaches a tabbed container under parent and returns the
// widget together with its node. Pages are added with AddPage.
func NewTabs(tr *core.Tree, parent core.NodeID) (*Tabs, core.NodeID, error) {
	t := &Tabs{tree: tr}
	node, err := tr.Attach(parent, t, core.NodeConfig{
		Focusable: true,
		Layout:    core.Stacked(core.Vertical),
		// Two label rows and the content frame stay clear of the pages.
		Padding: core.Insets{Top: 3, Right: 1, Bottom: 1, Left: 1},
	})
	if err != nil {
		return nil, core.NoNode, err
	}
	t.node = node
	return t, node, nil
}

// AddPage attaches a page under the container and returns its node.
// The first page starts visible, later ones hidden.
func (t *Tabs) AddPage(label string, w core.Widget, cfg core.NodeConfig) (core.NodeID, error) {
	cfg.Hidden = len(t.pages) > 0
	page, err := t.tree.Attach(t.node, w, cfg)
	if err != nil {
		return core.NoNode, err
	}
	t.labels = append(t.labels, label)
	t.pages = append(t.pages, page)
	return page, nil
}

// Active returns the index of the visible page, or -1 with no pages.
func (t *Tabs) Active() int {
	if len(t.pages) == 0 {
		return -1
	}
	return t.active
}

// PageCount returns the number of pages.
func (t *Tabs) PageCount() int { return len(t.pages) }

// Page returns the node of the page at index.
func (t *Tabs) Page(index int) core.NodeID {
	if index < 0 || index >= len(t.pages) {
		return core.NoNode
	}
	return t.pages[index]
}

// Select makes the page at index the visible one and hides the rest.
func (t *Tabs) Select(index int) {
	if index < 0 || index >= len(t.pages) || index == t.active {
		return
	}
	t.tree.SetVisible(t.pages[t.active], false)
	t.active = index
	t.tree.SetVisible(t.pages[index], true)
	if t.OnChange != nil {
		t.OnChange(index)
	}
}

func (t *Tabs) Kind() string { return "tabs" }

// labelCell returns the column and width of the tab frame at index.
func (t *Tabs) labelCell(index int) (x, w int) {
	x = 1
	for i := 0; i < index; i++ {
		x += runewidth.StringWidth(t.labels[i]) + 4
	}
	return x, runewidth.StringWidth(t.labels[index]) + 4
}

func (t *Tabs) Paint(ctx core.PaintContext) {
	w := ctx.Bounds.Width
	h := ctx.Bounds.Height
	if w < 4 || h < 3 {
		return
	}

	border := ctx.Style("border")
	ctx.Box(core.Rect{Y: 2, Width: w, Height: h - 2}, border)

	for i, label := range t.labels {
		x, cell := t.labelCell(i)
		if x+cell > w {
			break
		}
		style := ctx.Style("tab.inactive")
		if i == t.active {
			style = ctx.Style("tab")
		}

		ctx.SetCell(x, 0, '┌', style)
		for dx := 1; dx < cell-1; dx++ {
			ctx.SetCell(x+dx, 0, '─', style)
		}
		ctx.SetCell(x+cell-1, 0, '┐', style)
		ctx.SetCell(x, 1, '│', style)
		ctx.Print(x+2, 1, label, style)
		ctx.SetCell(x+cell-1, 1, '│', style)

		// The active tab opens into the content frame.
		if i == t.active {
			ctx.SetCell(x, 2, '┘', border)
			for dx := 1; dx < cell-1; dx++ {
				ctx.SetCell(x+dx, 2, ' ', border)
			}
			ctx.SetCell(x+cell-1, 2, '└', border)
		}
	}
}

// HandleKey switches pages with Left and Right, wrapping at the ends.
func (t *Tabs) HandleKey(ev terminal.KeyEvent) bool {
	if len(t.pages) < 2 {
		return false
	}
	switch ev.Key {
	case terminal.KeyLeft:
		t.Select((t.active + len(t.pages) - 1) % len(t.pages))
	case terminal.KeyRight:
		t.Select((t.active + 1) % len(t.pages))
	default:
		return false
	}
	return true
}

// HandleMouse selects the tab whose label frame was pressed.
func (t *Tabs) HandleMouse(x, y int, ev terminal.MouseEvent) bool {
	if ev.Action != terminal.MousePress || ev.Button != terminal.MouseLeft || y > 1 {
		return false
	}
	for i := range t.labels {
		lx, cell := t.labelCell(i)
		if x >= lx && x < lx+cell {
			t.Select(i)
			return true
		}
	}
	return false
}

var (
	_ core.Painter      = (*Tabs)(nil)
	_ core.KeyHandler   = (*Tabs)(nil)
	_ core.MouseHandler = (*Tabs)(nil)
	_ core.FocusAware   = (*Tabs)(nil)
)
