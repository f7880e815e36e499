package core

import (
	"github.com/weftui/weft/pkg/backend"
	"github.com/weftui/weft/pkg/logging"
	"github.com/weftui/weft/pkg/theme"
)

// Render paints pending damage into target. With no pending damage it is
// a strict no-op, so repeated calls are idempotent. A geometry change
// since the last pass forces a full repaint; otherwise only dirty nodes
// repaint, plus any node painted after them in tree order whose
// rectangle overlaps a repainted area, so later painters keep their
// place on top.
func (t *Tree) Render(target backend.RenderTarget) {
	if t.needsLayout {
		t.Layout(t.lastBounds)
	}
	if t.damage.empty() {
		return
	}

	full := t.damage.geometryChanged
	var painted int
	if full {
		painted = t.renderFull(target)
	} else {
		painted = t.renderPartial(target)
	}
	t.damage.clear()

	t.log.Debug(logging.CategoryRender, "render pass", map[string]any{
		"painted": painted, "full": full,
	})
}

func (t *Tree) renderFull(target backend.RenderTarget) int {
	root := t.lastBounds
	fill := t.theme.Query(theme.StateDefault, "fill")
	for y := root.Y; y < root.Y+root.Height; y++ {
		for x := root.X; x < root.X+root.Width; x++ {
			target.SetContent(x, y, ' ', nil, fill)
		}
	}

	painted := 0
	t.paintSubtree(target, t.root, root, func(NodeID, Rect) bool { return true }, &painted)
	return painted
}

func (t *Tree) renderPartial(target backend.RenderTarget) int {
	// A node repaints when it is dirty, or when an earlier-painted node
	// repainted an area it overlaps. Repainted rectangles accumulate as
	// the sweep advances through paint order.
	var repainted []Rect
	painted := 0
	t.paintSubtree(target, t.root, t.lastBounds, func(id NodeID, geo Rect) bool {
		if t.damage.has(id) {
			repainted = append(repainted, geo)
			return true
		}
		for _, r := range repainted {
			if geo.Intersects(r) {
				repainted = append(repainted, geo)
				return true
			}
		}
		return false
	}, &painted)
	return painted
}

// paintSubtree walks in pre-order, the canonical paint order, clipping
// each node to the intersection of its ancestors' rectangles.
func (t *Tree) paintSubtree(target backend.RenderTarget, id NodeID, clip Rect, want func(NodeID, Rect) bool, painted *int) {
	n, ok := t.nodes[id]
	if !ok || !n.visible {
		return
	}
	nodeClip := n.geometry.Intersection(clip)
	if !nodeClip.Empty() {
		if p, isPainter := n.widget.(Painter); isPainter && want(id, n.geometry) {
			ctx := NewPaintContext(target, t.theme, n.geometry, nodeClip, t.paintState(id))
			ctx.FillRect(Rect{Width: n.geometry.Width, Height: n.geometry.Height}, ' ', ctx.Style("fill"))
			p.Paint(ctx)
			*painted++
		}
	}
	for _, cid := range n.children {
		t.paintSubtree(target, cid, nodeClip, want, painted)
	}
}

func (t *Tree) paintState(id NodeID) theme.State {
	if t.ring.Current() == id {
		return theme.StateFocused
	}
	return theme.StateDefault
}
