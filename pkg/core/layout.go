package core

import "github.com/weftui/weft/pkg/logging"

// Layout computes geometry for every node top-down from the given root
// bounds. Layout is deterministic: the same tree and bounds always
// produce the same geometry. Children never escape their parent's
// rectangle; overflow is clipped, and stacked children past the end of
// the available space get zero-area rectangles rather than being
// dropped from the tree.
func (t *Tree) Layout(bounds Rect) {
	t.lastBounds = bounds
	t.layoutNode(t.root, bounds)
	t.needsLayout = false
	t.log.Debug(logging.CategoryLayout, "layout pass", map[string]any{
		"w": bounds.Width, "h": bounds.Height, "nodes": len(t.nodes),
	})
}

// Relayout repeats the last layout pass, used after structural edits.
func (t *Tree) Relayout() {
	t.Layout(t.lastBounds)
}

func (t *Tree) layoutNode(id NodeID, r Rect) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	t.setGeometry(n, r)
	if len(n.children) == 0 {
		return
	}

	content := r.Inset(n.config.Padding)
	switch n.config.Layout.Kind {
	case LayoutFixed:
		t.layoutFixed(n, content)
	default:
		t.layoutStacked(n, content)
	}
}

// layoutStacked places children sequentially along the container's main
// axis. Fixed and content-sized children consume their declared extent;
// the remainder is split evenly among fill children, with leftover cells
// going to the earliest fill siblings so the division is exact.
func (t *Tree) layoutStacked(n *node, content Rect) {
	axis := n.config.Layout.Axis
	gap := n.config.Layout.Gap

	avail := content.Width
	if axis == Vertical {
		avail = content.Height
	}

	type slot struct {
		id   NodeID
		main int
		fill bool
	}
	slots := make([]slot, 0, len(n.children))
	fills := 0
	claimed := 0
	for _, cid := range n.children {
		c := t.nodes[cid]
		if !c.visible {
			t.zeroSubtree(cid)
			continue
		}
		s := slot{id: cid}
		switch c.config.Size.Mode {
		case SizeFixed:
			s.main = max(0, c.config.Size.Cells)
		case SizeContent:
			s.main = t.contentExtent(c, axis)
		default:
			s.fill = true
			fills++
		}
		claimed += s.main
		slots = append(slots, s)
	}
	if len(slots) > 0 {
		claimed += gap * (len(slots) - 1)
	}

	if fills > 0 {
		remaining := max(0, avail-claimed)
		share := remaining / fills
		extra := remaining % fills
		for i := range slots {
			if !slots[i].fill {
				continue
			}
			slots[i].main = share
			if extra > 0 {
				slots[i].main++
				extra--
			}
		}
	}

	pos := 0
	for _, s := range slots {
		// Clip to the space actually left; children past the end get
		// zero-area rectangles.
		main := min(s.main, max(0, avail-pos))
		var cr Rect
		if axis == Vertical {
			cr = Rect{X: content.X, Y: content.Y + pos, Width: content.Width, Height: main}
		} else {
			cr = Rect{X: content.X + pos, Y: content.Y, Width: main, Height: content.Height}
		}
		if cr.Empty() {
			cr = ZeroRect
		}
		t.layoutNode(s.id, cr)
		pos += main + gap
	}
}

// layoutFixed places each child at its declared offset relative to the
// container's content origin, clipped to the content rectangle.
func (t *Tree) layoutFixed(n *node, content Rect) {
	for _, cid := range n.children {
		c := t.nodes[cid]
		if !c.visible {
			t.zeroSubtree(cid)
			continue
		}
		off := c.config.Offset
		cr := Rect{
			X:      content.X + off.X,
			Y:      content.Y + off.Y,
			Width:  off.Width,
			Height: off.Height,
		}
		cr = cr.Intersection(content)
		t.layoutNode(cid, cr)
	}
}

// contentExtent asks a Measurer widget for its size along the axis.
// Widgets without a measure report zero and take no space.
func (t *Tree) contentExtent(n *node, axis Axis) int {
	m, ok := n.widget.(Measurer)
	if !ok {
		return 0
	}
	sz := m.ContentSize()
	if axis == Vertical {
		return max(0, sz.Height)
	}
	return max(0, sz.Width)
}

// zeroSubtree assigns ZeroRect to a hidden subtree so stale geometry
// never answers hit tests.
func (t *Tree) zeroSubtree(id NodeID) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	t.setGeometry(n, ZeroRect)
	for _, cid := range n.children {
		t.zeroSubtree(cid)
	}
}

func (t *Tree) setGeometry(n *node, r Rect) {
	if n.geometry == r {
		return
	}
	n.geometry = r
	t.damage.markGeometry()
	if _, ok := n.widget.(Painter); ok {
		t.damage.mark(n.id)
	}
}
