package core

import (
	"github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/pkg/logging"
)

// FocusRing is the ordered registry of focusable nodes. Ring order is
// the canonical pre-order traversal; at most one node holds focus at any
// time, and a focused node is always visible and focusable. Focus moves
// only through explicit traversal or Set, never implicitly on render.
type FocusRing struct {
	tree    *Tree
	order   []NodeID
	current NodeID
}

func newFocusRing(t *Tree) *FocusRing {
	return &FocusRing{tree: t}
}

// Current returns the focused node handle, NoNode when the ring is empty.
func (f *FocusRing) Current() NodeID {
	return f.current
}

// Order returns a copy of the ring order.
func (f *FocusRing) Order() []NodeID {
	if len(f.order) == 0 {
		return nil
	}
	out := make([]NodeID, len(f.order))
	copy(out, f.order)
	return out
}

// Len returns the number of ring members.
func (f *FocusRing) Len() int {
	return len(f.order)
}

// Next moves focus to the next ring member, wrapping around. With zero
// or one member it is a no-op returning the current focus.
func (f *FocusRing) Next() NodeID {
	return f.step(1)
}

// Prev moves focus to the previous ring member, wrapping around.
func (f *FocusRing) Prev() NodeID {
	return f.step(-1)
}

func (f *FocusRing) step(dir int) NodeID {
	if len(f.order) <= 1 {
		return f.current
	}
	idx := f.indexOf(f.current)
	if idx < 0 {
		idx = 0
	}
	n := len(f.order)
	next := f.order[((idx+dir)%n+n)%n]
	f.transfer(next)
	return f.current
}

// Set transfers focus to a specific node. It fails with NotFocusable
// when the target is not focusable or not effectively visible.
func (f *FocusRing) Set(id NodeID) error {
	t := f.tree
	n, ok := t.nodes[id]
	if !ok {
		return errors.Newf(errors.ErrCodeNoSuchNode, "focus: unknown node %d", id)
	}
	if !n.config.Focusable {
		return errors.Newf(errors.ErrCodeNotFocusable, "focus: node %d is not focusable", id)
	}
	if !t.effectivelyVisible(id) {
		return errors.Newf(errors.ErrCodeNotFocusable, "focus: node %d is not visible", id)
	}
	f.transfer(id)
	return nil
}

// Clear removes focus entirely.
func (f *FocusRing) Clear() {
	f.transfer(NoNode)
}

// transfer moves focus, marking both endpoints dirty so the highlight
// repaints, and notifying FocusAware widgets.
func (f *FocusRing) transfer(to NodeID) {
	if f.current == to {
		return
	}
	from := f.current
	f.current = to

	t := f.tree
	if from != NoNode {
		t.MarkDirty(from)
		if aware, ok := t.Widget(from).(FocusAware); ok {
			aware.FocusLost()
		}
	}
	if to != NoNode {
		t.MarkDirty(to)
		if aware, ok := t.Widget(to).(FocusAware); ok {
			aware.FocusGained()
		}
	}

	t.log.Debug(logging.CategoryFocus, "focus moved", map[string]any{
		"from": int(from), "to": int(to),
	})
}

func (f *FocusRing) indexOf(id NodeID) int {
	for i, nid := range f.order {
		if nid == id {
			return i
		}
	}
	return -1
}

// orderFromCurrent returns the ring order rotated to start just after
// the current focus, used to pick a successor across a rebuild.
func (f *FocusRing) orderFromCurrent() []NodeID {
	if len(f.order) == 0 {
		return nil
	}
	idx := f.indexOf(f.current)
	out := make([]NodeID, 0, len(f.order))
	for i := 1; i <= len(f.order); i++ {
		out = append(out, f.order[(idx+i+len(f.order))%len(f.order)])
	}
	return out
}

// rebuild rescans the tree for focusable, effectively visible nodes in
// pre-order. The current focus is preserved when still valid; otherwise
// the first valid entry of preferred is focused, falling back to the
// first ring member, then to no focus. O(n) in tree size, which is fine
// at terminal-driven event rates.
func (f *FocusRing) rebuild(preferred []NodeID) {
	t := f.tree
	f.order = f.order[:0]
	member := make(map[NodeID]bool)

	t.Walk(func(id NodeID) bool {
		n := t.nodes[id]
		if !n.visible {
			return false // Whole hidden subtree is out
		}
		if n.config.Focusable {
			f.order = append(f.order, id)
			member[id] = true
		}
		return true
	})

	if member[f.current] {
		return
	}

	// Previous focus is gone or invalid; pick a successor.
	for _, id := range preferred {
		if member[id] {
			f.transfer(id)
			return
		}
	}
	if len(f.order) > 0 {
		f.transfer(f.order[0])
		return
	}
	f.transfer(NoNode)
}
