package core

import (
	"github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/pkg/logging"
	"github.com/weftui/weft/pkg/signal"
	"github.com/weftui/weft/pkg/theme"
)

// NodeID is a stable handle to a tree node, unique for the lifetime of
// the tree. The zero value is NoNode.
type NodeID int

// NoNode is the null node handle.
const NoNode NodeID = 0

// node is an arena entry. Parent and children are handle relations, not
// pointers; only child membership is ownership, the parent link exists
// for bubbling and ancestor lookups.
type node struct {
	id       NodeID
	parent   NodeID
	children []NodeID
	widget   Widget
	config   NodeConfig
	geometry Rect
	visible  bool
}

// TreeConfig configures a widget tree.
type TreeConfig struct {
	Theme  *theme.Theme    // nil selects theme.Default()
	Logger *logging.Logger // nil discards
	Router *signal.Router  // nil creates a private router
}

// Tree is the arena of widget nodes plus the focus ring and damage
// tracker that govern them. It is exclusively owned by one goroutine,
// normally the event loop's; no method locks.
type Tree struct {
	nodes  map[NodeID]*node
	nextID NodeID
	root   NodeID

	ring   *FocusRing
	damage *damageTracker
	router *signal.Router
	theme  *theme.Theme
	log    *logging.Logger

	needsLayout bool
	lastBounds  Rect
}

// NewTree creates a tree holding only the root node: a visible,
// non-focusable container stacking its children vertically.
func NewTree(cfg TreeConfig) *Tree {
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	router := cfg.Router
	if router == nil {
		router = signal.NewRouter()
	}

	t := &Tree{
		nodes:  make(map[NodeID]*node),
		damage: newDamageTracker(),
		router: router,
		theme:  th,
		log:    cfg.Logger,
	}
	t.ring = newFocusRing(t)
	t.root = t.NewNode(nil, NodeConfig{})
	t.needsLayout = true
	return t
}

// Root returns the root node handle.
func (t *Tree) Root() NodeID {
	return t.root
}

// Router returns the signal router signals escape to when no ancestor
// handles them.
func (t *Tree) Router() *signal.Router {
	return t.router
}

// Theme returns the active theme.
func (t *Tree) Theme() *theme.Theme {
	return t.theme
}

// SetTheme swaps the theme and repaints everything.
func (t *Tree) SetTheme(th *theme.Theme) {
	if th == nil {
		return
	}
	t.theme = th
	t.damage.markGeometry()
}

// Focus returns the tree's focus ring.
func (t *Tree) Focus() *FocusRing {
	return t.ring
}

// NewNode creates an unattached node. It takes part in nothing until
// attached under the root with AttachNode.
func (t *Tree) NewNode(w Widget, cfg NodeConfig) NodeID {
	t.nextID++
	id := t.nextID
	t.nodes[id] = &node{
		id:      id,
		widget:  w,
		config:  cfg,
		visible: !cfg.Hidden,
	}
	return id
}

// Attach creates a node for w and appends it under parent.
func (t *Tree) Attach(parent NodeID, w Widget, cfg NodeConfig) (NodeID, error) {
	id := t.NewNode(w, cfg)
	if err := t.AttachNode(parent, id, -1); err != nil {
		delete(t.nodes, id)
		return NoNode, err
	}
	return id, nil
}

// AttachAt creates a node for w and inserts it under parent at index.
func (t *Tree) AttachAt(parent NodeID, index int, w Widget, cfg NodeConfig) (NodeID, error) {
	id := t.NewNode(w, cfg)
	if err := t.AttachNode(parent, id, index); err != nil {
		delete(t.nodes, id)
		return NoNode, err
	}
	return id, nil
}

// AttachNode inserts an existing unattached node into parent's child
// sequence at index; a negative index appends. It fails with
// InvalidTreeOperation when child already has a parent, when child is
// the root, or when attachment would create a cycle (child is an
// ancestor of parent). Attachment marks the subtree dirty and rebuilds
// the focus ring.
func (t *Tree) AttachNode(parent, child NodeID, index int) error {
	p, ok := t.nodes[parent]
	if !ok {
		return errors.Newf(errors.ErrCodeNoSuchNode, "attach: unknown parent %d", parent)
	}
	c, ok := t.nodes[child]
	if !ok {
		return errors.Newf(errors.ErrCodeNoSuchNode, "attach: unknown child %d", child)
	}
	if child == t.root {
		return errors.New(errors.ErrCodeInvalidTreeOp, "attach: child is the root")
	}
	if c.parent != NoNode {
		return errors.Newf(errors.ErrCodeInvalidTreeOp, "attach: node %d already has a parent", child)
	}
	if t.isAncestorOrSelf(child, parent) {
		return errors.Newf(errors.ErrCodeInvalidTreeOp, "attach: node %d is an ancestor of %d", child, parent)
	}

	if index < 0 || index > len(p.children) {
		index = len(p.children)
	}
	p.children = append(p.children, NoNode)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
	c.parent = parent

	t.markSubtreeDirty(child)
	t.needsLayout = true
	t.ring.rebuild(nil)

	t.log.Debug(logging.CategoryTree, "attach", map[string]any{
		"parent": int(parent), "child": int(child), "index": index,
	})
	return nil
}

// Detach removes a node from its parent and destroys it together with
// all descendants, unregistering them from the focus ring and damage
// tracker. Detaching the root fails with InvalidTreeOperation.
func (t *Tree) Detach(id NodeID) error {
	n, ok := t.nodes[id]
	if !ok {
		return errors.Newf(errors.ErrCodeNoSuchNode, "detach: unknown node %d", id)
	}
	if id == t.root {
		return errors.New(errors.ErrCodeInvalidTreeOp, "detach: cannot detach the root")
	}

	// Remember the old ring order so focus can move to the next
	// surviving focusable node in ring order.
	preferred := t.ring.orderFromCurrent()

	if n.parent != NoNode {
		p := t.nodes[n.parent]
		for i, cid := range p.children {
			if cid == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		n.parent = NoNode
	}
	t.destroy(id)

	// The vacated region is not locally recomputable; force a full
	// repaint alongside the relayout.
	t.damage.markGeometry()
	t.needsLayout = true
	t.ring.rebuild(preferred)

	t.log.Debug(logging.CategoryTree, "detach", map[string]any{"node": int(id)})
	return nil
}

func (t *Tree) destroy(id NodeID) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	for _, cid := range n.children {
		t.destroy(cid)
	}
	t.damage.forget(id)
	delete(t.nodes, id)
}

// SetVisible toggles a node's visibility. Hidden nodes stay attached but
// are skipped by layout, rendering, and the focus ring.
func (t *Tree) SetVisible(id NodeID, visible bool) error {
	n, ok := t.nodes[id]
	if !ok {
		return errors.Newf(errors.ErrCodeNoSuchNode, "set visible: unknown node %d", id)
	}
	if n.visible == visible {
		return nil
	}
	n.visible = visible

	preferred := t.ring.orderFromCurrent()
	t.damage.markGeometry()
	t.needsLayout = true
	t.ring.rebuild(preferred)
	return nil
}

// SetFocusable toggles whether a node participates in the focus ring.
func (t *Tree) SetFocusable(id NodeID, focusable bool) error {
	n, ok := t.nodes[id]
	if !ok {
		return errors.Newf(errors.ErrCodeNoSuchNode, "set focusable: unknown node %d", id)
	}
	if n.config.Focusable == focusable {
		return nil
	}
	n.config.Focusable = focusable

	preferred := t.ring.orderFromCurrent()
	t.ring.rebuild(preferred)
	return nil
}

// SetSizePolicy changes a node's size policy and schedules a relayout.
func (t *Tree) SetSizePolicy(id NodeID, policy SizePolicy) error {
	n, ok := t.nodes[id]
	if !ok {
		return errors.Newf(errors.ErrCodeNoSuchNode, "set size policy: unknown node %d", id)
	}
	n.config.Size = policy
	t.needsLayout = true
	return nil
}

// SetOffset changes a node's placement within a fixed-position parent
// and schedules a relayout.
func (t *Tree) SetOffset(id NodeID, offset Rect) error {
	n, ok := t.nodes[id]
	if !ok {
		return errors.Newf(errors.ErrCodeNoSuchNode, "set offset: unknown node %d", id)
	}
	n.config.Offset = offset
	t.needsLayout = true
	return nil
}

// MarkDirty records that a node's visual output may be stale. Marks on
// nodes without the Painter capability fall through to their paintable
// descendants.
func (t *Tree) MarkDirty(id NodeID) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	if _, ok := n.widget.(Painter); ok {
		t.damage.mark(id)
		return
	}
	for _, cid := range n.children {
		t.MarkDirty(cid)
	}
}

// Widget returns the widget attached to a node, nil for containers and
// unknown handles.
func (t *Tree) Widget(id NodeID) Widget {
	if n, ok := t.nodes[id]; ok {
		return n.widget
	}
	return nil
}

// Geometry returns a node's last computed rectangle.
func (t *Tree) Geometry(id NodeID) Rect {
	if n, ok := t.nodes[id]; ok {
		return n.geometry
	}
	return ZeroRect
}

// Parent returns a node's parent handle, NoNode for the root and for
// unknown handles.
func (t *Tree) Parent(id NodeID) NodeID {
	if n, ok := t.nodes[id]; ok {
		return n.parent
	}
	return NoNode
}

// Children returns a copy of a node's ordered child handles.
func (t *Tree) Children(id NodeID) []NodeID {
	n, ok := t.nodes[id]
	if !ok || len(n.children) == 0 {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// Visible reports the node's own visibility flag.
func (t *Tree) Visible(id NodeID) bool {
	if n, ok := t.nodes[id]; ok {
		return n.visible
	}
	return false
}

// Focusable reports the node's focusable flag.
func (t *Tree) Focusable(id NodeID) bool {
	if n, ok := t.nodes[id]; ok {
		return n.config.Focusable
	}
	return false
}

// Len returns the number of nodes in the tree, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NeedsLayout reports whether a structural or policy change is awaiting
// a layout pass.
func (t *Tree) NeedsLayout() bool {
	return t.needsLayout
}

// Walk visits the attached tree in pre-order, the canonical ordering
// shared by painting and focus traversal. Hidden nodes are visited;
// callers filter. Return false to skip a node's children; siblings are
// still visited.
func (t *Tree) Walk(fn func(id NodeID) bool) {
	t.walkFrom(t.root, fn)
}

// WalkFrom visits the subtree rooted at id in pre-order.
func (t *Tree) WalkFrom(id NodeID, fn func(id NodeID) bool) {
	t.walkFrom(id, fn)
}

func (t *Tree) walkFrom(id NodeID, fn func(id NodeID) bool) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	if !fn(id) {
		return
	}
	for _, cid := range n.children {
		t.walkFrom(cid, fn)
	}
}

// effectivelyVisible reports whether the node and every ancestor up to
// the root are visible and attached.
func (t *Tree) effectivelyVisible(id NodeID) bool {
	for id != NoNode {
		n, ok := t.nodes[id]
		if !ok || !n.visible {
			return false
		}
		if id == t.root {
			return true
		}
		if n.parent == NoNode {
			return false // Unattached subtree
		}
		id = n.parent
	}
	return false
}

func (t *Tree) isAncestorOrSelf(candidate, of NodeID) bool {
	for id := of; id != NoNode; id = t.Parent(id) {
		if id == candidate {
			return true
		}
	}
	return false
}

func (t *Tree) markSubtreeDirty(id NodeID) {
	t.walkFrom(id, func(nid NodeID) bool {
		n := t.nodes[nid]
		if _, ok := n.widget.(Painter); ok {
			t.damage.mark(nid)
		}
		return true
	})
}

// Bubble forwards a signal from a node to each ancestor in turn,
// innermost first, delivering to widgets with the SignalReceiver
// capability. A non-propagating signal stops at its first handler.
// Signals no ancestor handles are forwarded to the tree's router.
// Returns true if anything handled the signal.
func (t *Tree) Bubble(from NodeID, sig signal.Signal) bool {
	handled := false
	for id := t.Parent(from); id != NoNode; id = t.Parent(id) {
		r, ok := t.Widget(id).(SignalReceiver)
		if !ok {
			continue
		}
		if r.ReceiveSignal(sig) {
			t.MarkDirty(id)
			handled = true
			if !sig.Propagate {
				return true
			}
		}
	}
	if !handled || sig.Propagate {
		if t.router.Forward(sig) {
			handled = true
		}
	}
	return handled
}

// Flush forwards a signal through the subtree below a node in pre-order.
// A non-propagating signal stops at its first handler.
func (t *Tree) Flush(from NodeID, sig signal.Signal) bool {
	handled := false
	stopped := false
	var visit func(id NodeID)
	visit = func(id NodeID) {
		if stopped {
			return
		}
		n, ok := t.nodes[id]
		if !ok {
			return
		}
		if id != from {
			if r, ok := n.widget.(SignalReceiver); ok && r.ReceiveSignal(sig) {
				t.MarkDirty(id)
				handled = true
				if !sig.Propagate {
					stopped = true
					return
				}
			}
		}
		for _, cid := range n.children {
			visit(cid)
		}
	}
	visit(from)
	return handled
}
