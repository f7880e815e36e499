package core

// damageTracker records which nodes are stale since the last completed
// render pass. Geometry changes are tracked separately because they can
// reveal or obscure siblings in ways that are not locally computable;
// any geometry change degrades the next pass to a full repaint.
type damageTracker struct {
	dirty           map[NodeID]struct{}
	geometryChanged bool
}

func newDamageTracker() *damageTracker {
	return &damageTracker{dirty: make(map[NodeID]struct{})}
}

// mark is an idempotent insert into the dirty set.
func (d *damageTracker) mark(id NodeID) {
	d.dirty[id] = struct{}{}
}

// markGeometry flags that geometry changed since the last frame.
func (d *damageTracker) markGeometry() {
	d.geometryChanged = true
}

// forget drops a destroyed node from the dirty set.
func (d *damageTracker) forget(id NodeID) {
	delete(d.dirty, id)
}

func (d *damageTracker) has(id NodeID) bool {
	_, ok := d.dirty[id]
	return ok
}

// empty reports whether nothing is stale.
func (d *damageTracker) empty() bool {
	return len(d.dirty) == 0 && !d.geometryChanged
}

// clear resets the tracker after a completed render pass.
func (d *damageTracker) clear() {
	clear(d.dirty)
	d.geometryChanged = false
}

// Dirty reports whether a node is in the dirty set. Exposed through the
// tree for tests and instrumentation.
func (t *Tree) Dirty(id NodeID) bool {
	return t.damage.has(id)
}

// NeedsRender reports whether the next render pass would paint anything.
func (t *Tree) NeedsRender() bool {
	return !t.damage.empty()
}
