// Package core implements the widget composition engine: an arena-backed
// node tree, top-down layout, a single focus ring, damage tracking, and
// an incremental render pipeline driven by a cooperative event loop.
//
// All state in this package is owned by the event loop's goroutine. The
// only concurrency-safe entry point is Loop.Post.
package core

// Size is a width/height pair in character cells.
type Size struct {
	Width, Height int
}

// Zero reports whether both dimensions are zero.
func (s Size) Zero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is a positioned rectangle in character cells. The zero value is
// the empty rectangle at the origin.
type Rect struct {
	X, Y, Width, Height int
}

// ZeroRect is the empty rectangle.
var ZeroRect = Rect{}

// NewRect builds a rectangle from origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ContainsRect reports whether other lies entirely inside r.
// The empty rectangle is contained everywhere.
func (r Rect) ContainsRect(other Rect) bool {
	if other.Empty() {
		return true
	}
	return other.X >= r.X &&
		other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Intersects reports whether the rectangles overlap in at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersection returns the overlapping area, or ZeroRect when disjoint.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x || y2 <= y {
		return ZeroRect
	}
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Inset returns the rectangle shrunk by the given insets, never below
// zero size.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  max(0, r.Width-in.Left-in.Right),
		Height: max(0, r.Height-in.Top-in.Bottom),
	}
}

// Insets are interior margins applied to a container's rectangle before
// its children are laid out.
type Insets struct {
	Top, Right, Bottom, Left int
}

// UniformInsets returns equal insets on all four sides.
func UniformInsets(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// Axis selects the main direction of a stacked layout.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// SizeMode describes how a node claims space along its parent's main axis.
type SizeMode int

const (
	// SizeFill shares the space left over after fixed and content-sized
	// siblings are placed. The zero value, so nodes fill by default.
	SizeFill SizeMode = iota

	// SizeFixed consumes exactly Cells cells.
	SizeFixed

	// SizeContent consumes the widget's reported content size.
	SizeContent
)

// SizePolicy is a node's declared sizing behavior.
type SizePolicy struct {
	Mode  SizeMode
	Cells int // Used by SizeFixed
}

// Fill returns the fill-parent policy.
func Fill() SizePolicy {
	return SizePolicy{Mode: SizeFill}
}

// FixedSize returns a policy consuming exactly cells cells.
func FixedSize(cells int) SizePolicy {
	return SizePolicy{Mode: SizeFixed, Cells: cells}
}

// ContentSized returns a policy consuming the widget's content size.
func ContentSized() SizePolicy {
	return SizePolicy{Mode: SizeContent}
}

// LayoutKind selects how a container places its children.
type LayoutKind int

const (
	// LayoutStacked places children sequentially along one axis.
	LayoutStacked LayoutKind = iota

	// LayoutFixed places each child at its own offset within the parent.
	LayoutFixed
)

// LayoutSpec is a container's layout policy.
type LayoutSpec struct {
	Kind LayoutKind
	Axis Axis // Main axis for LayoutStacked
	Gap  int  // Cells between stacked children
}

// Stacked returns a stacked layout along the given axis.
func Stacked(axis Axis) LayoutSpec {
	return LayoutSpec{Kind: LayoutStacked, Axis: axis}
}

// FixedLayout returns the fixed-position layout policy.
func FixedLayout() LayoutSpec {
	return LayoutSpec{Kind: LayoutFixed}
}

// NodeConfig declares a node's layout participation. The zero value is a
// visible, non-focusable, fill-parent node stacking its children
// vertically with no padding.
type NodeConfig struct {
	Size      SizePolicy
	Layout    LayoutSpec
	Padding   Insets
	Offset    Rect // Placement within a fixed-position parent
	Focusable bool
	Hidden    bool
}
