// Package widgets provides the stock widget set: labels, text panes,
// buttons, inputs, lists, switches, and decorations. Every widget is a
// plain value implementing the core capability interfaces it needs;
// none of them hold tree handles or block.
//
// Widgets mutated from input handlers are repainted automatically by
// the event loop. Programmatic mutation (SetText and friends) needs a
// MarkDirty on the widget's node afterwards.
package widgets

// Base carries the focus flag shared by the interactive widgets.
// Embedding it provides the FocusGained/FocusLost half of
// core.FocusAware; the embedding widget's Kind completes it.
type Base struct {
	focused bool
}

// FocusGained records that the widget holds focus.
func (b *Base) FocusGained() { b.focused = true }

// FocusLost records that the widget lost focus.
func (b *Base) FocusLost() { b.focused = false }

// Focused reports whether the widget currently holds focus.
func (b *Base) Focused() bool { return b.focused }

// Align selects horizontal text placement.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// alignOffset returns the x offset placing a run of width w inside total.
func alignOffset(a Align, total, w int) int {
	switch a {
	case AlignCenter:
		return max(0, (total-w)/2)
	case AlignRight:
		return max(0, total-w)
	default:
		return 0
	}
}
