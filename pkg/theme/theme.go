// Package theme maps style names to terminal styles, keyed by widget
// state. Widgets ask for names like "border" or "input.placeholder" and
// get the right style for their current state; unknown names resolve to
// the default style so painting never fails.
package theme

import "github.com/weftui/weft/pkg/backend"

// State selects which variant of a named style applies.
type State int

const (
	StateDefault State = iota
	StateFocused
	StateDisabled
)

// String returns the YAML/document name of the state.
func (s State) String() string {
	switch s {
	case StateFocused:
		return "focused"
	case StateDisabled:
		return "disabled"
	default:
		return "default"
	}
}

// Theme is a state-keyed table of named styles.
type Theme struct {
	styles [3]map[string]backend.Style
}

// New creates an empty theme.
func New() *Theme {
	t := &Theme{}
	for i := range t.styles {
		t.styles[i] = make(map[string]backend.Style)
	}
	return t
}

// Edit sets the style for a name under the given state.
func (t *Theme) Edit(state State, name string, style backend.Style) {
	if state < StateDefault || state > StateDisabled {
		return
	}
	t.styles[state][name] = style
}

// Query resolves a named style for a state. Lookup falls back from the
// requested state to the default state, then to the default style, so
// callers never need to handle a miss.
func (t *Theme) Query(state State, name string) backend.Style {
	if state >= StateDefault && state <= StateDisabled {
		if s, ok := t.styles[state][name]; ok {
			return s
		}
	}
	if s, ok := t.styles[StateDefault][name]; ok {
		return s
	}
	return backend.DefaultStyle()
}

// Has reports whether the exact state/name pair is defined.
func (t *Theme) Has(state State, name string) bool {
	if state < StateDefault || state > StateDisabled {
		return false
	}
	_, ok := t.styles[state][name]
	return ok
}

// Default returns the built-in theme.
func Default() *Theme {
	t := New()

	base := backend.DefaultStyle()
	muted := base.Foreground(backend.ColorRGB(100, 98, 92))
	accent := base.Foreground(backend.ColorRGB(255, 183, 77))

	// Default state
	t.Edit(StateDefault, "text", base)
	t.Edit(StateDefault, "fill", base)
	t.Edit(StateDefault, "label", base)
	t.Edit(StateDefault, "title", base.Bold(true))
	t.Edit(StateDefault, "border", base.Foreground(backend.ColorRGB(90, 90, 100)))
	t.Edit(StateDefault, "button", base)
	t.Edit(StateDefault, "input", base)
	t.Edit(StateDefault, "input.placeholder", muted)
	t.Edit(StateDefault, "input.cursor", base.Reverse(true))
	t.Edit(StateDefault, "list.item", base)
	t.Edit(StateDefault, "list.selection", base.Reverse(true))
	t.Edit(StateDefault, "switch", base)
	t.Edit(StateDefault, "status", muted)
	t.Edit(StateDefault, "tab", base.Bold(true))
	t.Edit(StateDefault, "tab.inactive", muted)

	// Focused state
	t.Edit(StateFocused, "border", accent)
	t.Edit(StateFocused, "title", accent.Bold(true))
	t.Edit(StateFocused, "button", accent.Bold(true))
	t.Edit(StateFocused, "input", base.Underline(true))
	t.Edit(StateFocused, "list.selection", accent.Reverse(true))
	t.Edit(StateFocused, "switch", accent.Bold(true))
	t.Edit(StateFocused, "tab", accent.Bold(true))

	// Disabled state
	t.Edit(StateDisabled, "text", muted)
	t.Edit(StateDisabled, "label", muted)
	t.Edit(StateDisabled, "button", muted.Dim(true))
	t.Edit(StateDisabled, "border", muted.Dim(true))

	return t
}
