package widgets

import (
	"testing"

	"github.com/weftui/weft/pkg/terminal"
	"github.com/weftui/weft/pkg/theme"
)

func listKey(l *List, k terminal.Key) bool {
	return l.HandleKey(terminal.KeyEvent{Key: k})
}

func TestListNavigation(t *testing.T) {
	l := NewList("a", "b", "c")

	if l.Selection() != 0 {
		t.Fatalf("initial selection = %d", l.Selection())
	}

	listKey(l, terminal.KeyDown)
	listKey(l, terminal.KeyDown)
	if l.Selection() != 2 {
		t.Errorf("selection = %d, want 2", l.Selection())
	}

	// The selection clamps at the edges instead of wrapping.
	listKey(l, terminal.KeyDown)
	if l.Selection() != 2 {
		t.Errorf("selection = %d, should clamp at the end", l.Selection())
	}

	listKey(l, terminal.KeyHome)
	if l.Selection() != 0 {
		t.Errorf("selection = %d after Home", l.Selection())
	}
	listKey(l, terminal.KeyUp)
	if l.Selection() != 0 {
		t.Errorf("selection = %d, should clamp at the start", l.Selection())
	}
	listKey(l, terminal.KeyEnd)
	if l.Selection() != 2 {
		t.Errorf("selection = %d after End", l.Selection())
	}
}

func TestListSelectCallback(t *testing.T) {
	var gotIndex int
	var gotItem string
	l := NewList("alpha", "beta")
	l.OnSelect = func(i int, item string) {
		gotIndex = i
		gotItem = item
	}

	listKey(l, terminal.KeyDown)
	listKey(l, terminal.KeyEnter)
	if gotIndex != 1 || gotItem != "beta" {
		t.Errorf("OnSelect got (%d, %q)", gotIndex, gotItem)
	}
}

func TestListEmpty(t *testing.T) {
	l := NewList()

	if l.Selection() != -1 {
		t.Errorf("empty selection = %d, want -1", l.Selection())
	}
	// Navigation and commit on an empty list must not panic.
	listKey(l, terminal.KeyDown)
	listKey(l, terminal.KeyEnter)
	paint(l, 10, 3, theme.StateDefault)
}

func TestListScrollKeepsSelectionVisible(t *testing.T) {
	l := NewList("one", "two", "three", "four", "five")

	l.Select(4)
	g := paint(l, 10, 3, theme.StateDefault)
	if g.row(2) != "five" {
		t.Errorf("bottom row = %q, want five", g.row(2))
	}
	if g.row(0) != "three" {
		t.Errorf("top row = %q, want three", g.row(0))
	}

	l.Select(0)
	g = paint(l, 10, 3, theme.StateDefault)
	if g.row(0) != "one" {
		t.Errorf("top row = %q, want one after scrolling back", g.row(0))
	}
}

func TestListMouse(t *testing.T) {
	var committed int
	l := NewList("a", "b", "c")
	l.OnSelect = func(i int, item string) { committed = i }

	// First click selects, a second click on the selection commits.
	click := terminal.MouseEvent{Button: terminal.MouseLeft, Action: terminal.MousePress}
	if !l.HandleMouse(0, 1, click) {
		t.Fatal("click should be consumed")
	}
	if l.Selection() != 1 {
		t.Errorf("selection = %d after click", l.Selection())
	}
	l.HandleMouse(0, 1, click)
	if committed != 1 {
		t.Errorf("committed = %d, want 1", committed)
	}

	// Clicks past the items fall through.
	if l.HandleMouse(0, 8, click) {
		t.Error("click below the items should not be consumed")
	}

	l.HandleMouse(0, 0, terminal.MouseEvent{Button: terminal.MouseWheelUp})
	if l.Selection() != 0 {
		t.Errorf("selection = %d after wheel up", l.Selection())
	}
}

func TestListSetItemsClampsSelection(t *testing.T) {
	l := NewList("a", "b", "c")
	l.Select(2)

	l.SetItems([]string{"x"})
	if l.Selection() != 0 {
		t.Errorf("selection = %d, want clamped to 0", l.Selection())
	}
}
