package widgets

import (
	"strings"
	"testing"

	"github.com/weftui/weft/pkg/terminal"
	"github.com/weftui/weft/pkg/theme"
)

func TestFlipSwitchToggle(t *testing.T) {
	var states []bool
	f := NewFlipSwitch(func(on bool) { states = append(states, on) })

	if f.On() {
		t.Fatal("switch should start off")
	}

	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	if !f.On() {
		t.Error("Enter should toggle on")
	}
	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: ' '})
	if f.On() {
		t.Error("Space should toggle off")
	}
	if len(states) != 2 || states[0] != true || states[1] != false {
		t.Errorf("states = %v", states)
	}

	// SetOn is silent.
	f.SetOn(true)
	if len(states) != 2 {
		t.Error("SetOn must not fire OnToggle")
	}
}

func TestFlipSwitchPassesOtherKeys(t *testing.T) {
	f := NewFlipSwitch(nil)
	if f.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x'}) {
		t.Error("ordinary runes should pass through")
	}
	if f.HandleKey(terminal.KeyEvent{Key: terminal.KeyUp}) {
		t.Error("arrows should pass through")
	}
}

func TestFlipSwitchPaint(t *testing.T) {
	f := NewFlipSwitch(nil)

	if got := f.ContentSize(); got.Width != 10 || got.Height != 3 {
		t.Errorf("ContentSize = %+v, want 10x3", got)
	}

	off := paint(f, 10, 3, theme.StateDefault)
	if !strings.Contains(off.row(1), "OFF") {
		t.Errorf("off row = %q, want OFF", off.row(1))
	}

	f.Toggle()
	on := paint(f, 10, 3, theme.StateDefault)
	if !strings.Contains(on.row(1), "ON") || strings.Contains(on.row(1), "OFF") {
		t.Errorf("on row = %q, want ON", on.row(1))
	}
}
