package core

import (
	"context"
	"testing"
	"time"

	"github.com/weftui/weft/pkg/backend"
	"github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/pkg/signal"
	"github.com/weftui/weft/pkg/terminal"
)

// stubBackend satisfies backend.Backend for loop tests without a
// terminal. PollEvent drains a channel; closing it simulates driver
// shutdown.
type stubBackend struct {
	w, h    int
	events  chan terminal.Event
	inited  bool
	finis   int
	initErr error
}

func newStubBackend(w, h int) *stubBackend {
	return &stubBackend{w: w, h: h, events: make(chan terminal.Event, 16)}
}

func (s *stubBackend) Init() error {
	if s.initErr != nil {
		return s.initErr
	}
	s.inited = true
	return nil
}

func (s *stubBackend) Fini()            { s.finis++ }
func (s *stubBackend) Size() (int, int) { return s.w, s.h }
func (s *stubBackend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
}
func (s *stubBackend) Show()               {}
func (s *stubBackend) Clear()              {}
func (s *stubBackend) HideCursor()         {}
func (s *stubBackend) ShowCursor()         {}
func (s *stubBackend) SetCursorPos(x, y int) {}
func (s *stubBackend) Beep()               {}
func (s *stubBackend) Sync()               {}

func (s *stubBackend) PollEvent() terminal.Event {
	ev, ok := <-s.events
	if !ok {
		return nil
	}
	return ev
}

func (s *stubBackend) PostEvent(ev terminal.Event) error {
	s.events <- ev
	return nil
}

func newTestLoop(w, h int) (*Loop, *Tree) {
	tr := NewTree(TreeConfig{})
	l := NewLoop(LoopConfig{Backend: newStubBackend(w, h), Tree: tr})
	tr.Layout(NewRect(0, 0, w, h))
	return l, tr
}

func key(k terminal.Key) terminal.KeyEvent {
	return terminal.KeyEvent{Key: k}
}

func TestDispatchTabMovesFocus(t *testing.T) {
	l, tr := newTestLoop(20, 10)
	a, _ := tr.Attach(tr.Root(), newBox('a'), NodeConfig{Focusable: true})
	b, _ := tr.Attach(tr.Root(), newBox('b'), NodeConfig{Focusable: true})

	if tr.Focus().Current() != a {
		t.Fatalf("initial focus = %d, want %d", tr.Focus().Current(), a)
	}

	l.Dispatch(key(terminal.KeyTab))
	if tr.Focus().Current() != b {
		t.Errorf("after Tab, focus = %d, want %d", tr.Focus().Current(), b)
	}
	l.Dispatch(key(terminal.KeyBackTab))
	if tr.Focus().Current() != a {
		t.Errorf("after Shift-Tab, focus = %d, want %d", tr.Focus().Current(), a)
	}
}

// interceptingProbe claims Tab for itself, like a text area inserting
// literal tabs.
type interceptingProbe struct {
	keyProbe
}

func (p *interceptingProbe) InterceptsKey(ev terminal.KeyEvent) bool {
	return ev.Key == terminal.KeyTab
}

func TestDispatchInterceptorKeepsTab(t *testing.T) {
	l, tr := newTestLoop(20, 10)
	editor := &interceptingProbe{keyProbe: keyProbe{consume: true}}
	tr.Attach(tr.Root(), editor, NodeConfig{Focusable: true})
	other, _ := tr.Attach(tr.Root(), newBox('b'), NodeConfig{Focusable: true})

	// Tab is delivered to the editor instead of moving focus.
	l.Dispatch(key(terminal.KeyTab))
	if len(editor.keys) != 1 {
		t.Fatalf("editor saw %d keys, want 1", len(editor.keys))
	}
	if tr.Focus().Current() == other {
		t.Error("intercepted Tab must not move focus")
	}

	// Shift-Tab is not intercepted and traverses as usual.
	l.Dispatch(key(terminal.KeyBackTab))
	if tr.Focus().Current() != other {
		t.Errorf("Shift-Tab should move focus to %d", other)
	}
}

func TestDispatchKeyBubbles(t *testing.T) {
	l, tr := newTestLoop(20, 10)
	var order []string
	outer := &keyProbe{name: "outer", log: &order, consume: true}
	inner := &keyProbe{name: "inner", log: &order}

	o, _ := tr.Attach(tr.Root(), outer, NodeConfig{})
	in, _ := tr.Attach(o, inner, NodeConfig{Focusable: true})
	tr.Focus().Set(in)

	l.Dispatch(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x'})

	// The focused node sees the key first; the unconsumed key climbs to
	// the ancestor.
	if len(order) != 2 || order[0] != "inner" || order[1] != "outer" {
		t.Errorf("delivery order = %v, want [inner outer]", order)
	}

	// A consumed key stops bubbling.
	order = order[:0]
	inner.consume = true
	l.Dispatch(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'y'})
	if len(order) != 1 || order[0] != "inner" {
		t.Errorf("delivery order = %v, want [inner]", order)
	}
}

// clickProbe records node-relative mouse coordinates.
type clickProbe struct {
	boxWidget
	consume bool
	xs, ys  []int
}

func (c *clickProbe) HandleMouse(x, y int, ev terminal.MouseEvent) bool {
	c.xs = append(c.xs, x)
	c.ys = append(c.ys, y)
	return c.consume
}

func TestDispatchMouseHitsTopmost(t *testing.T) {
	l, tr := newTestLoop(20, 10)
	under := &clickProbe{consume: true}
	over := &clickProbe{consume: true}
	overlay, _ := tr.Attach(tr.Root(), nil, NodeConfig{Layout: FixedLayout()})
	tr.Attach(overlay, under, NodeConfig{Offset: NewRect(0, 0, 10, 5)})
	tr.Attach(overlay, over, NodeConfig{Offset: NewRect(5, 2, 10, 5)})
	tr.Layout(NewRect(0, 0, 20, 10))

	// (7, 3) lies in both; the later-painted box wins, and coordinates
	// arrive relative to it.
	l.Dispatch(terminal.MouseEvent{X: 7, Y: 3, Button: terminal.MouseLeft, Action: terminal.MousePress})

	if len(over.xs) != 1 || len(under.xs) != 0 {
		t.Fatalf("over hits = %d, under hits = %d, want 1, 0", len(over.xs), len(under.xs))
	}
	if over.xs[0] != 2 || over.ys[0] != 1 {
		t.Errorf("relative coords = (%d, %d), want (2, 1)", over.xs[0], over.ys[0])
	}
}

func TestDispatchMousePressFocuses(t *testing.T) {
	l, tr := newTestLoop(20, 10)
	a, _ := tr.Attach(tr.Root(), newBox('a'), NodeConfig{Focusable: true})
	b, _ := tr.Attach(tr.Root(), newBox('b'), NodeConfig{Focusable: true})
	tr.Layout(NewRect(0, 0, 20, 10))

	if tr.Focus().Current() != a {
		t.Fatalf("initial focus = %d", tr.Focus().Current())
	}

	// b occupies the bottom half.
	l.Dispatch(terminal.MouseEvent{X: 1, Y: 7, Button: terminal.MouseLeft, Action: terminal.MousePress})
	if tr.Focus().Current() != b {
		t.Errorf("click should focus b, got %d", tr.Focus().Current())
	}
}

func TestDispatchResizeRelayouts(t *testing.T) {
	l, tr := newTestLoop(20, 10)
	a, _ := tr.Attach(tr.Root(), newBox('a'), NodeConfig{})

	l.Dispatch(terminal.ResizeEvent{Width: 30, Height: 6})
	if got := tr.Geometry(a); got != NewRect(0, 0, 30, 6) {
		t.Errorf("after resize, a = %+v", got)
	}
}

// pasteProbe accepts pasted text.
type pasteProbe struct {
	boxWidget
	got []string
}

func (p *pasteProbe) HandlePaste(text string) bool {
	p.got = append(p.got, text)
	return true
}

func TestDispatchPasteGoesToFocus(t *testing.T) {
	l, tr := newTestLoop(20, 10)
	input := &pasteProbe{}
	tr.Attach(tr.Root(), input, NodeConfig{Focusable: true})

	l.Dispatch(terminal.PasteEvent{Text: "hello"})
	if len(input.got) != 1 || input.got[0] != "hello" {
		t.Errorf("paste delivery = %v, want [hello]", input.got)
	}
}

func TestRunStopsOnQuitSignal(t *testing.T) {
	tr := NewTree(TreeConfig{})
	sb := newStubBackend(20, 10)
	l := NewLoop(LoopConfig{Backend: sb, Tree: tr})

	done := make(chan error, 1)
	go func() {
		done <- l.Run(context.Background())
	}()

	// A widget bubbling the quit signal from anywhere ends the loop.
	time.Sleep(10 * time.Millisecond)
	l.Post(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'q'})
	l.Quit()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	if sb.finis != 1 {
		t.Errorf("Fini called %d times, want 1", sb.finis)
	}
}

func TestRunStopsOnBackendShutdown(t *testing.T) {
	tr := NewTree(TreeConfig{})
	sb := newStubBackend(20, 10)
	l := NewLoop(LoopConfig{Backend: sb, Tree: tr})

	done := make(chan error, 1)
	go func() {
		done <- l.Run(context.Background())
	}()

	time.Sleep(10 * time.Millisecond)
	close(sb.events)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on driver shutdown")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	tr := NewTree(TreeConfig{})
	sb := newStubBackend(20, 10)
	l := NewLoop(LoopConfig{Backend: sb, Tree: tr})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- l.Run(ctx)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on cancellation")
	}
}

func TestRunBackendInitError(t *testing.T) {
	tr := NewTree(TreeConfig{})
	sb := newStubBackend(20, 10)
	sb.initErr = errors.New(errors.ErrCodeBackendInit, "no tty")
	l := NewLoop(LoopConfig{Backend: sb, Tree: tr})

	err := l.Run(context.Background())
	if !errors.IsCode(err, errors.ErrCodeBackendInit) {
		t.Errorf("Run returned %v, want BACKEND_INIT", err)
	}
}

func TestPollStopsOnQuitWithFullQueue(t *testing.T) {
	tr := NewTree(TreeConfig{})
	sb := newStubBackend(20, 10)
	l := NewLoop(LoopConfig{Backend: sb, Tree: tr, MessageBuffer: 1})

	// Fill the queue so the next forward would block, then hand poll an
	// event to forward.
	l.events <- key(terminal.KeyEnter)
	sb.events <- key(terminal.KeyEnter)

	done := make(chan struct{})
	go func() {
		l.poll()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	l.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poll goroutine parked on a full queue after Quit")
	}
}

func TestQuitSignalFromWidget(t *testing.T) {
	l, tr := newTestLoop(20, 10)
	leaf, _ := tr.Attach(tr.Root(), newBox('x'), NodeConfig{})

	// No ancestor handles quit, so it escapes to the router, where the
	// loop listens.
	if !tr.Bubble(leaf, signal.NewOnce(SignalQuit, nil)) {
		t.Fatal("quit signal should reach the router")
	}

	select {
	case <-l.quit:
	default:
		t.Fatal("quit signal should trip the loop's stop channel")
	}
}
