package core

import (
	"context"
	"sync"
	"time"

	"github.com/weftui/weft/pkg/backend"
	"github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/pkg/logging"
	"github.com/weftui/weft/pkg/signal"
	"github.com/weftui/weft/pkg/terminal"
)

// SignalQuit stops the loop when it reaches the signal router.
const SignalQuit = "quit"

// SignalTick is flushed through the tree at the configured tick rate,
// carrying the tick time under the "time" key.
const SignalTick = "tick"

// LoopConfig configures an event loop.
type LoopConfig struct {
	Backend       backend.Backend
	Tree          *Tree
	Logger        *logging.Logger
	MessageBuffer int
	TickRate      time.Duration
}

// Loop owns a Tree and drives it against a terminal backend. All tree
// mutation happens on the Run goroutine; other goroutines talk to the
// loop only through Post.
type Loop struct {
	backend  backend.Backend
	tree     *Tree
	log      *logging.Logger
	events   chan terminal.Event
	quit     chan struct{}
	quitOnce sync.Once
	tickRate time.Duration
	running  bool
}

// NewLoop builds a loop from config. The tree's signal router gains a
// quit handler, so any widget can end the program by bubbling SignalQuit.
func NewLoop(cfg LoopConfig) *Loop {
	buf := cfg.MessageBuffer
	if buf <= 0 {
		buf = 128
	}
	l := &Loop{
		backend:  cfg.Backend,
		tree:     cfg.Tree,
		log:      cfg.Logger,
		events:   make(chan terminal.Event, buf),
		quit:     make(chan struct{}),
		tickRate: cfg.TickRate,
	}
	if l.tree != nil {
		l.tree.Router().Connect(SignalQuit, func(signal.Signal) {
			l.Quit()
		})
	}
	return l
}

// Tree returns the loop's widget tree.
func (l *Loop) Tree() *Tree {
	return l.tree
}

// Post queues a synthetic event for the loop. Safe from any goroutine;
// drops the event when the queue is full rather than blocking.
func (l *Loop) Post(ev terminal.Event) {
	select {
	case l.events <- ev:
	default:
	}
}

// Quit asks the loop to stop after the current iteration. Safe from any
// goroutine and safe to call more than once.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() { close(l.quit) })
}

// Run processes events until Quit or context cancellation. It owns the
// terminal for its whole lifetime; the backend is restored on return.
func (l *Loop) Run(ctx context.Context) error {
	if l.backend == nil {
		return errors.New(errors.ErrCodeInvalidInput, "loop: backend is required")
	}
	if l.tree == nil {
		return errors.New(errors.ErrCodeInvalidInput, "loop: tree is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := l.backend.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeBackendInit, "loop: backend init")
	}
	defer l.backend.Fini()
	l.backend.HideCursor()

	w, h := l.backend.Size()
	l.tree.Layout(NewRect(0, 0, w, h))
	l.running = true

	go l.poll()

	var ticks <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(l.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	l.render()
	for l.running {
		select {
		case <-ctx.Done():
			l.running = false
		case <-l.quit:
			l.running = false
		case ev := <-l.events:
			l.Dispatch(ev)
		case now := <-ticks:
			l.tree.Flush(l.tree.Root(), signal.New(SignalTick, signal.Payload{"time": now}))
		}
		l.render()
	}
	return ctx.Err()
}

func (l *Loop) poll() {
	for {
		ev := l.backend.PollEvent()
		if ev == nil {
			// Backend shut down under us.
			l.Quit()
			return
		}
		select {
		case l.events <- ev:
		case <-l.quit:
			return
		}
	}
}

func (l *Loop) render() {
	if !l.running {
		return
	}
	if l.tree.NeedsRender() || l.tree.NeedsLayout() {
		l.tree.Render(l.backend)
	}
	l.backend.Show()
}

// Dispatch routes one event through the tree. Exposed so tests can feed
// events without running the loop goroutine.
func (l *Loop) Dispatch(ev terminal.Event) {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		l.tree.Layout(NewRect(0, 0, e.Width, e.Height))
		l.backend.Sync()
	case terminal.KeyEvent:
		l.dispatchKey(e)
	case terminal.MouseEvent:
		l.dispatchMouse(e)
	case terminal.PasteEvent:
		l.dispatchPaste(e)
	}
}

// dispatchKey delivers a key press. Tab and Shift-Tab drive the focus
// ring unless the focused widget intercepts them; every other key goes
// to the focused node first, then bubbles through its ancestors until
// someone consumes it.
func (l *Loop) dispatchKey(ev terminal.KeyEvent) {
	t := l.tree
	focused := t.Focus().Current()

	if ev.Key == terminal.KeyTab || ev.Key == terminal.KeyBackTab {
		intercepted := false
		if focused != NoNode {
			if ic, ok := t.Widget(focused).(KeyInterceptor); ok && ic.InterceptsKey(ev) {
				intercepted = true
			}
		}
		if !intercepted {
			if ev.Key == terminal.KeyTab {
				t.Focus().Next()
			} else {
				t.Focus().Prev()
			}
			return
		}
	}

	for id := focused; id != NoNode; id = t.Parent(id) {
		if h, ok := t.Widget(id).(KeyHandler); ok && h.HandleKey(ev) {
			t.MarkDirty(id)
			l.log.Debug(logging.CategoryInput, "key consumed", map[string]any{
				"node": int(id), "key": int(ev.Key), "rune": string(ev.Rune),
			})
			return
		}
	}
}

// dispatchMouse hit-tests the tree and delivers the event to the
// topmost node under the pointer, bubbling outward from there. A press
// on a focusable node also moves focus.
func (l *Loop) dispatchMouse(ev terminal.MouseEvent) {
	t := l.tree
	target := l.hitTest(ev.X, ev.Y)
	if target == NoNode {
		return
	}

	if ev.Action == terminal.MousePress {
		for id := target; id != NoNode; id = t.Parent(id) {
			if t.Focusable(id) {
				t.Focus().Set(id)
				break
			}
		}
	}

	for id := target; id != NoNode; id = t.Parent(id) {
		h, ok := t.Widget(id).(MouseHandler)
		if !ok {
			continue
		}
		geo := t.Geometry(id)
		if h.HandleMouse(ev.X-geo.X, ev.Y-geo.Y, ev) {
			t.MarkDirty(id)
			return
		}
	}
}

func (l *Loop) dispatchPaste(ev terminal.PasteEvent) {
	t := l.tree
	for id := t.Focus().Current(); id != NoNode; id = t.Parent(id) {
		if h, ok := t.Widget(id).(PasteHandler); ok && h.HandlePaste(ev.Text) {
			t.MarkDirty(id)
			return
		}
	}
}

// hitTest returns the deepest, latest-painted visible node containing
// the screen cell (x, y). Later pre-order nodes paint on top, so the
// last match wins.
func (l *Loop) hitTest(x, y int) NodeID {
	t := l.tree
	found := NoNode
	t.Walk(func(id NodeID) bool {
		if !t.Visible(id) {
			return false
		}
		if t.Geometry(id).Contains(x, y) {
			found = id
		}
		return true
	})
	return found
}
