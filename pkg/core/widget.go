package core

import (
	"github.com/weftui/weft/pkg/signal"
	"github.com/weftui/weft/pkg/terminal"
)

// Widget is the behavior attached to a tree node. The tree dispatches to
// widgets through optional capability interfaces: a widget paints only if
// it implements Painter, receives keys only if it implements KeyHandler,
// and so on. A node may carry a nil widget and act as a plain container.
type Widget interface {
	// Kind returns a short identifier for logs and tests, such as
	// "label" or "input".
	Kind() string
}

// Painter is the capability to draw. Paint receives a context clipped to
// the intersection of the node's geometry and all ancestor geometries;
// writes outside the clip are discarded by the pipeline, not trusted to
// the widget.
type Painter interface {
	Widget
	Paint(ctx PaintContext)
}

// KeyHandler is the capability to consume key events. Return true to
// consume; unconsumed events bubble to the node's ancestors.
type KeyHandler interface {
	Widget
	HandleKey(ev terminal.KeyEvent) bool
}

// MouseHandler is the capability to consume mouse events. x and y are
// relative to the node's geometry. Return true to consume.
type MouseHandler interface {
	Widget
	HandleMouse(x, y int, ev terminal.MouseEvent) bool
}

// PasteHandler is the capability to consume bracketed-paste text.
type PasteHandler interface {
	Widget
	HandlePaste(text string) bool
}

// FocusAware widgets are notified when their node gains or loses focus.
type FocusAware interface {
	Widget
	FocusGained()
	FocusLost()
}

// KeyInterceptor is an explicit opt-in: when the focused node's widget
// reports true for a key the event loop would normally reserve (focus
// traversal), the loop delivers the key to the widget instead.
type KeyInterceptor interface {
	Widget
	InterceptsKey(ev terminal.KeyEvent) bool
}

// Measurer reports a widget's natural content size, used by the
// content-sized policy. Nodes without this capability measure as zero.
type Measurer interface {
	Widget
	ContentSize() Size
}

// SignalReceiver is the capability to handle signals traveling along the
// tree via Bubble and Flush. Return true to mark the signal handled.
type SignalReceiver interface {
	Widget
	ReceiveSignal(sig signal.Signal) bool
}
