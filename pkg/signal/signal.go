// Package signal provides a named, data-carrying signal router used by
// widgets and applications to communicate without direct references.
// The core tree forwards signals along ancestor and descendant paths;
// the router holds handlers for anything that escapes the tree.
package signal

// Payload carries signal data as loosely typed key-value pairs.
type Payload map[string]any

// Signal is a named event with attached data. Propagate controls whether
// a signal may be handled more than once while it travels.
type Signal struct {
	Name      string
	Data      Payload
	Propagate bool
}

// New creates a propagating signal.
func New(name string, data Payload) Signal {
	if data == nil {
		data = Payload{}
	}
	return Signal{Name: name, Data: data, Propagate: true}
}

// NewOnce creates a signal that stops at its first handler.
func NewOnce(name string, data Payload) Signal {
	sig := New(name, data)
	sig.Propagate = false
	return sig
}

// String returns a string value from the payload, "" when absent.
func (s Signal) String(key string) string {
	v, _ := s.Data[key].(string)
	return v
}

// Int returns an int value from the payload, 0 when absent.
func (s Signal) Int(key string) int {
	v, _ := s.Data[key].(int)
	return v
}

// Bool returns a bool value from the payload, false when absent.
func (s Signal) Bool(key string) bool {
	v, _ := s.Data[key].(bool)
	return v
}

// Handler processes a forwarded signal.
type Handler func(sig Signal)

// Connection identifies a registered handler so it can be disconnected.
type Connection struct {
	name string
	id   int
}

type registration struct {
	id      int
	handler Handler
}

// Router forwards signals to handlers registered by name. It belongs to
// the event loop's thread; it performs no locking.
type Router struct {
	handlers map[string][]registration
	nextID   int
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string][]registration)}
}

// Connect registers a handler for the named signal.
func (r *Router) Connect(name string, h Handler) Connection {
	r.nextID++
	r.handlers[name] = append(r.handlers[name], registration{id: r.nextID, handler: h})
	return Connection{name: name, id: r.nextID}
}

// Disconnect removes a previously connected handler.
// Returns false if the connection is unknown.
func (r *Router) Disconnect(conn Connection) bool {
	regs := r.handlers[conn.name]
	for i, reg := range regs {
		if reg.id == conn.id {
			r.handlers[conn.name] = append(regs[:i:i], regs[i+1:]...)
			if len(r.handlers[conn.name]) == 0 {
				delete(r.handlers, conn.name)
			}
			return true
		}
	}
	return false
}

// Forward delivers the signal to registered handlers in connection order.
// Non-propagating signals stop after the first handler. Returns true if
// at least one handler ran.
func (r *Router) Forward(sig Signal) bool {
	regs, ok := r.handlers[sig.Name]
	if !ok || len(regs) == 0 {
		return false
	}

	// Handlers may connect or disconnect while running; iterate a copy.
	snapshot := make([]registration, len(regs))
	copy(snapshot, regs)

	for _, reg := range snapshot {
		reg.handler(sig)
		if !sig.Propagate {
			break
		}
	}
	return true
}

// HandlerCount returns the number of handlers for a signal name.
func (r *Router) HandlerCount(name string) int {
	return len(r.handlers[name])
}
