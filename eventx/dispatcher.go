package eventx

import (
	"reflect"
	"runtime/debug"
	"sync"

	"github.com/will181/eventable/emptyx"
	"github.com/will181/eventable/errx"
	"github.com/will181/eventable/logx"
)

// Dispatcher pairs one event type with one listener type. It owns the
// handler bindings able to consume that event type (fixed at
// construction) and an ordered list of registered listener instances,
// duplicates permitted. Registering a listener of a different concrete
// type, or dispatching an event of a different concrete type, is an
// invalid-argument error.
type Dispatcher struct {
	event    Type
	listener Type
	handlers []Binding
	log      *logx.Logger
	stats    *dispatchStats

	mu        sync.RWMutex
	instances []Listener
}

// NewDispatcher creates a dispatcher for the given event and listener
// types. Bindings that cannot handle the event type are dropped, so an
// unfiltered set is safe to pass.
func NewDispatcher(event, listener Type, bindings []Binding) *Dispatcher {
	return newDispatcher(event, listener, bindings, logx.GetLogger(), &dispatchStats{})
}

func newDispatcher(event, listener Type, bindings []Binding, log *logx.Logger, stats *dispatchStats) *Dispatcher {
	return &Dispatcher{
		event:    event,
		listener: listener,
		handlers: filterBindings(bindings, event),
		log:      log,
		stats:    stats,
	}
}

// EventType returns the event type this dispatcher handles.
func (d *Dispatcher) EventType() Type {
	return d.event
}

// ListenerType returns the listener type this dispatcher handles.
func (d *Dispatcher) ListenerType() Type {
	return d.listener
}

// CountHandlers returns the number of handler bindings fixed at
// construction.
func (d *Dispatcher) CountHandlers() int {
	return len(d.handlers)
}

// CountListeners returns the number of currently registered instances.
func (d *Dispatcher) CountListeners() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.instances)
}

// RegisterListener appends an instance to the dispatch list. The
// instance's concrete type must equal the dispatcher's listener type.
func (d *Dispatcher) RegisterListener(l Listener) error {
	if emptyx.Nil(l) {
		return eventErrors.New(ErrNilListener).
			WithDetail("listener_type", d.listener.String())
	}

	if lt := TypeFor(l); lt != d.listener {
		return eventErrors.New(ErrListenerTypeMismatch).
			WithDetail("expected_type", d.listener.String()).
			WithDetail("actual_type", lt.String())
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.instances = append(d.instances, l)
	return nil
}

// UnregisterListener removes the first registered instance equal to the
// argument. Absent instances are a silent no-op.
func (d *Dispatcher) UnregisterListener(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.instances {
		if listenersEqual(existing, l) {
			d.instances = append(d.instances[:i:i], d.instances[i+1:]...)
			return
		}
	}
}

// Dispatch delivers the event to every handler binding on every
// registered instance, in instance registration order. A handler error
// or panic is logged and never interrupts the remaining deliveries or
// reaches the caller; only a nil or type-mismatched event is an error.
func (d *Dispatcher) Dispatch(e Event) error {
	return d.dispatch("", e)
}

func (d *Dispatcher) dispatch(dispatchID string, e Event) error {
	if emptyx.Nil(e) {
		return eventErrors.New(ErrNilEvent).
			WithDetail("event_type", d.event.String())
	}

	if et := TypeFor(e); et != d.event {
		return eventErrors.New(ErrEventTypeMismatch).
			WithDetail("expected_type", d.event.String()).
			WithDetail("actual_type", et.String())
	}

	d.mu.RLock()
	instances := make([]Listener, len(d.instances))
	copy(instances, d.instances)
	d.mu.RUnlock()

	for _, l := range instances {
		for _, h := range d.handlers {
			d.deliver(dispatchID, l, h, e)
		}
	}
	return nil
}

// deliver invokes a single handler, containing errors and panics so the
// rest of the fan-out still runs.
func (d *Dispatcher) deliver(dispatchID string, l Listener, h Binding, e Event) {
	defer func() {
		if r := recover(); r != nil {
			d.stats.panicked.Add(1)
			d.log.Error("handler %s panicked handling %s%s: %v\n%s",
				h.name, d.event, dispatchSuffix(dispatchID), r, debug.Stack())
		}
	}()

	d.stats.invoked.Add(1)
	if err := h.invoke(l, e); err != nil {
		d.stats.failed.Add(1)
		d.log.Error("handler %s failed handling %s%s: %s",
			h.name, d.event, dispatchSuffix(dispatchID), errx.Print(err))
	}
}

func dispatchSuffix(dispatchID string) string {
	if dispatchID == "" {
		return ""
	}
	return " (dispatch " + dispatchID + ")"
}

// listenersEqual implements the value-equality match used by
// unregistration: Equaler when implemented, == for comparable types,
// deep equality otherwise.
func listenersEqual(a, b Listener) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if eq, ok := a.(Equaler); ok {
		return eq.Equals(b)
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
