package eventx

import (
	"sync"

	"github.com/google/uuid"

	"github.com/will181/eventable/emptyx"
	"github.com/will181/eventable/logx"
)

// Manager is the registry mediating all registration and dispatch. It
// maps each registered event type to the dispatchers for every listener
// type with at least one matching handler. Dispatch is synchronous: the
// call returns once every matching handler on every registered listener
// has run or failed and been reported.
type Manager struct {
	mu       sync.RWMutex
	registry map[Type]map[Type]*Dispatcher
	bindings map[Type][]Binding
	stats    dispatchStats
	log      *logx.Logger
}

// NewManager creates an empty registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		registry: make(map[Type]map[Type]*Dispatcher),
		bindings: make(map[Type][]Binding),
		log:      logx.GetLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterEvent makes an event type dispatchable. Registering an
// already registered type is a no-op. Register event types early:
// listeners registered beforehand will not receive the new type unless
// re-registered.
func (m *Manager) RegisterEvent(t Type) error {
	if t.IsZero() {
		return eventErrors.New(ErrNilEventType)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.registry[t]; ok {
		return nil
	}

	m.registry[t] = make(map[Type]*Dispatcher)
	m.log.Debug("registered event type %s", t)
	return nil
}

// UnregisterEvent removes an event type and all its dispatcher state.
// Listeners must re-register to receive the type if it is re-added.
// Unknown or zero types are a silent no-op.
func (m *Manager) UnregisterEvent(t Type) {
	if t.IsZero() {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.registry[t]; !ok {
		return
	}

	delete(m.registry, t)
	m.log.Debug("unregistered event type %s", t)
}

// IsEventRegistered reports whether the event type is currently
// registered.
func (m *Manager) IsEventRegistered(t Type) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.registry[t]
	return ok
}

// EventTypes returns the currently registered event types, in no
// particular order.
func (m *Manager) EventTypes() []Type {
	m.mu.RLock()
	defer m.mu.RUnlock()

	types := make([]Type, 0, len(m.registry))
	for t := range m.registry {
		types = append(types, t)
	}
	return types
}

// RegisterListener wires a listener instance into every registered
// event type its bindings can handle. Event types with no matching
// binding are skipped silently; a listener declaring no relevant
// handler registers nowhere and receives nothing. The binding set is
// read once per listener type and reused for later instances.
func (m *Manager) RegisterListener(l Listener) error {
	if emptyx.Nil(l) {
		return eventErrors.New(ErrNilListener)
	}

	lt := TypeFor(l)

	m.mu.Lock()
	defer m.mu.Unlock()

	declared := m.listenerBindings(lt, l)

	for et, dispatchers := range m.registry {
		if d, ok := dispatchers[lt]; ok {
			if err := d.RegisterListener(l); err != nil {
				return err
			}
			continue
		}

		matched := filterBindings(declared, et)
		if len(matched) == 0 {
			continue
		}

		d := newDispatcher(et, lt, matched, m.log, &m.stats)
		if err := d.RegisterListener(l); err != nil {
			return err
		}
		dispatchers[lt] = d
		m.log.Debug("listener type %s handles %s with %d handler(s)", lt, et, d.CountHandlers())
	}
	return nil
}

// UnregisterListener removes the instance from every dispatcher
// currently holding its type, matched by value equality. Unknown
// instances are a silent no-op.
func (m *Manager) UnregisterListener(l Listener) {
	lt := TypeFor(l)
	if lt.IsZero() {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, dispatchers := range m.registry {
		if d, ok := dispatchers[lt]; ok {
			d.UnregisterListener(l)
		}
	}
}

// Dispatch fans the event out to every dispatcher registered under its
// dynamic type. Order across listener types is unspecified; order
// across instances within one listener type is registration order.
// Handler failures are reported and suppressed; only a nil event or an
// unregistered event type is an error, and then no handler runs.
func (m *Manager) Dispatch(e Event) error {
	if emptyx.Nil(e) {
		return eventErrors.New(ErrNilEvent)
	}

	et := TypeFor(e)

	m.mu.RLock()
	dispatchers, ok := m.registry[et]
	targets := make([]*Dispatcher, 0, len(dispatchers))
	for _, d := range dispatchers {
		targets = append(targets, d)
	}
	m.mu.RUnlock()

	if !ok {
		return eventErrors.New(ErrEventNotRegistered).
			WithDetail("event_type", et.String())
	}

	m.stats.dispatched.Add(1)

	dispatchID := uuid.NewString()
	m.log.Debug("dispatch %s: %s to %d listener type(s)", dispatchID, et, len(targets))

	for _, d := range targets {
		if err := d.dispatch(dispatchID, e); err != nil {
			return err
		}
	}
	return nil
}

// DispatchBatch dispatches events in order, stopping at the first
// invalid one.
func (m *Manager) DispatchBatch(events []Event) error {
	for _, e := range events {
		if err := m.Dispatch(e); err != nil {
			return err
		}
	}
	return nil
}

// Metrics returns a snapshot of dispatch activity.
func (m *Manager) Metrics() Metrics {
	return m.stats.snapshot()
}

// listenerBindings returns the cached binding set for a listener type,
// reading it from the first instance seen. Callers must hold m.mu.
func (m *Manager) listenerBindings(lt Type, l Listener) []Binding {
	if b, ok := m.bindings[lt]; ok {
		return b
	}
	b := l.EventBindings()
	m.bindings[lt] = b
	return b
}
