package eventx

// Event marks a value that can be dispatched through a Manager. Any
// concrete type may serve as an event; its dynamic type is the registry
// key. Events are treated as immutable: handlers receive the value the
// caller dispatched and must not retain or modify it.
type Event any

// Listener is implemented by any type whose methods should receive
// events. EventBindings declares those methods; it is a property of the
// listener type, is read once per type, and must not vary between
// instances.
type Listener interface {
	EventBindings() []Binding
}

// Equaler lets a listener type customize the match used when
// unregistering. Without it, comparable listeners are matched with ==
// (identity for pointers) and everything else by deep equality.
type Equaler interface {
	Equals(other Listener) bool
}

// Binding couples one event type with one handler method on a listener
// type. Bindings are created with Bind and filtered per event type when
// a listener registers; a binding whose event type matches no
// registered event is simply never invoked.
type Binding struct {
	name   string
	event  Type
	invoke func(l Listener, e Event) error
}

// Bind declares that fn handles events of the exact type E on listeners
// of the concrete type L. Method expressions read naturally here:
//
//	eventx.Bind("SendWelcome", (*WelcomeMailer).SendWelcome)
//
// The one-parameter, exact-event-type contract is enforced by the
// signature: fn receives exactly one E, and a dispatched value of any
// other dynamic type never reaches it.
func Bind[L Listener, E any](name string, fn func(L, E) error) Binding {
	return Binding{
		name:  name,
		event: TypeOf[E](),
		invoke: func(l Listener, e Event) error {
			listener, ok := l.(L)
			if !ok {
				return eventErrors.New(ErrListenerTypeMismatch).
					WithDetail("handler", name).
					WithDetail("expected_type", TypeOf[L]().String()).
					WithDetail("actual_type", TypeFor(l).String())
			}
			event, ok := e.(E)
			if !ok {
				return eventErrors.New(ErrEventTypeMismatch).
					WithDetail("handler", name).
					WithDetail("expected_type", TypeOf[E]().String()).
					WithDetail("actual_type", TypeFor(e).String())
			}
			return fn(listener, event)
		},
	}
}

// Name returns the handler name given to Bind.
func (b Binding) Name() string {
	return b.name
}

// EventType returns the exact event type the binding handles.
func (b Binding) EventType() Type {
	return b.event
}

// CanHandle reports whether a binding can receive events of type t. The
// binding must carry an invoke function and declare exactly t as its
// event type; supertypes and subtypes never match.
func CanHandle(b Binding, t Type) bool {
	return b.invoke != nil && !t.IsZero() && b.event == t
}

// filterBindings returns the bindings able to handle the given event
// type, preserving declaration order.
func filterBindings(bindings []Binding, t Type) []Binding {
	var matched []Binding
	for _, b := range bindings {
		if CanHandle(b, t) {
			matched = append(matched, b)
		}
	}
	return matched
}
