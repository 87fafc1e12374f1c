// Package eventx provides a typed, synchronous, in-process event
// dispatch system.
//
// Event types are registered with a Manager before they can be
// dispatched. Listeners declare which events they handle through
// explicit bindings; when a listener instance is registered, its
// bindings are matched against every registered event type and the
// instance is wired into a Dispatcher per matching pair. Matching is by
// exact concrete type: a binding for UserCreated never receives a value
// of any other type, including types that embed or implement it.
//
// Basic usage:
//
//	type UserCreated struct {
//		ID   string
//		Name string
//	}
//
//	type WelcomeMailer struct{ Sent []string }
//
//	func (w *WelcomeMailer) EventBindings() []eventx.Binding {
//		return []eventx.Binding{
//			eventx.Bind("SendWelcome", (*WelcomeMailer).SendWelcome),
//		}
//	}
//
//	func (w *WelcomeMailer) SendWelcome(e UserCreated) error {
//		w.Sent = append(w.Sent, e.ID)
//		return nil
//	}
//
//	m := eventx.NewManager()
//	m.RegisterEvent(eventx.TypeOf[UserCreated]())
//	m.RegisterListener(&WelcomeMailer{})
//
//	if err := m.Dispatch(UserCreated{ID: "user-123", Name: "John Doe"}); err != nil {
//		log.Printf("Error: %v", err)
//	}
//
// Dispatch is fully synchronous: it returns once every matching handler
// on every registered listener has run. A handler that returns an error
// or panics is logged and does not stop delivery to the rest.
//
// A package-level Default manager mirrors the Manager API for programs
// that want one shared registry per process.
package eventx
