package eventx

// Default is the process-wide Manager used by the package-level
// functions. Programs that want an injected registry can construct
// their own with NewManager; the Default preserves the common
// one-registry-per-process usage.
var Default = NewManager()

// RegisterEvent registers an event type with the Default manager.
func RegisterEvent(t Type) error {
	return Default.RegisterEvent(t)
}

// UnregisterEvent removes an event type from the Default manager.
func UnregisterEvent(t Type) {
	Default.UnregisterEvent(t)
}

// IsEventRegistered reports whether the Default manager knows the type.
func IsEventRegistered(t Type) bool {
	return Default.IsEventRegistered(t)
}

// RegisterListener registers a listener with the Default manager.
func RegisterListener(l Listener) error {
	return Default.RegisterListener(l)
}

// UnregisterListener removes a listener from the Default manager.
func UnregisterListener(l Listener) {
	Default.UnregisterListener(l)
}

// Dispatch dispatches an event through the Default manager.
func Dispatch(e Event) error {
	return Default.Dispatch(e)
}

// DispatchBatch dispatches events in order through the Default manager.
func DispatchBatch(events []Event) error {
	return Default.DispatchBatch(events)
}
