package eventx

import "sync/atomic"

// Metrics is a point-in-time snapshot of dispatch activity.
type Metrics struct {
	EventsDispatched uint64 `json:"events_dispatched"`
	HandlersInvoked  uint64 `json:"handlers_invoked"`
	HandlerErrors    uint64 `json:"handler_errors"`
	HandlerPanics    uint64 `json:"handler_panics"`
}

// dispatchStats carries the live counters behind Metrics. A Manager
// shares one instance with all its dispatchers.
type dispatchStats struct {
	dispatched atomic.Uint64
	invoked    atomic.Uint64
	failed     atomic.Uint64
	panicked   atomic.Uint64
}

func (s *dispatchStats) snapshot() Metrics {
	return Metrics{
		EventsDispatched: s.dispatched.Load(),
		HandlersInvoked:  s.invoked.Load(),
		HandlerErrors:    s.failed.Load(),
		HandlerPanics:    s.panicked.Load(),
	}
}
