package eventx

import "github.com/will181/eventable/errx"

// Error registry for eventx
var (
	eventErrors = errx.NewRegistry("EVENT")

	// Invalid arguments
	ErrNilEventType         = eventErrors.Register("NIL_EVENT_TYPE", errx.TypeBadRequest, "Event type is missing")
	ErrNilEvent             = eventErrors.Register("NIL_EVENT", errx.TypeBadRequest, "Event is nil")
	ErrNilListener          = eventErrors.Register("NIL_LISTENER", errx.TypeBadRequest, "Listener is nil")
	ErrEventNotRegistered   = eventErrors.Register("NOT_REGISTERED", errx.TypeBadRequest, "Event type has not been registered")
	ErrEventTypeMismatch    = eventErrors.Register("EVENT_TYPE_MISMATCH", errx.TypeBadRequest, "Event type does not match this dispatcher")
	ErrListenerTypeMismatch = eventErrors.Register("LISTENER_TYPE_MISMATCH", errx.TypeBadRequest, "Listener type does not match this dispatcher")
)

// Helper functions
func IsEventNotRegistered(err error) bool {
	return errx.IsCode(err, ErrEventNotRegistered)
}

func IsNilArgument(err error) bool {
	return errx.IsCode(err, ErrNilEvent) ||
		errx.IsCode(err, ErrNilListener) ||
		errx.IsCode(err, ErrNilEventType)
}

func IsTypeMismatch(err error) bool {
	return errx.IsCode(err, ErrEventTypeMismatch) ||
		errx.IsCode(err, ErrListenerTypeMismatch)
}
