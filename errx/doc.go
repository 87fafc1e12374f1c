/*
Package errx provides an extended error handling system for Go applications.
It supports structured errors with types, codes, details, and error wrapping,
and integrates with the standard errors package.

# Basic Usage

Create simple errors with the New function:

	err := errx.New("listener not found", errx.TypeNotFound)

	// Check error type
	if errx.IsType(err, errx.TypeNotFound) {
		// Handle not found case
	}

# Error Registry

For domain-specific errors, create a registry with prefixed error codes:

	// Create a registry for dispatch-related errors
	dispatchErrors := errx.NewRegistry("DISPATCH")

	// Register common errors
	ErrNotRegistered := dispatchErrors.Register("NOT_REGISTERED", errx.TypeNotFound, "Event type not registered")
	ErrNilListener := dispatchErrors.Register("NIL_LISTENER", errx.TypeBadRequest, "Listener is nil")

	// Create instances of registered errors
	err := dispatchErrors.New(ErrNotRegistered)

	// Create with custom message
	err := dispatchErrors.NewWithMessage(ErrNotRegistered, "UserCreated was never registered")

# Adding Details

Provide additional context with details:

	err := dispatchErrors.New(ErrNotRegistered).
		WithDetail("event_type", "UserCreated").
		WithDetail("dispatch_id", dispatchID)

	// Or with a map
	err := dispatchErrors.New(ErrNilListener).
		WithDetails(map[string]any{
			"listener_type": "AuditLog",
			"reason":        "typed_nil",
		})

# Error Wrapping

Wrap standard errors to add context while preserving the original cause:

	err := errx.Wrap(handlerErr, "Handler invocation failed", errx.TypeInternal)

	// Or when using a registry
	err := dispatchErrors.NewWithCause(ErrNotRegistered, originalErr)

# Error Checking

Check for specific error conditions:

	if errx.IsCode(err, ErrNotRegistered) {
		// Handle specific error code
	}

	if errx.IsType(err, errx.TypeBadRequest) {
		// Handle invalid arguments
	}
*/
package errx
