package errx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will181/eventable/errx"
)

func TestNew(t *testing.T) {
	err := errx.New("listener not found", errx.TypeNotFound)

	assert.Equal(t, errx.Code("NOT_FOUND_ERROR"), err.Code)
	assert.Equal(t, errx.TypeNotFound, err.Type)
	assert.Contains(t, err.Error(), "listener not found")
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
	assert.False(t, errx.IsType(err, errx.TypeInternal))
}

func TestRegistry(t *testing.T) {
	reg := errx.NewRegistry("TEST")
	code := reg.Register("BOOM", errx.TypeInternal, "Something broke")

	assert.Equal(t, errx.Code("TEST_BOOM"), code)

	err := reg.New(code)
	assert.Equal(t, code, err.Code)
	assert.Equal(t, "Something broke", err.Message)
	assert.True(t, errx.IsCode(err, code))

	custom := reg.NewWithMessage(code, "Something else broke")
	assert.Equal(t, "Something else broke", custom.Message)
	assert.True(t, errx.IsCode(custom, code))

	// Instances are copies: mutating one does not touch the definition
	err.WithDetail("attempt", 1)
	fresh := reg.New(code)
	assert.Empty(t, fresh.Details)
}

func TestRegistry_UnknownCode(t *testing.T) {
	reg := errx.NewRegistry("TEST")

	err := reg.New("TEST_NEVER_REGISTERED")
	assert.Equal(t, errx.Code("UNKNOWN_ERROR"), err.Code)
	assert.Equal(t, errx.TypeInternal, err.Type)
}

func TestWithDetails(t *testing.T) {
	err := errx.New("bad input", errx.TypeBadRequest).
		WithDetail("field", "event_type").
		WithDetail("reason", "nil")

	assert.Equal(t, "event_type", err.Details["field"])
	assert.Equal(t, "nil", err.Details["reason"])

	printed := errx.Print(err)
	assert.Contains(t, printed, "BAD_REQUEST")
	assert.Contains(t, printed, "field")
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := errx.Wrap(cause, "handler invocation failed", errx.TypeInternal)

	require.NotNil(t, err)
	assert.Equal(t, "handler invocation failed", err.Message)
	assert.ErrorIs(t, err, cause)

	var xerr *errx.Error
	assert.ErrorAs(t, fmt.Errorf("outer: %w", err), &xerr)
	assert.Equal(t, err.Code, xerr.Code)

	assert.Nil(t, errx.Wrap(nil, "nothing", errx.TypeInternal))
}

func TestNewWithCause(t *testing.T) {
	reg := errx.NewRegistry("TEST")
	code := reg.Register("WRAPPED", errx.TypeSystem, "Wrapped failure")

	cause := errors.New("root cause")
	err := reg.NewWithCause(code, cause)

	assert.True(t, errx.IsCode(err, code))
	assert.ErrorIs(t, err, cause)
}

func TestPrint_NilAndPlain(t *testing.T) {
	assert.Equal(t, "nil", errx.Print(nil))
	assert.Equal(t, "Error: plain", errx.Print(errors.New("plain")))
}
