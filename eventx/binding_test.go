package eventx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/will181/eventable/eventx"
)

func TestBind_CapturesNameAndEventType(t *testing.T) {
	b := eventx.Bind("RecordCreated", (*auditLog).RecordCreated)

	assert.Equal(t, "RecordCreated", b.Name())
	assert.Equal(t, eventx.TypeOf[orderCreated](), b.EventType())
}

func TestCanHandle_ExactTypeOnly(t *testing.T) {
	b := eventx.Bind("RecordCreated", (*auditLog).RecordCreated)

	assert.True(t, eventx.CanHandle(b, eventx.TypeOf[orderCreated]()))

	// Structurally identical but nominally distinct types never match.
	assert.False(t, eventx.CanHandle(b, eventx.TypeOf[paymentFailed]()))
	assert.False(t, eventx.CanHandle(b, eventx.TypeOf[orderShipped]()))
	assert.False(t, eventx.CanHandle(b, eventx.TypeOf[*orderCreated]()))

	// Zero values on either side never match.
	assert.False(t, eventx.CanHandle(b, eventx.Type{}))
	assert.False(t, eventx.CanHandle(eventx.Binding{}, eventx.TypeOf[orderCreated]()))
}

func TestTypeOf_And_TypeFor(t *testing.T) {
	assert.Equal(t, eventx.TypeOf[orderCreated](), eventx.TypeFor(orderCreated{ID: "o-1"}))
	assert.NotEqual(t, eventx.TypeOf[orderCreated](), eventx.TypeOf[*orderCreated]())

	assert.True(t, eventx.TypeFor(nil).IsZero())

	var typedNil *auditLog
	assert.True(t, eventx.TypeFor(typedNil).IsZero())

	assert.Equal(t, "eventx_test.orderCreated", eventx.TypeOf[orderCreated]().String())
	assert.Equal(t, "<none>", eventx.Type{}.String())
}
