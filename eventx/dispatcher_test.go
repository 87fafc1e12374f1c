package eventx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will181/eventable/eventx"
)

func newCreatedDispatcher(t *testing.T) *eventx.Dispatcher {
	t.Helper()
	return eventx.NewDispatcher(
		eventx.TypeOf[orderCreated](),
		eventx.TypeOf[*tracker](),
		(&tracker{}).EventBindings(),
	)
}

func TestNewDispatcher_FiltersUnrelatedBindings(t *testing.T) {
	// auditLog declares two orderCreated handlers and one orderShipped
	// handler; only the first two survive construction.
	d := eventx.NewDispatcher(
		eventx.TypeOf[orderCreated](),
		eventx.TypeOf[*auditLog](),
		(&auditLog{}).EventBindings(),
	)
	assert.Equal(t, 2, d.CountHandlers())
	assert.Equal(t, eventx.TypeOf[orderCreated](), d.EventType())
	assert.Equal(t, eventx.TypeOf[*auditLog](), d.ListenerType())

	shipped := eventx.NewDispatcher(
		eventx.TypeOf[orderShipped](),
		eventx.TypeOf[*auditLog](),
		(&auditLog{}).EventBindings(),
	)
	assert.Equal(t, 1, shipped.CountHandlers())
}

func TestDispatcher_RegisterListener_Invalid(t *testing.T) {
	d := newCreatedDispatcher(t)

	err := d.RegisterListener(nil)
	require.Error(t, err)
	assert.True(t, eventx.IsNilArgument(err))

	// Wrong concrete type
	err = d.RegisterListener(&auditLog{})
	require.Error(t, err)
	assert.True(t, eventx.IsTypeMismatch(err))
	assert.Equal(t, 0, d.CountListeners())
}

func TestDispatcher_Dispatch_Invalid(t *testing.T) {
	d := newCreatedDispatcher(t)

	err := d.Dispatch(nil)
	require.Error(t, err)
	assert.True(t, eventx.IsNilArgument(err))

	err = d.Dispatch(orderShipped{ID: "o-1"})
	require.Error(t, err)
	assert.True(t, eventx.IsTypeMismatch(err))
}

func TestDispatcher_DuplicateInstances(t *testing.T) {
	d := newCreatedDispatcher(t)

	var journal []string
	instance := &tracker{tag: "dup", journal: &journal}

	// The same instance may be registered twice; it is then invoked
	// once per registration.
	require.NoError(t, d.RegisterListener(instance))
	require.NoError(t, d.RegisterListener(instance))
	assert.Equal(t, 2, d.CountListeners())

	require.NoError(t, d.Dispatch(orderCreated{ID: "o-1"}))
	assert.Equal(t, []string{"dup", "dup"}, journal)

	// Unregistration removes one registration at a time.
	d.UnregisterListener(instance)
	assert.Equal(t, 1, d.CountListeners())

	journal = nil
	require.NoError(t, d.Dispatch(orderCreated{ID: "o-2"}))
	assert.Equal(t, []string{"dup"}, journal)
}

// badge is a comparable value listener: two distinct values with the
// same fields are equal under ==.
type badge struct {
	owner string
	hits  *int
}

func (b badge) EventBindings() []eventx.Binding {
	return []eventx.Binding{
		eventx.Bind("Count", badge.Count),
	}
}

func (b badge) Count(e orderCreated) error {
	*b.hits++
	return nil
}

func TestDispatcher_UnregisterByValueEquality(t *testing.T) {
	d := eventx.NewDispatcher(
		eventx.TypeOf[orderCreated](),
		eventx.TypeOf[badge](),
		badge{}.EventBindings(),
	)

	var hits int
	registered := badge{owner: "ana", hits: &hits}
	require.NoError(t, d.RegisterListener(registered))

	// A separately constructed but equal value matches the registered
	// instance.
	d.UnregisterListener(badge{owner: "ana", hits: &hits})
	assert.Equal(t, 0, d.CountListeners())

	require.NoError(t, d.RegisterListener(registered))
	d.UnregisterListener(badge{owner: "bob", hits: &hits})
	assert.Equal(t, 1, d.CountListeners())
}

// keyed opts into Equaler: instances match on Key alone.
type keyed struct {
	Key   string
	Extra string
}

func (k *keyed) EventBindings() []eventx.Binding {
	return []eventx.Binding{
		eventx.Bind("Note", (*keyed).Note),
	}
}

func (k *keyed) Note(e orderCreated) error {
	return nil
}

func (k *keyed) Equals(other eventx.Listener) bool {
	o, ok := other.(*keyed)
	return ok && o != nil && k.Key == o.Key
}

func TestDispatcher_UnregisterWithEqualer(t *testing.T) {
	d := eventx.NewDispatcher(
		eventx.TypeOf[orderCreated](),
		eventx.TypeOf[*keyed](),
		(&keyed{}).EventBindings(),
	)

	require.NoError(t, d.RegisterListener(&keyed{Key: "a", Extra: "one"}))
	require.NoError(t, d.RegisterListener(&keyed{Key: "b", Extra: "two"}))

	d.UnregisterListener(&keyed{Key: "a", Extra: "entirely different"})
	assert.Equal(t, 1, d.CountListeners())
}
