package eventx

import (
	"reflect"

	"github.com/will181/eventable/emptyx"
)

// Type is the nominal identifier for one category of event or listener.
// It wraps the exact concrete Go type and is used as the registry key;
// two Types are equal only when the underlying types are identical.
type Type struct {
	rt reflect.Type
}

// TypeOf returns the Type for the type parameter T.
func TypeOf[T any]() Type {
	return Type{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeFor returns the Type of a value's dynamic type. Nil values,
// including typed-nil pointers, yield the zero Type.
func TypeFor(v any) Type {
	if emptyx.Nil(v) {
		return Type{}
	}
	return Type{rt: reflect.TypeOf(v)}
}

// IsZero reports whether the Type identifies no type at all.
func (t Type) IsZero() bool {
	return t.rt == nil
}

// String returns the Go name of the underlying type.
func (t Type) String() string {
	if t.rt == nil {
		return "<none>"
	}
	return t.rt.String()
}
