package recordkit

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Type identifies the declared value type of a field and carries the runtime
// compatibility check applied during construction. The zero Type holds no
// type information and is rejected at schema build time.
type Type struct {
	rt reflect.Type
}

// TypeOf returns the declared type for T. Interface types work too:
// TypeOf[fmt.Stringer]() accepts any value implementing fmt.Stringer.
func TypeOf[T any]() Type {
	return Type{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// Declared types for the common field shapes.
var (
	String  = TypeOf[string]()
	Int     = TypeOf[int]()
	Int64   = TypeOf[int64]()
	Float64 = TypeOf[float64]()
	Bool    = TypeOf[bool]()
	Time    = TypeOf[time.Time]()
	UUID    = TypeOf[uuid.UUID]()

	// Any accepts every value, nil included.
	Any = TypeOf[any]()
)

// IsZero reports whether t carries no type information.
func (t Type) IsZero() bool {
	return t.rt == nil
}

// Name returns the readable type name used in error messages.
func (t Type) Name() string {
	if t.rt == nil {
		return "<untyped>"
	}
	return t.rt.String()
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return t.Name()
}

// Accepts reports whether v conforms to the declared type: assignable to it
// for concrete types, implementing it for interface types. Only the empty
// interface accepts nil.
func (t Type) Accepts(v any) bool {
	if t.rt == nil {
		return false
	}
	if v == nil {
		return t.rt.Kind() == reflect.Interface && t.rt.NumMethod() == 0
	}
	return reflect.TypeOf(v).AssignableTo(t.rt)
}

// typeName names v's dynamic type for error reporting.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
