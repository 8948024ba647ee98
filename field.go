package recordkit

// Precondition is an erased predicate over a candidate field value. The
// engine evaluates it only after the value has passed the declared-type
// check, so predicates built through F never see a value of the wrong type.
type Precondition func(any) bool

// FieldSpec declares one field: its name, documentation label, declared
// value type and optional precondition. Specs are created with F or
// NewField and assembled into a schema by a Builder; declaring a spec
// performs no validation on its own.
type FieldSpec struct {
	name    string
	label   string
	typ     Type
	precond Precondition
}

// F declares a typed field. The declared type is taken from the type
// parameter; multiple preconditions are conjoined, all must hold for a
// candidate value to be accepted.
//
//	recordkit.F[int]("age", "Age of the person.", precond.Between(0, 150))
func F[T any](name, label string, preconds ...func(T) bool) FieldSpec {
	spec := FieldSpec{
		name:  name,
		label: label,
		typ:   TypeOf[T](),
	}
	if len(preconds) > 0 {
		spec.precond = func(v any) bool {
			tv, ok := v.(T)
			if !ok {
				if v != nil {
					return false
				}
				// nil passes the type check only for interface-typed
				// fields; hand the predicates the nil interface value.
				var zero T
				tv = zero
			}
			for _, p := range preconds {
				if !p(tv) {
					return false
				}
			}
			return true
		}
	}
	return spec
}

// NewField declares a field dynamically, for callers that assemble schemas
// from data rather than code (schema documents, generated bindings). Unlike
// F it accepts a zero Type, which Build reports as a SchemaDeclarationError.
func NewField(name, label string, typ Type, preconds ...func(any) bool) FieldSpec {
	spec := FieldSpec{
		name:  name,
		label: label,
		typ:   typ,
	}
	if len(preconds) > 0 {
		spec.precond = func(v any) bool {
			for _, p := range preconds {
				if !p(v) {
					return false
				}
			}
			return true
		}
	}
	return spec
}

// Name returns the declared field name.
func (s FieldSpec) Name() string { return s.name }

// Label returns the documentation label.
func (s FieldSpec) Label() string { return s.label }

// Type returns the declared value type.
func (s FieldSpec) Type() Type { return s.typ }

// Field is a built field descriptor inside a schema: the declaration plus
// the slot position addressing the field's value in per-instance storage.
// The descriptor itself is type-level metadata shared by all instances and
// never stores values. Fields are created by Build and immutable afterward.
type Field struct {
	name    string
	label   string
	typ     Type
	precond Precondition
	slot    int
}

// Name returns the field name used as the construction argument key.
func (f Field) Name() string { return f.name }

// Label returns the documentation label rendered above the field value.
func (f Field) Label() string { return f.label }

// Type returns the declared value type.
func (f Field) Type() Type { return f.typ }

// HasPrecondition reports whether the field carries a precondition.
func (f Field) HasPrecondition() bool { return f.precond != nil }

// Get returns the value stored for this field on r. It fails with
// UnknownFieldError when r was built from a schema that does not carry this
// exact declaration, and with UninitializedFieldError when r never went
// through construction (the zero Record).
func (f Field) Get(r *Record) (any, error) {
	if r == nil || r.schema == nil {
		return nil, NewUninitializedFieldError(f.name)
	}
	if f.slot >= len(r.schema.fields) || r.schema.fields[f.slot].name != f.name {
		return nil, NewUnknownFieldError(f.name, r.schema.name)
	}
	if f.slot >= len(r.values) {
		return nil, NewUninitializedFieldError(f.name)
	}
	return r.values[f.slot], nil
}

// Set always fails with ReadOnlyFieldError: values are committed once,
// during construction, and locked for the lifetime of the record. The lock
// is unconditional and applies to internal callers too.
func (f Field) Set(*Record, any) error {
	return NewReadOnlyFieldError(f.name)
}
