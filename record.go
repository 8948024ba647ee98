package recordkit

import "slices"

// Record is an immutable instance of a record type: exactly the declared
// fields, every value type-checked and precondition-checked during
// construction. Records never change after New returns them and are safe to
// share across goroutines.
type Record struct {
	schema *Schema
	values []any // indexed by Field slot
}

// New constructs a record from named field values. The argument-name set
// must equal the type's field set exactly; every value must conform to its
// field's declared type and satisfy the field's precondition. Validation
// completes before any value is committed: on failure the returned record
// is nil and no partially-initialized instance exists.
//
// Failures are deterministic. A set mismatch reports all missing and extra
// names, sorted. Value failures report the first offending field in
// declaration order, with the type check running before the precondition
// for each field.
func (s *Schema) New(values map[string]any) (*Record, error) {
	if err := s.checkArgumentSet(values); err != nil {
		return nil, err
	}

	slots := make([]any, len(s.fields))
	for _, f := range s.fields {
		v := values[f.name]
		if !f.typ.Accepts(v) {
			return nil, NewTypeMismatchError(f.name, f.typ.Name(), typeName(v))
		}
		if f.precond != nil && !f.precond(v) {
			return nil, NewPreconditionError(f.name)
		}
		slots[f.slot] = v
	}

	return &Record{schema: s, values: slots}, nil
}

// MustNew is like New but panics on a validation error.
func (s *Schema) MustNew(values map[string]any) *Record {
	r, err := s.New(values)
	if err != nil {
		panic(err)
	}
	return r
}

func (s *Schema) checkArgumentSet(values map[string]any) error {
	var missing, extra []string
	for _, f := range s.fields {
		if _, ok := values[f.name]; !ok {
			missing = append(missing, f.name)
		}
	}
	for name := range values {
		if _, ok := s.index[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return NewArgumentMismatchError(s.name, missing, extra)
}

// Schema returns the record's type.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Get returns the named field's value.
func (r *Record) Get(name string) (any, error) {
	if r == nil || r.schema == nil {
		return nil, NewUninitializedFieldError(name)
	}
	f, ok := r.schema.Field(name)
	if !ok {
		return nil, NewUnknownFieldError(name, r.schema.name)
	}
	return f.Get(r)
}

// Set refuses every write: fields are read-only once the record exists.
// Declared names fail with ReadOnlyFieldError, undeclared names with
// UnknownFieldError.
func (r *Record) Set(name string, value any) error {
	if r == nil || r.schema == nil {
		return NewUninitializedFieldError(name)
	}
	f, ok := r.schema.Field(name)
	if !ok {
		return NewUnknownFieldError(name, r.schema.name)
	}
	return f.Set(r, value)
}

// Values returns a fresh name-to-value map of all fields. Mutating the
// returned map does not affect the record.
func (r *Record) Values() map[string]any {
	if r == nil || r.schema == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(r.schema.fields))
	for _, f := range r.schema.fields {
		if f.slot < len(r.values) {
			out[f.name] = r.values[f.slot]
		}
	}
	return out
}

// Get returns the named field of r as a T. It fails with the record's own
// lookup errors, or with TypeMismatchError when the stored value is not a T.
func Get[T any](r *Record, name string) (T, error) {
	var zero T
	v, err := r.Get(name)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		if v == nil && TypeOf[T]().Accepts(nil) {
			return zero, nil
		}
		return zero, NewTypeMismatchError(name, TypeOf[T]().Name(), typeName(v))
	}
	return tv, nil
}
