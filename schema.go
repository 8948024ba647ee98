package recordkit

// Schema is the built field table of one record type: the ordered,
// inheritance-resolved set of field descriptors, keyed by name. A Schema is
// fully built before it is returned and never mutated afterward, so any
// number of goroutines may construct instances from it without locking.
type Schema struct {
	name   string
	base   *Schema
	fields []Field        // ancestor-declared fields first
	index  map[string]int // field name -> slot
}

// Builder accumulates the field declarations of one record type. Obtain one
// with Define, chain Extends and Field calls, and finish with Build or
// MustBuild. Builders are single-use and not safe for concurrent use;
// declaration is a one-time definition step, not a runtime operation.
type Builder struct {
	name  string
	base  *Schema
	specs []FieldSpec
}

// Define starts the declaration of a new record type.
func Define(typeName string) *Builder {
	return &Builder{name: typeName}
}

// Extends declares the record type this one inherits from. All base fields
// are included ahead of the type's own declarations, in the base's order.
func (b *Builder) Extends(base *Schema) *Builder {
	b.base = base
	return b
}

// Field adds one field declaration.
func (b *Builder) Field(spec FieldSpec) *Builder {
	b.specs = append(b.specs, spec)
	return b
}

// Fields adds several field declarations in order.
func (b *Builder) Fields(specs ...FieldSpec) *Builder {
	b.specs = append(b.specs, specs...)
	return b
}

// Build constructs the field table. Inherited fields come first; a name
// redeclared by this type replaces the inherited declaration wholesale
// (label, type and precondition) while keeping its inherited position.
// Declarations are cross-checked here, so a broken schema fails at
// definition time rather than at first construction: an empty type name, an
// empty or duplicate field name within this declaration, and a field
// without a declared type all fail with SchemaDeclarationError.
func (b *Builder) Build() (*Schema, error) {
	if b.name == "" {
		return nil, NewSchemaDeclarationError("", "", "record type name cannot be empty")
	}

	capacity := len(b.specs)
	if b.base != nil {
		capacity += len(b.base.fields)
	}
	fields := make([]Field, 0, capacity)
	index := make(map[string]int, capacity)

	if b.base != nil {
		fields = append(fields, b.base.fields...)
		for i := range fields {
			index[fields[i].name] = i
		}
	}

	seen := make(map[string]struct{}, len(b.specs))
	for _, spec := range b.specs {
		if spec.name == "" {
			return nil, NewSchemaDeclarationError("", b.name, "field name cannot be empty")
		}
		if _, dup := seen[spec.name]; dup {
			return nil, NewSchemaDeclarationError(spec.name, b.name, "field declared twice")
		}
		seen[spec.name] = struct{}{}
		if spec.typ.IsZero() {
			return nil, NewSchemaDeclarationError(spec.name, b.name, "field has no declared type")
		}

		f := Field{
			name:    spec.name,
			label:   spec.label,
			typ:     spec.typ,
			precond: spec.precond,
		}
		if at, ok := index[spec.name]; ok {
			// Most-derived declaration wins, at the inherited position.
			f.slot = at
			fields[at] = f
			continue
		}
		f.slot = len(fields)
		index[spec.name] = f.slot
		fields = append(fields, f)
	}

	return &Schema{
		name:   b.name,
		base:   b.base,
		fields: fields,
		index:  index,
	}, nil
}

// MustBuild is like Build but panics on a declaration error. Intended for
// package-level schema variables, where a broken declaration should stop
// the program immediately.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// Base returns the schema this one extends, or nil.
func (s *Schema) Base() *Schema { return s.base }

// Fields returns a copy of the field table in declaration order, inherited
// fields first.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// FieldNames returns the field names in table order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Field returns the named field descriptor.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Has reports whether the type declares the named field, directly or by
// inheritance.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// NumFields returns the size of the field table.
func (s *Schema) NumFields() int {
	return len(s.fields)
}
