// Package schemadef declares record types from YAML documents instead of Go
// code. It builds the same schemas the recordkit builder produces, so
// document-declared types construct, validate and render exactly like
// code-declared ones, and both can inherit from each other through a shared
// registry.
//
// # Document Format
//
// A document holds a list of record types. Each type names its fields in
// declaration order; extends pulls in the fields of an earlier type in the
// document or of one already registered:
//
//	types:
//	  - name: Animal
//	    fields:
//	      - name: habitat
//	        label: The habitat
//	        type: string
//	        constraints:
//	          one_of: [air, land, water]
//	      - name: weight
//	        label: The animals weight (kg)
//	        type: float64
//	        constraints:
//	          non_negative: true
//	  - name: Dog
//	    extends: Animal
//	    fields:
//	      - name: bark
//	        label: Sound of bark
//	        type: string
//
// Field types are string, int, int64, float64, bool, time, uuid and any.
// Unknown document keys, unknown type names and misdeclared constraints all
// fail the load; a field without a type fails with the same
// SchemaDeclarationError the builder reports.
//
// # Constraints
//
// Constraints compile to the predicates of the precond package and run as
// field preconditions during construction. The keys accepted depend on the
// field type:
//
//   - int, int64, float64: min, max, positive, non_negative
//   - string: min_len, max_len, non_empty, pattern, one_of
//   - time: not_zero, past, future
//   - uuid: non_nil
//
// Boolean-valued keys (positive, non_empty, not_zero and the like) take
// true to enable the constraint and false to leave the field unconstrained.
//
// # Usage
//
//	reg := recordkit.NewRegistry()
//	schemas, err := schemadef.LoadFile("types.yaml", reg)
//	if err != nil {
//		log.Fatalf("loading record types: %v", err)
//	}
//
//	dog, err := reg.Construct("Dog", map[string]any{
//		"name": "Rex", "habitat": "land", "weight": 50.0, "bark": "Woof",
//	})
//
// Registration is all or nothing: a document that fails to build leaves the
// registry untouched. Pass a nil registry to build schemas without
// registering them.
package schemadef
