// Package recordkit is a declarative record-validation engine: it lets you
// define immutable, labeled, type- and constraint-checked data records
// without hand-writing constructor and validation boilerplate for every
// record type.
//
// A record type is declared as an ordered list of fields, each carrying a
// name, a documentation label, a declared value type and an optional
// precondition predicate. From that declaration the engine synthesizes a
// constructor that accepts exactly the declared fields as named values,
// validates each one, and stores them read-only, plus a label-annotated
// string rendering for any instance. Declarations are inherited: a record
// type that extends another must supply values for the union of its own and
// inherited fields.
//
// # Architecture
//
// Declaration is an explicit build step, not runtime reflection magic. A
// Builder (Define, Extends, Field, Build) walks the ancestor chain once and
// merges the declarations into a Schema, the record type's field table: an
// ordered name -> (descriptor, declared type) mapping with inherited fields
// first. A name redeclared by a subtype replaces the inherited declaration
// and keeps its position. The table is pure metadata; every Record owns its
// own value slots, addressed through descriptor positions.
//
// Construction validates the complete argument set before committing
// anything: the argument names must equal the field set exactly, then each
// value is type-checked and precondition-checked in declaration order. Any
// failure aborts construction with nothing partially initialized. The first
// offending field in declaration order is the one reported, with the type
// check running before the precondition, so error messages are reproducible.
//
// Rich error types with helper predicates (IsTypeMismatchError,
// IsPreconditionError and friends) let callers differentiate the failure
// modes without string matching.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/recordkit"
//	    "github.com/dmitrymomot/recordkit/pkg/precond"
//	)
//
//	var Person = recordkit.Define("Person").
//	    Field(recordkit.F[string]("name", "Name of the person.")).
//	    Field(recordkit.F[int]("age", "Age of the person.", precond.Between(0, 150))).
//	    Field(recordkit.F[float64]("income", "Monthly income.", precond.NonNegative[float64]())).
//	    MustBuild()
//
//	p, err := Person.New(map[string]any{
//	    "name":   "JAMES",
//	    "age":    34,
//	    "income": 24000.0,
//	})
//	if err != nil {
//	    // one of ArgumentMismatchError, TypeMismatchError, PreconditionError
//	}
//
//	age, _ := recordkit.Get[int](p, "age")
//	fmt.Println(p) // labeled multi-line rendering, stable field order
//
// Inheritance reuses a built schema:
//
//	var Named = recordkit.Define("Named").
//	    Field(recordkit.F[string]("name", "Name of the entity.")).
//	    MustBuild()
//
//	var Animal = recordkit.Define("Animal").
//	    Extends(Named).
//	    Field(recordkit.F[string]("habitat", "Habitat of the animal.", precond.OneOf("air", "land", "water"))).
//	    Field(recordkit.F[float64]("weight", "Weight of the animal.", precond.NonNegative[float64]())).
//	    MustBuild()
//
// # Error Handling
//
// Validation failures are returned, never swallowed or retried; the engine
// has no recovery path of its own. Inspect them with the helper predicates:
//
//	if recordkit.IsPreconditionError(err) { /* ... */ }
//	var tme *recordkit.TypeMismatchError
//	if errors.As(err, &tme) { /* tme.Field, tme.Declared, tme.Actual */ }
//
// errors.Is(err, ErrValidation) matches any construction failure caused by
// the supplied values; errors.Is(err, ErrDeclaration) matches failures in
// the type declaration itself.
//
// # Concurrency
//
// Schemas are immutable once built and safe for concurrent construction.
// Records are read-only after construction and safe to share. The Registry
// guards its type map with a RWMutex, so declaration-time writes and
// runtime lookups can interleave safely.
//
// # Subpackages
//
// pkg/precond supplies reusable typed precondition predicates, pkg/schemadef
// loads record-type declarations from YAML documents, and pkg/i18n renders
// the error taxonomy as localized human-readable messages.
package recordkit
