package recordkit

import (
	"slices"
	"sync"
)

// Registry holds built record types by name: the process-wide "declared
// types" state, populated incrementally as types are defined and never torn
// down. All methods are safe for concurrent use; a schema is fully built
// before it can be added, so readers never observe a partial field table.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Add registers a built schema under its type name. Registering a name
// twice fails with SchemaDeclarationError; the first registration stands.
func (r *Registry) Add(s *Schema) error {
	if s == nil {
		return NewSchemaDeclarationError("", "", "cannot register a nil schema")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[s.name]; exists {
		return NewSchemaDeclarationError("", s.name, "record type already registered")
	}
	r.schemas[s.name] = s
	return nil
}

// Schema returns the named record type.
func (r *Registry) Schema(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered record types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// Construct builds an instance of the named record type. An unregistered
// name fails with UnknownTypeError; construction itself follows Schema.New.
func (r *Registry) Construct(typeName string, values map[string]any) (*Record, error) {
	s, ok := r.Schema(typeName)
	if !ok {
		return nil, NewUnknownTypeError(typeName)
	}
	return s.New(values)
}

// defaultRegistry backs the package-level declaration surface.
var defaultRegistry = NewRegistry()

// Register adds a schema to the process-wide default registry.
func Register(s *Schema) error {
	return defaultRegistry.Add(s)
}

// MustRegister adds a schema to the default registry and returns it,
// panicking on a registration conflict. Intended for package-level
// declarations:
//
//	var Person = recordkit.MustRegister(recordkit.Define("Person").
//		Field(recordkit.F[string]("name", "Name of the person.")).
//		MustBuild())
func MustRegister(s *Schema) *Schema {
	if err := Register(s); err != nil {
		panic(err)
	}
	return s
}

// Lookup returns a record type from the default registry.
func Lookup(name string) (*Schema, bool) {
	return defaultRegistry.Schema(name)
}

// Construct builds an instance of a record type held by the default
// registry.
func Construct(typeName string, values map[string]any) (*Record, error) {
	return defaultRegistry.Construct(typeName, values)
}

// RegisteredNames returns the default registry's type names, sorted.
func RegisteredNames() []string {
	return defaultRegistry.Names()
}
