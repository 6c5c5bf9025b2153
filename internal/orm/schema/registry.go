package schema

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

// Registry maps model types to their resource schemas. It implements
// apihelp.RelationalProvider so registered models gain relation and scope
// listings in their help output.
type Registry struct {
	schemas map[reflect.Type]*ResourceSchema
	mu      sync.RWMutex
}

var _ apihelp.RelationalProvider = (*Registry)(nil)

// NewRegistry creates a new schema registry
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[reflect.Type]*ResourceSchema),
	}
}

// Register binds a resource schema to the model type of class (a
// reflect.Type, value or pointer)
func (r *Registry) Register(class any, schema *ResourceSchema) error {
	t := apihelp.ClassOfValue(class)
	if t == nil || t.Name() == "" {
		return fmt.Errorf("cannot register schema for unnamed type %v", t)
	}
	if schema == nil {
		return fmt.Errorf("schema for %s is nil", t)
	}
	if err := schema.Validate(); err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", schema.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[t]; exists {
		return fmt.Errorf("resource %s is already registered", t)
	}
	r.schemas[t] = schema
	return nil
}

// Get retrieves the schema of a model type
func (r *Registry) Get(class reflect.Type) (*ResourceSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[apihelp.ClassOfValue(class)]
	return schema, exists
}

// Participates reports whether class has a registered schema
func (r *Registry) Participates(class reflect.Type) bool {
	_, ok := r.Get(class)
	return ok
}

// Relations lists the relationships of class, sorted by field name
func (r *Registry) Relations(class reflect.Type) []apihelp.RelationDescriptor {
	schema, ok := r.Get(class)
	if !ok {
		return nil
	}

	result := make([]apihelp.RelationDescriptor, 0, len(schema.Relationships))
	for _, name := range schema.RelationshipNames() {
		rel := schema.Relationships[name]
		result = append(result, apihelp.RelationDescriptor{
			Name:   rel.FieldName,
			Kind:   rel.Type.String(),
			Target: rel.TargetResource,
		})
	}
	return result
}

// Scopes lists the scopes declared on class itself, sorted by name
func (r *Registry) Scopes(class reflect.Type) []apihelp.ScopeDescriptor {
	schema, ok := r.Get(class)
	if !ok {
		return nil
	}

	result := make([]apihelp.ScopeDescriptor, 0, len(schema.Scopes))
	for _, name := range schema.ScopeNames() {
		result = append(result, apihelp.ScopeDescriptor{
			Name:       name,
			Parameters: schema.Scopes[name].ArgumentNames(),
		})
	}
	return result
}

// Classes returns every model type with a schema, sorted by qualified name
func (r *Registry) Classes() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes := make([]reflect.Type, 0, len(r.schemas))
	for class := range r.schemas {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].String() < classes[j].String()
	})
	return classes
}
