package apihelp

import (
	"reflect"
	"sort"
	"sync"
)

// MethodDescriptor is a registered description of one method of a class.
// Params optionally names the method's parameters, since reflection only
// exposes their types.
type MethodDescriptor struct {
	Name        string
	Description string
	Owner       reflect.Type
	Params      []string
}

// descriptorKey is the identity used to collapse duplicate descriptors.
// Declared parameter names are presentation only and take no part in it.
type descriptorKey struct {
	name        string
	description string
	owner       reflect.Type
}

func (d MethodDescriptor) key() descriptorKey {
	return descriptorKey{
		name:        d.Name,
		description: d.Description,
		owner:       d.Owner,
	}
}

// Equal reports whether two descriptors describe the same method of the
// same owner with the same text
func (d MethodDescriptor) Equal(other MethodDescriptor) bool {
	return d.key() == other.key()
}

// Registry holds method descriptors keyed by class.
// Entries are append-only: registrations accumulate and are never removed
// except by Reset.
type Registry struct {
	mu      sync.RWMutex
	methods map[reflect.Type][]MethodDescriptor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		methods: make(map[reflect.Type][]MethodDescriptor),
	}
}

// Append adds a descriptor to its owner's sequence
func (r *Registry) Append(d MethodDescriptor) {
	d.Owner = normalize(d.Owner)
	if len(d.Params) > 0 {
		d.Params = append([]string(nil), d.Params...)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[d.Owner] = append(r.methods[d.Owner], d)
}

// Lookup returns the descriptors registered directly on class, in
// registration order. Ancestors are not consulted.
// Returns a copy to prevent external mutation.
func (r *Registry) Lookup(class reflect.Type) []MethodDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.methods[normalize(class)]
	if len(entries) == 0 {
		return []MethodDescriptor{}
	}
	result := make([]MethodDescriptor, len(entries))
	copy(result, entries)
	return result
}

// Classes returns every class with at least one registration, sorted by
// their qualified type name
func (r *Registry) Classes() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes := make([]reflect.Type, 0, len(r.methods))
	for class := range r.methods {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].String() < classes[j].String()
	})
	return classes
}

// Len returns the total number of stored descriptors
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, entries := range r.methods {
		n += len(entries)
	}
	return n
}

// Reset clears the registry (used for testing).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods = make(map[reflect.Type][]MethodDescriptor)
}
