package apihelp

import (
	"reflect"
)

// Ancestors returns the types embedded in class, breadth-first by embedding
// depth and in field order within one depth. Embedded pointers are followed
// and embedded interfaces are included. Each type appears once.
func Ancestors(class reflect.Type) []reflect.Type {
	class = normalize(class)
	if class == nil {
		return nil
	}

	seen := map[reflect.Type]bool{class: true}
	var result []reflect.Type

	level := []reflect.Type{class}
	for len(level) > 0 {
		var next []reflect.Type
		for _, t := range level {
			if t.Kind() != reflect.Struct {
				continue
			}
			for i := 0; i < t.NumField(); i++ {
				field := t.Field(i)
				if !field.Anonymous {
					continue
				}
				embedded := normalize(field.Type)
				if seen[embedded] {
					continue
				}
				seen[embedded] = true
				result = append(result, embedded)
				next = append(next, embedded)
			}
		}
		level = next
	}

	return result
}

// Chain returns class followed by its ancestors
func Chain(class reflect.Type) []reflect.Type {
	class = normalize(class)
	if class == nil {
		return nil
	}
	return append([]reflect.Type{class}, Ancestors(class)...)
}

// Resolver merges registered descriptors across a class hierarchy
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver reading from registry
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve returns the descriptors of class and all of its ancestors,
// most-derived first. Identical descriptors collapse to their first
// occurrence; descriptors that differ only in description are all kept.
func (r *Resolver) Resolve(class reflect.Type) []MethodDescriptor {
	seen := make(map[descriptorKey]bool)
	result := make([]MethodDescriptor, 0)

	for _, t := range Chain(class) {
		for _, d := range r.registry.Lookup(t) {
			k := d.key()
			if seen[k] {
				continue
			}
			seen[k] = true
			result = append(result, d)
		}
	}

	return result
}
