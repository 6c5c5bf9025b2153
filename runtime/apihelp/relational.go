package apihelp

import (
	"reflect"
)

// RelationDescriptor is an association declared by the relational-mapping layer
type RelationDescriptor struct {
	Name   string `json:"name"`
	Kind   string `json:"kind,omitempty"`
	Target string `json:"target,omitempty"`
}

// ScopeDescriptor is a named, parameterised query fragment
type ScopeDescriptor struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
}

// RelationalParticipant is implemented by types that take part in a
// relational-mapping layer. Both methods are called on a zero value.
type RelationalParticipant interface {
	HelpRelations() []RelationDescriptor
	HelpScopes() []ScopeDescriptor
}

// RelationalProvider answers relational questions about classes.
// Scopes returns only the scopes declared at the given level; the adapter
// merges levels.
type RelationalProvider interface {
	Participates(class reflect.Type) bool
	Relations(class reflect.Type) []RelationDescriptor
	Scopes(class reflect.Type) []ScopeDescriptor
}

// InterfaceProvider recognises classes implementing RelationalParticipant
type InterfaceProvider struct{}

func (InterfaceProvider) participant(class reflect.Type) (RelationalParticipant, bool) {
	class = normalize(class)
	if class == nil || class.Kind() == reflect.Interface {
		return nil, false
	}
	p, ok := reflect.New(class).Interface().(RelationalParticipant)
	return p, ok
}

// Participates reports whether class implements RelationalParticipant
func (ip InterfaceProvider) Participates(class reflect.Type) bool {
	_, ok := ip.participant(class)
	return ok
}

// Relations returns the relations declared by class
func (ip InterfaceProvider) Relations(class reflect.Type) (relations []RelationDescriptor) {
	p, ok := ip.participant(class)
	if !ok {
		return nil
	}
	defer func() {
		if recover() != nil {
			relations = nil
		}
	}()
	return p.HelpRelations()
}

// Scopes returns the scopes declared by class
func (ip InterfaceProvider) Scopes(class reflect.Type) (scopes []ScopeDescriptor) {
	p, ok := ip.participant(class)
	if !ok {
		return nil
	}
	defer func() {
		if recover() != nil {
			scopes = nil
		}
	}()
	return p.HelpScopes()
}

// ProviderChain asks each provider in turn; the first one that recognises a
// class answers for it
type ProviderChain []RelationalProvider

func (c ProviderChain) find(class reflect.Type) RelationalProvider {
	for _, p := range c {
		if p != nil && p.Participates(class) {
			return p
		}
	}
	return nil
}

// Participates reports whether any provider recognises class
func (c ProviderChain) Participates(class reflect.Type) bool {
	return c.find(class) != nil
}

// Relations returns the relations from the first recognising provider
func (c ProviderChain) Relations(class reflect.Type) []RelationDescriptor {
	if p := c.find(class); p != nil {
		return p.Relations(class)
	}
	return nil
}

// Scopes returns the scopes from the first recognising provider
func (c ProviderChain) Scopes(class reflect.Type) []ScopeDescriptor {
	if p := c.find(class); p != nil {
		return p.Scopes(class)
	}
	return nil
}

// RelationalAdapter reads relations and scopes for a class through a
// provider. Classes the provider does not recognise yield empty results.
type RelationalAdapter struct {
	provider RelationalProvider
}

// NewRelationalAdapter creates an adapter; a nil provider means
// InterfaceProvider
func NewRelationalAdapter(provider RelationalProvider) *RelationalAdapter {
	if provider == nil {
		provider = InterfaceProvider{}
	}
	return &RelationalAdapter{provider: provider}
}

// Participates reports whether class takes part in the relational layer
func (a *RelationalAdapter) Participates(class reflect.Type) bool {
	class = normalize(class)
	return class != nil && a.provider.Participates(class)
}

// Relations returns the relations of class
func (a *RelationalAdapter) Relations(class reflect.Type) []RelationDescriptor {
	if !a.Participates(class) {
		return []RelationDescriptor{}
	}
	relations := a.provider.Relations(normalize(class))
	result := make([]RelationDescriptor, len(relations))
	copy(result, relations)
	return result
}

// Scopes returns the scopes of class merged with those of its ancestors.
// The most-derived declaration of a scope name wins.
func (a *RelationalAdapter) Scopes(class reflect.Type) []ScopeDescriptor {
	if !a.Participates(class) {
		return []ScopeDescriptor{}
	}

	seen := make(map[string]bool)
	result := make([]ScopeDescriptor, 0)
	for _, level := range Chain(class) {
		if !a.provider.Participates(level) {
			continue
		}
		for _, scope := range a.provider.Scopes(level) {
			if seen[scope.Name] {
				continue
			}
			seen[scope.Name] = true
			result = append(result, ScopeDescriptor{
				Name:       scope.Name,
				Parameters: append([]string{}, scope.Parameters...),
			})
		}
	}
	return result
}

// Classes lists the classes known to the providers that can enumerate them
func (c ProviderChain) Classes() []reflect.Type {
	var classes []reflect.Type
	for _, p := range c {
		if lister, ok := p.(ClassLister); ok {
			classes = append(classes, lister.Classes()...)
		}
	}
	return classes
}
