package schema

import (
	"errors"
	"fmt"
	"strings"
)

// BelongsTo declares a belongs_to relationship
func (r *ResourceSchema) BelongsTo(field, target string) *ResourceSchema {
	return r.relate(&Relationship{FieldName: field, Type: RelationshipBelongsTo, TargetResource: target})
}

// HasOne declares a has_one relationship
func (r *ResourceSchema) HasOne(field, target string) *ResourceSchema {
	return r.relate(&Relationship{FieldName: field, Type: RelationshipHasOne, TargetResource: target})
}

// HasMany declares a has_many relationship
func (r *ResourceSchema) HasMany(field, target string) *ResourceSchema {
	return r.relate(&Relationship{FieldName: field, Type: RelationshipHasMany, TargetResource: target})
}

// HasManyThrough declares a has_many relationship through a join resource
func (r *ResourceSchema) HasManyThrough(field, target, through string) *ResourceSchema {
	return r.relate(&Relationship{
		FieldName:       field,
		Type:            RelationshipHasManyThrough,
		TargetResource:  target,
		ThroughResource: through,
	})
}

func (r *ResourceSchema) relate(rel *Relationship) *ResourceSchema {
	switch {
	case strings.TrimSpace(rel.FieldName) == "":
		r.errors = append(r.errors, fmt.Errorf("%s: relationship field name is empty", r.Name))
	case rel.TargetResource == "":
		r.errors = append(r.errors, fmt.Errorf("%s.%s: %s relationship has no target", r.Name, rel.FieldName, rel.Type))
	case rel.Type == RelationshipHasManyThrough && rel.ThroughResource == "":
		r.errors = append(r.errors, fmt.Errorf("%s.%s: has_many_through requires a through resource", r.Name, rel.FieldName))
	case r.Relationships[rel.FieldName] != nil:
		r.errors = append(r.errors, fmt.Errorf("%s.%s: relationship declared twice", r.Name, rel.FieldName))
	default:
		r.Relationships[rel.FieldName] = rel
	}
	return r
}

// Arg creates a non-nullable scope argument
func Arg(name string, typ PrimitiveType) *ScopeArgument {
	return &ScopeArgument{Name: name, Type: typ}
}

// Scope declares a named query scope taking args in order
func (r *ResourceSchema) Scope(name string, args ...*ScopeArgument) *ResourceSchema {
	if strings.TrimSpace(name) == "" {
		r.errors = append(r.errors, fmt.Errorf("%s: scope name is empty", r.Name))
		return r
	}
	if r.Scopes[name] != nil {
		r.errors = append(r.errors, fmt.Errorf("%s.%s: scope declared twice", r.Name, name))
		return r
	}

	seen := make(map[string]bool)
	for _, arg := range args {
		if arg == nil || arg.Name == "" {
			r.errors = append(r.errors, fmt.Errorf("%s.%s: scope argument has no name", r.Name, name))
			return r
		}
		if seen[arg.Name] {
			r.errors = append(r.errors, fmt.Errorf("%s.%s: duplicate argument %s", r.Name, name, arg.Name))
			return r
		}
		seen[arg.Name] = true
	}

	r.Scopes[name] = &Scope{Name: name, Arguments: args}
	return r
}

// Validate returns every error recorded while building the schema
func (r *ResourceSchema) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("resource name is empty")
	}
	return errors.Join(r.errors...)
}
