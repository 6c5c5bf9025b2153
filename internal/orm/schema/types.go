// Package schema describes the relational shape of model types: their
// relationships to other resources and their named query scopes.
package schema

import (
	"fmt"
	"sort"

	casing "github.com/conduit-lang/apihelp/internal/util/strings"
)

// PrimitiveType represents the built-in primitive types a scope argument can take
type PrimitiveType int

const (
	TypeString PrimitiveType = iota
	TypeText
	TypeInt
	TypeBigInt
	TypeFloat
	TypeDecimal
	TypeBool
	TypeTimestamp
	TypeDate
	TypeUUID
	TypeEmail
	TypeJSON
)

// String returns the string representation of the primitive type
func (p PrimitiveType) String() string {
	switch p {
	case TypeString:
		return "string"
	case TypeText:
		return "text"
	case TypeInt:
		return "int"
	case TypeBigInt:
		return "bigint"
	case TypeFloat:
		return "float"
	case TypeDecimal:
		return "decimal"
	case TypeBool:
		return "bool"
	case TypeTimestamp:
		return "timestamp"
	case TypeDate:
		return "date"
	case TypeUUID:
		return "uuid"
	case TypeEmail:
		return "email"
	case TypeJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParsePrimitiveType converts a string to a PrimitiveType
func ParsePrimitiveType(s string) (PrimitiveType, error) {
	for p := TypeString; p <= TypeJSON; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown primitive type: %s", s)
}

// RelationType represents the type of relationship
type RelationType int

const (
	RelationshipBelongsTo RelationType = iota
	RelationshipHasMany
	RelationshipHasManyThrough
	RelationshipHasOne
)

// String returns the string representation of the relationship type
func (r RelationType) String() string {
	switch r {
	case RelationshipBelongsTo:
		return "belongs_to"
	case RelationshipHasMany:
		return "has_many"
	case RelationshipHasManyThrough:
		return "has_many_through"
	case RelationshipHasOne:
		return "has_one"
	default:
		return "unknown"
	}
}

// Relationship represents a relationship between resources
type Relationship struct {
	FieldName       string
	Type            RelationType
	TargetResource  string
	ThroughResource string // has_many_through only
}

// ScopeArgument represents an argument to a scope
type ScopeArgument struct {
	Name     string
	Type     PrimitiveType
	Nullable bool
	Default  interface{}
}

// Scope represents a named query scope
type Scope struct {
	Name      string
	Arguments []*ScopeArgument
	OrderBy   string
	Limit     *int
}

// ArgumentNames returns the scope's argument names in declaration order
func (s *Scope) ArgumentNames() []string {
	names := make([]string, len(s.Arguments))
	for i, arg := range s.Arguments {
		names[i] = arg.Name
	}
	return names
}

// ResourceSchema represents the relational schema of one model type
type ResourceSchema struct {
	Name          string
	TableName     string
	Relationships map[string]*Relationship
	Scopes        map[string]*Scope

	errors []error
}

// NewResourceSchema creates a new ResourceSchema
func NewResourceSchema(name string) *ResourceSchema {
	return &ResourceSchema{
		Name:          name,
		TableName:     casing.ToSnakeCase(name) + "s",
		Relationships: make(map[string]*Relationship),
		Scopes:        make(map[string]*Scope),
	}
}

// RelationshipNames returns the relationship field names, sorted
func (r *ResourceSchema) RelationshipNames() []string {
	names := make([]string, 0, len(r.Relationships))
	for name := range r.Relationships {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScopeNames returns the scope names, sorted
func (r *ResourceSchema) ScopeNames() []string {
	names := make([]string, 0, len(r.Scopes))
	for name := range r.Scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
