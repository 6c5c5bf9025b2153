package apihelp

import (
	"reflect"
	"sort"

	casing "github.com/conduit-lang/apihelp/internal/util/strings"
)

// SeeAlso finds callable members that match a search term but have no
// registered description
type SeeAlso struct {
	resolver *Resolver
}

// NewSeeAlso creates a see-also finder backed by resolver
func NewSeeAlso(resolver *Resolver) *SeeAlso {
	return &SeeAlso{resolver: resolver}
}

// FindUnregistered returns the names of class-level functions of class and,
// when instance is non-nil, methods of instance that match term and are not
// described anywhere in the class hierarchy. The result is sorted.
// Generic members (for example String or Error) are reported like any other.
// An empty term returns nil.
func (s *SeeAlso) FindUnregistered(class reflect.Type, term string, instance any) []string {
	if term == "" {
		return nil
	}

	candidates := make(map[string]bool)
	for _, name := range classMembers(class).names() {
		candidates[name] = true
	}
	for _, name := range instanceMembers(instance).names() {
		candidates[name] = true
	}

	registered := make(map[string]bool)
	for _, d := range s.resolver.Resolve(class) {
		registered[casing.MemberKey(d.Name)] = true
	}

	names := make([]string, 0, len(candidates))
	for name := range candidates {
		if !Matches(name, term) {
			continue
		}
		if registered[casing.MemberKey(name)] {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
