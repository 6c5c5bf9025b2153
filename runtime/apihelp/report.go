package apihelp

import (
	"reflect"
	"sort"
)

// MethodEntry is one described method as it appears in a report
type MethodEntry struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Owner       string  `json:"owner"`
	Static      bool    `json:"static"`
	Resolved    bool    `json:"resolved"`
	Params      []Param `json:"params"`

	Descriptor MethodDescriptor `json:"-"`
}

// Report is the structured result of a help query, before presentation
type Report struct {
	Class        string               `json:"class"`
	Search       string               `json:"search,omitempty"`
	Participates bool                 `json:"participates"`
	Relations    []RelationDescriptor `json:"relations"`
	Scopes       []ScopeDescriptor    `json:"scopes"`
	Methods      []MethodEntry        `json:"methods"`
	SeeAlso      []string             `json:"see_also"`
}

// Empty reports whether there is nothing to show besides suggestions
func (r *Report) Empty() bool {
	return len(r.Methods) == 0 && len(r.Relations) == 0 && len(r.Scopes) == 0
}

// buildReport computes the filtered, sorted content of a help listing
func (h *Help) buildReport(class reflect.Type, term string, instance any) *Report {
	report := &Report{
		Class:     ClassName(class),
		Search:    term,
		Relations: []RelationDescriptor{},
		Scopes:    []ScopeDescriptor{},
		Methods:   []MethodEntry{},
		SeeAlso:   []string{},
	}
	if class == nil {
		return report
	}

	if h.relational.Participates(class) {
		report.Participates = true

		report.Relations = filterBy(h.relational.Relations(class), term,
			func(r RelationDescriptor) string { return r.Name })
		sort.SliceStable(report.Relations, func(i, j int) bool {
			return report.Relations[i].Name < report.Relations[j].Name
		})

		report.Scopes = filterBy(h.relational.Scopes(class), term,
			func(s ScopeDescriptor) string { return s.Name })
		sort.SliceStable(report.Scopes, func(i, j int) bool {
			return report.Scopes[i].Name < report.Scopes[j].Name
		})
	}

	descriptors := filterBy(h.resolver.Resolve(class), term,
		func(d MethodDescriptor) string { return d.Name })
	sort.SliceStable(descriptors, func(i, j int) bool {
		return descriptors[i].Name < descriptors[j].Name
	})

	statics := classMembers(class)
	instanceLevel := instanceMembers(instance)

	for _, d := range descriptors {
		entry := MethodEntry{
			Name:        d.Name,
			Description: d.Description,
			Owner:       ClassName(d.Owner),
			Params:      []Param{},
			Descriptor:  d,
		}

		fn, ok := statics.lookup(d.Name)
		if ok {
			entry.Static = true
		} else if instance != nil {
			fn, ok = instanceLevel.lookup(d.Name)
		}
		if ok {
			entry.Resolved = true
			entry.Params = signature(fn.typ, d.Params)
		}

		report.Methods = append(report.Methods, entry)
	}

	if term != "" {
		report.SeeAlso = h.seeAlso.FindUnregistered(class, term, instance)
	}

	return report
}
