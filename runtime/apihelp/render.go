package apihelp

import (
	"strings"
)

// LineKind classifies a rendered line so presentation layers can style it
// without parsing the text
type LineKind int

const (
	LineNoHelp LineKind = iota
	LineBanner
	LineTitle
	LineBlank
	LineSection
	LineRule
	LineRelation
	LineScope
	LineWarning
	LineMethod
	LineParams
	LineNoParams
	LineSeeAlso
)

// String returns the string representation of the line kind
func (k LineKind) String() string {
	switch k {
	case LineNoHelp:
		return "no_help"
	case LineBanner:
		return "banner"
	case LineTitle:
		return "title"
	case LineBlank:
		return "blank"
	case LineSection:
		return "section"
	case LineRule:
		return "rule"
	case LineRelation:
		return "relation"
	case LineScope:
		return "scope"
	case LineWarning:
		return "warning"
	case LineMethod:
		return "method"
	case LineParams:
		return "params"
	case LineNoParams:
		return "no_params"
	case LineSeeAlso:
		return "see_also"
	default:
		return "unknown"
	}
}

// Line is one line of rendered output
type Line struct {
	Kind LineKind
	Text string
}

const (
	// NoHelpConfigured is the only line rendered for an empty report
	NoHelpConfigured = "No help configured"

	banner = "==============================================="
	rule   = "-----------------"
)

type lineWriter struct {
	lines []Line
}

func (w *lineWriter) add(kind LineKind, text string) {
	w.lines = append(w.lines, Line{Kind: kind, Text: text})
}

func (w *lineWriter) section(title string) {
	w.add(LineBlank, "")
	w.add(LineSection, title)
	w.add(LineRule, rule)
}

// Render turns a report into display lines. Sections appear in the order
// relations, scopes, methods, see also, each only when it has entries.
func Render(r *Report) []Line {
	w := &lineWriter{}

	if r == nil || r.Empty() {
		w.add(LineNoHelp, NoHelpConfigured)
		return w.lines
	}

	w.add(LineBanner, banner)
	w.add(LineTitle, "API Reference for class "+r.Class)
	w.add(LineBanner, banner)

	if r.Participates && len(r.Relations) > 0 {
		w.section("RELATIONS:")
		for _, rel := range r.Relations {
			w.add(LineRelation, "– "+rel.Name)
		}
	}

	if r.Participates && len(r.Scopes) > 0 {
		w.section("SCOPES:")
		for _, scope := range r.Scopes {
			w.add(LineScope, ": "+FormatScope(scope))
		}
	}

	if len(r.Methods) > 0 {
		w.section("METHODS:")
		for _, m := range r.Methods {
			renderMethod(w, r.Class, m)
		}
	}

	if r.Search != "" && len(r.SeeAlso) > 0 {
		w.section("SEE ALSO:")
		for _, name := range r.SeeAlso {
			w.add(LineSeeAlso, name)
		}
	}

	return w.lines
}

func renderMethod(w *lineWriter, class string, m MethodEntry) {
	if !m.Resolved {
		w.add(LineWarning, "Method object not found for method "+m.Name+
			". Query an instance of "+class+" to resolve it")
	}

	var b strings.Builder
	if m.Static {
		b.WriteString("self.")
	}
	b.WriteString(m.Name)
	b.WriteString("(")
	b.WriteString(mockParams(m.Params))
	b.WriteString(")")
	if desc := strings.TrimSuffix(strings.TrimSpace(m.Description), "."); desc != "" {
		b.WriteString(": ")
		b.WriteString(desc)
		b.WriteString(".")
	}
	w.add(LineMethod, b.String())

	if len(m.Params) == 0 {
		w.add(LineNoParams, "Without parameters")
		return
	}
	described := make([]string, len(m.Params))
	for i, p := range m.Params {
		described[i] = p.String()
	}
	w.add(LineParams, "Parameters: "+strings.Join(described, ", "))
}

// mockParams renders a call-site style parameter list
func mockParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.Name != "" {
			parts[i] = p.Name
		} else {
			parts[i] = p.Type
		}
	}
	return strings.Join(parts, ", ")
}

// FormatScope renders a scope as name or name(p1, p2)
func FormatScope(scope ScopeDescriptor) string {
	if len(scope.Parameters) == 0 {
		return scope.Name
	}
	return scope.Name + "(" + strings.Join(scope.Parameters, ", ") + ")"
}

// Lines renders a report as plain text lines
func Lines(r *Report) []string {
	rendered := Render(r)
	result := make([]string, len(rendered))
	for i, line := range rendered {
		result[i] = line.Text
	}
	return result
}
