package apihelp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Empty(t *testing.T) {
	lines := Render(&Report{Class: "Widget", SeeAlso: []string{"Frob"}, Search: "f"})

	require.Len(t, lines, 1)
	assert.Equal(t, LineNoHelp, lines[0].Kind)
	assert.Equal(t, NoHelpConfigured, lines[0].Text)

	assert.Equal(t, []string{NoHelpConfigured}, Lines(nil))
}

func TestRender_FullLayout(t *testing.T) {
	report := &Report{
		Class:        "Account",
		Search:       "a",
		Participates: true,
		Relations:    []RelationDescriptor{{Name: "owner"}},
		Scopes: []ScopeDescriptor{
			{Name: "active"},
			{Name: "by_area", Parameters: []string{"area", "radius"}},
		},
		Methods: []MethodEntry{
			{Name: "archive", Description: "Archives the account.", Resolved: true, Params: []Param{}},
			{Name: "create", Description: "Creates an account", Static: true, Resolved: true,
				Params: []Param{{Name: "name", Type: "string"}, {Type: "...int"}}},
			{Name: "rename", Description: "Renames"},
		},
		SeeAlso: []string{"Audit"},
	}

	want := []string{
		"===============================================",
		"API Reference for class Account",
		"===============================================",
		"",
		"RELATIONS:",
		"-----------------",
		"– owner",
		"",
		"SCOPES:",
		"-----------------",
		": active",
		": by_area(area, radius)",
		"",
		"METHODS:",
		"-----------------",
		"archive(): Archives the account.",
		"Without parameters",
		"self.create(name, ...int): Creates an account.",
		"Parameters: name (string), ...int",
		"Method object not found for method rename. Query an instance of Account to resolve it",
		"rename(): Renames.",
		"Without parameters",
		"",
		"SEE ALSO:",
		"-----------------",
		"Audit",
	}

	assert.Equal(t, want, Lines(report))
}

func TestRender_SectionsOnlyWhenNonEmpty(t *testing.T) {
	t.Run("relations hidden for non-participants", func(t *testing.T) {
		lines := Lines(&Report{
			Class:     "Order",
			Relations: []RelationDescriptor{{Name: "items"}},
			Methods:   []MethodEntry{{Name: "total", Description: "Order total"}},
		})
		assert.NotContains(t, lines, "RELATIONS:")
		assert.NotContains(t, lines, "SCOPES:")
	})

	t.Run("see also needs a search term", func(t *testing.T) {
		lines := Lines(&Report{
			Class:   "Order",
			Methods: []MethodEntry{{Name: "total", Description: "Order total"}},
			SeeAlso: []string{"Totalize"},
		})
		assert.NotContains(t, lines, "SEE ALSO:")
	})

	t.Run("methods section omitted when only relations match", func(t *testing.T) {
		lines := Lines(&Report{
			Class:        "Account",
			Participates: true,
			Relations:    []RelationDescriptor{{Name: "owner"}},
		})
		assert.Contains(t, lines, "RELATIONS:")
		assert.NotContains(t, lines, "METHODS:")
	})
}

func TestRender_MethodWithoutDescription(t *testing.T) {
	lines := Lines(&Report{
		Class:   "Order",
		Methods: []MethodEntry{{Name: "total", Resolved: true}},
	})
	assert.Contains(t, lines, "total()")
}

func TestRender_DescriptionKeepsEllipsis(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Sums items", "total(): Sums items."},
		{"Sums items.", "total(): Sums items."},
		{"Sums items etc...", "total(): Sums items etc..."},
		{"  Sums items.  ", "total(): Sums items."},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			lines := Lines(&Report{
				Class:   "Order",
				Methods: []MethodEntry{{Name: "total", Description: tt.description, Resolved: true}},
			})
			assert.Contains(t, lines, tt.want)
		})
	}
}

func TestFormatScope(t *testing.T) {
	assert.Equal(t, "active", FormatScope(ScopeDescriptor{Name: "active"}))
	assert.Equal(t, "by_region(region)", FormatScope(ScopeDescriptor{Name: "by_region", Parameters: []string{"region"}}))
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "method", LineMethod.String())
	assert.Equal(t, "see_also", LineSeeAlso.String())
	assert.Equal(t, "unknown", LineKind(99).String())
}

func TestReport_SortedSections(t *testing.T) {
	help := newTestHelp(t)
	require.NoError(t, Register[Account](help, "zeta", "Last"))
	require.NoError(t, Register[Account](help, "alpha", "First"))

	report := help.Report(Account{}, "")

	require.Len(t, report.Relations, 2)
	assert.Equal(t, "owner", report.Relations[0].Name)
	assert.Equal(t, "users", report.Relations[1].Name)
	require.Len(t, report.Scopes, 2)
	assert.Equal(t, "active", report.Scopes[0].Name)
	require.Len(t, report.Methods, 2)
	assert.Equal(t, "alpha", report.Methods[0].Name)
	assert.Equal(t, "zeta", report.Methods[1].Name)
}
