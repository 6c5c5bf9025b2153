package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and help commands
//
// Example output:
//
//	❌ CLASS NOT FOUND: Cannot find class 'Ordr'.
//
//	   Did you mean: Order?
//
//	   → See all classes: apihelp classes
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	header := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	if opts.NoColor {
		header.DisableColor()
		yellow.DisableColor()
		cyan.DisableColor()
	}

	if opts.Context != "" {
		header.Fprintf(&b, "❌ %s: %s\n", strings.ToUpper(opts.Context), opts.Problem)
	} else {
		header.Fprintf(&b, "❌ %s\n", opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// ClassNotFoundError creates a standardized class not found error
func ClassNotFoundError(name string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Context:      "class not found",
		Problem:      fmt.Sprintf("Cannot find class '%s'.", name),
		Suggestions:  suggestions,
		HelpCommands: []string{"See all classes: apihelp classes"},
		NoColor:      noColor,
	})
}
