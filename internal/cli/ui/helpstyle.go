package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

// lineStyles maps rendered help lines to terminal colors. Kinds without an
// entry are printed unstyled.
var lineStyles = map[apihelp.LineKind][]color.Attribute{
	apihelp.LineNoHelp:   {color.FgYellow},
	apihelp.LineBanner:   {color.FgWhite, color.BgMagenta},
	apihelp.LineTitle:    {color.FgWhite, color.BgMagenta, color.Bold},
	apihelp.LineSection:  {color.FgCyan, color.Bold},
	apihelp.LineRule:     {color.FgHiBlack},
	apihelp.LineWarning:  {color.FgRed, color.BgYellow},
	apihelp.LineMethod:   {color.FgHiWhite, color.Bold},
	apihelp.LineParams:   {color.FgGreen},
	apihelp.LineNoParams: {color.FgHiBlack},
	apihelp.LineSeeAlso:  {color.FgHiBlack},
}

// StyleLine returns the line text decorated for its kind
func StyleLine(line apihelp.Line, noColor bool) string {
	attrs, ok := lineStyles[line.Kind]
	if !ok || line.Text == "" {
		return line.Text
	}

	c := color.New(attrs...)
	if noColor {
		c.DisableColor()
	}
	return c.Sprint(line.Text)
}

// WriteHelp writes rendered help lines, one per line
func WriteHelp(w io.Writer, lines []apihelp.Line, noColor bool) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, StyleLine(line, noColor)); err != nil {
			return err
		}
	}
	return nil
}
