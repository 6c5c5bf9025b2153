package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/apihelp/internal/web/helpserver"
	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

func newClassesCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List every class with registered help or an ORM schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			classes := a.help.Classes()
			summaries := make([]helpserver.ClassSummary, 0, len(classes))
			for _, class := range classes {
				report := a.help.Report(class, "")
				summaries = append(summaries, helpserver.ClassSummary{
					Name:         apihelp.ClassName(class),
					Participates: report.Participates,
					Methods:      len(report.Methods),
				})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			case "text":
			default:
				return fmt.Errorf("unknown format %q: expected text or json", format)
			}

			if len(summaries) == 0 {
				fmt.Fprintln(out, apihelp.NoHelpConfigured)
				return nil
			}

			nameColor := color.New(color.FgCyan, color.Bold)
			dimColor := color.New(color.FgHiBlack)
			if a.colorless() {
				nameColor.DisableColor()
				dimColor.DisableColor()
			}

			for _, s := range summaries {
				schema := ""
				if s.Participates {
					schema = ", schema"
				}
				fmt.Fprintf(out, "%s %s\n", nameColor.Sprintf("%-16s", s.Name),
					dimColor.Sprintf("(%d methods%s)", s.Methods, schema))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}
