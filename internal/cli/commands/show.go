package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/apihelp/internal/cli/ui"
	"github.com/conduit-lang/apihelp/internal/web/helpserver"
	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

// errClassNotFound is returned after the not-found message has been printed
var errClassNotFound = errors.New("class not found")

// pickClass asks the user to choose a class. Replaced in tests.
var pickClass = func(names []string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("class name required when not running in a terminal")
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select a class:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

func newShowCommand(a *app) *cobra.Command {
	var (
		search string
		format string
	)

	cmd := &cobra.Command{
		Use:   "show [class]",
		Short: "Show the API reference of a class",
		Long: `Show the API reference of a class.

Lists relations and scopes when the class has an ORM schema, followed by every
documented method of the class and its embedded types. With --search only
names containing the term are listed, plus any undocumented functions that
match.`,
		Example: `  # Full reference of User
  apihelp show User

  # Only members mentioning "name"
  apihelp show User --search name

  # Machine readable
  apihelp show demo.Post --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q: expected text or json", format)
			}

			class, err := resolveClass(cmd, a, args)
			if err != nil {
				return err
			}

			report := a.help.Report(class, search)
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(helpserver.ClassResponse{Report: report, Lines: apihelp.Lines(report)})
			}
			return ui.WriteHelp(cmd.OutOrStdout(), apihelp.Render(report), a.colorless())
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only list members whose name contains the term")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}

// resolveClass maps the class argument, or the user's pick, to a type
func resolveClass(cmd *cobra.Command, a *app, args []string) (reflect.Type, error) {
	names := a.help.ClassNames()

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		if len(names) == 0 {
			return nil, fmt.Errorf("no classes are registered")
		}
		picked, err := pickClass(names)
		if err != nil {
			return nil, err
		}
		name = picked
	}

	class, ok := a.help.ClassByName(name)
	if !ok {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ClassNotFoundError(name, ui.FindSimilar(name, names, nil), a.colorless()))
		return nil, errClassNotFound
	}
	return class, nil
}
