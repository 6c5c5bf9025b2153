package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/apihelp/internal/cli/config"
	"github.com/conduit-lang/apihelp/internal/demo"
	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// CatalogFunc builds the help instance the commands query
type CatalogFunc func(opts ...apihelp.Option) (*apihelp.Help, error)

// app carries the state shared by every subcommand once the root command
// has loaded configuration
type app struct {
	configDir string
	noColor   bool
	catalog   CatalogFunc

	cfg    *config.Config
	logger *zap.Logger
	help   *apihelp.Help
}

func (a *app) load() error {
	cfg, err := config.LoadFrom(a.configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	help, err := a.catalog(cfg.HelpOptions()...)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	a.help = help
	a.logger = help.Logger()
	return nil
}

// colorless reports whether output should be plain
func (a *app) colorless() bool {
	return a.noColor || (a.cfg != nil && !a.cfg.Help.Color)
}

// NewRootCommand creates the root command describing the demo catalog
func NewRootCommand() *cobra.Command {
	return newRootCommand(demo.New)
}

func newRootCommand(catalog CatalogFunc) *cobra.Command {
	a := &app{catalog: catalog}

	rootCmd := &cobra.Command{
		Use:   "apihelp",
		Short: "Browse registered API help for Go types",
		Long: color.CyanString(`apihelp - runtime API reference for Go types

Lists the documented methods of a type and its embedded types, together with
the relations and scopes its ORM schema declares.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			if a.noColor {
				color.NoColor = true
			}
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configDir, "config-dir", ".", "Directory containing apihelp.yml")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(newShowCommand(a))
	rootCmd.AddCommand(newClassesCommand(a))
	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			out := cmd.OutOrStdout()
			titleColor := color.New(color.FgCyan, color.Bold)

			titleColor.Fprint(out, "apihelp version: ")
			fmt.Fprintln(out, Version)
			titleColor.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)
			titleColor.Fprint(out, "Build date: ")
			fmt.Fprintln(out, BuildDate)
			titleColor.Fprint(out, "Go version: ")
			fmt.Fprintln(out, goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
