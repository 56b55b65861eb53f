// Package commands implements the CLI commands for the recipe resolver.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/app"
	"go.trai.ch/recipe/internal/build"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/ui/report"
)

// CLI represents the command line interface for recipe.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	jsonLogs   bool
	setJSON    func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, sel app.Selection) ([]app.ResolvedPlan, error)
	Matrix(ctx context.Context, sel app.Selection) ([]app.ResolvedPlan, error)
	Build(ctx context.Context, sel app.Selection, opts app.BuildOptions) ([]app.BuildOutcome, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
	Options() []domain.OptionDef
	Info() domain.Recipe
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "recipe",
		Short:         "Resolve and build the minimodem package for a target platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to recipe.yaml or a directory to search from")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.setJSON != nil {
			c.setJSON(c.jsonLogs)
		}
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newMatrixCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newOptionsCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// OnJSONLogs registers the hook that switches the logger to JSON when --log-json is given.
func (c *CLI) OnJSONLogs(fn func(bool)) {
	c.setJSON = fn
}

// selectionFlags registers the flags shared by commands that resolve plans.
func selectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("setting", "s", nil, "Override a platform setting (key=value)")
	cmd.Flags().StringArrayP("option", "o", nil, "Request an option value (name=value)")
}

func (c *CLI) selection(cmd *cobra.Command, profiles []string) app.Selection {
	settings, _ := cmd.Flags().GetStringArray("setting")
	options, _ := cmd.Flags().GetStringArray("option")
	return app.Selection{
		ConfigPath: c.configPath,
		Profiles:   profiles,
		Settings:   settings,
		Options:    options,
	}
}

func formatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(report.FormatText), "Output format: text, json or yaml")
}

func renderer(cmd *cobra.Command) (*report.Renderer, error) {
	value, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(value)
	if err != nil {
		return nil, err
	}
	return report.New(cmd.OutOrStdout(), format), nil
}

func entries(plans []app.ResolvedPlan) []report.Entry {
	out := make([]report.Entry, len(plans))
	for i, rp := range plans {
		out[i] = report.Entry{Label: rp.Profile, Plan: rp.Plan}
	}
	return out
}
