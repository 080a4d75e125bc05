package cli

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/suf-labs/suf-gen/internal/branding"
	"github.com/suf-labs/suf-gen/internal/config"
	"github.com/suf-labs/suf-gen/internal/generator"
	"github.com/suf-labs/suf-gen/internal/logging"
	"github.com/suf-labs/suf-gen/internal/options"
	"github.com/suf-labs/suf-gen/internal/prompt"
	"github.com/suf-labs/suf-gen/internal/runner"
	"github.com/suf-labs/suf-gen/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [NAME]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a TypeScript web project with webpack, optional Preact,
Snowpack and suf-cli, then installs its packages.`,
	// Arguments are handled by the options table, not pflag.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config.Load()
	settings := config.Current()

	table := options.DefaultTable()
	opts := options.Parse(args, table)

	logger, err := logging.New(opts.Enabled(table, "verbose"), settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()
	g := &generator.Generator{
		Name:     branding.CLIName(),
		Table:    table,
		Prompter: prompt.New(os.Stdin, out, settings.PromptTUI),
		Runner:   runner.Exec{},
		Fs:       afero.NewOsFs(),
		Console:  ui.New(out),
		Logger:   logger,
		Settings: settings,
	}
	return g.Run(cmd.Context(), args)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.ExecuteContext(context.Background())
}
