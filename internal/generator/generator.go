package generator

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/suf-labs/suf-gen/internal/config"
	"github.com/suf-labs/suf-gen/internal/deps"
	"github.com/suf-labs/suf-gen/internal/gitinfo"
	"github.com/suf-labs/suf-gen/internal/installer"
	"github.com/suf-labs/suf-gen/internal/options"
	"github.com/suf-labs/suf-gen/internal/prompt"
	"github.com/suf-labs/suf-gen/internal/runner"
	"github.com/suf-labs/suf-gen/internal/scaffold"
	"github.com/suf-labs/suf-gen/internal/ui"
)

// Generator holds everything a run needs. All fields are required.
type Generator struct {
	// Name is the command name shown in the help table.
	Name     string
	Table    options.Table
	Prompter prompt.Prompter
	Runner   runner.Runner
	Fs       afero.Fs
	Console  *ui.Console
	Logger   *zap.Logger
	Settings config.Settings
}

// Run executes one generation for the raw command-line arguments. Write
// failures and a closed prompt input are returned; install and git failures
// are reported and the run carries on.
func (g *Generator) Run(ctx context.Context, args []string) error {
	opts := options.Parse(args, g.Table)
	g.Logger.Debug("parsed options", zap.Any("options", opts))

	if opts.Enabled(g.Table, "help") {
		options.PrintHelp(g.Console.Out, g.Name, g.Table)
		return nil
	}

	answers, err := prompt.Collect(g.Prompter, options.Positional(args))
	if err != nil {
		return err
	}
	g.Logger.Debug("collected answers",
		zap.String("project", answers.ProjectName),
		zap.Bool("preact", answers.Preact),
		zap.Bool("snowpack", answers.Snowpack),
		zap.Bool("suf", answers.Suf),
		zap.Bool("git", answers.Git),
	)

	author := g.author(ctx)

	w := &scaffold.Writer{Fs: g.Fs, Root: answers.ProjectName, Console: g.Console}
	result, err := scaffold.Generate(w, scaffold.Plan(answers, author))
	if err != nil {
		return fmt.Errorf("writing project files: %w", err)
	}
	for _, warning := range result.Warnings {
		g.Console.Warn(warning)
	}

	inst := &installer.Installer{
		Runner:  g.Runner,
		Fs:      g.Fs,
		Console: g.Console,
		Logger:  g.Logger,
		Stdout:  g.Console.Out,
		Settings: installer.Settings{
			PackageManager:    g.Settings.PackageManager,
			MinVersion:        g.Settings.PackageManagerMin,
			FallbackInProject: g.Settings.FallbackInProject,
		},
	}
	outcome, err := inst.Install(ctx, answers.ProjectName, deps.Build(answers))
	if err != nil {
		return err
	}
	if outcome.Err != nil {
		g.Console.Warn(fmt.Sprintf("installing packages failed (%v), the command was saved to %s", outcome.Err, outcome.FallbackPath))
	}

	if answers.Git {
		if err := inst.InitGit(ctx, answers.ProjectName); err != nil {
			g.Console.Warn(fmt.Sprintf("git init failed: %v", err))
		}
	}

	Finished(g.Console, Summary{
		Name:           answers.ProjectName,
		Suf:            answers.Suf,
		PackageManager: g.Settings.PackageManager,
		Files:          len(result.Files),
	})
	return nil
}

func (g *Generator) author(ctx context.Context) string {
	if !g.Settings.GitIdentity {
		return ""
	}
	author, ok := gitinfo.Author(ctx, g.Runner)
	if !ok {
		g.Logger.Debug("no global git identity, omitting author")
	}
	return author
}
