package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/suf-labs/suf-gen/internal/deps"
	"github.com/suf-labs/suf-gen/internal/runner"
	"github.com/suf-labs/suf-gen/internal/ui"
)

// FallbackFile is the name of the manual-retry hint written on failure.
const FallbackFile = "packages"

const fallbackHeader = "installing the packages seems to have failed!\ntry again using this command.\n"

// Settings configures the installer.
type Settings struct {
	PackageManager string
	// MinVersion is the lowest acceptable package manager version.
	MinVersion string
	// FallbackInProject writes the retry hint inside the project directory
	// instead of the current working directory.
	FallbackInProject bool
}

// Installer runs the package manager and git.
type Installer struct {
	Runner   runner.Runner
	Fs       afero.Fs
	Console  *ui.Console
	Logger   *zap.Logger
	Stdout   io.Writer
	Settings Settings
}

// Outcome reports how an install went.
type Outcome struct {
	// Command is the shell command equivalent of the install.
	Command string
	// Err is the install failure, nil on success.
	Err error
	// FallbackPath is where the retry hint was written when Err is set.
	FallbackPath string
}

// Command returns the install as a single shell command line.
func (i *Installer) Command(l deps.List) string {
	pm := i.Settings.PackageManager
	parts := []string{strings.Join(append([]string{pm, "add", "-D"}, l.Dev...), " ")}
	if len(l.Runtime) > 0 {
		parts = append(parts, strings.Join(append([]string{pm, "add"}, l.Runtime...), " "))
	}
	return strings.Join(parts, " && ")
}

// Install installs l inside projectDir, streaming the package manager output.
// On failure the retry hint is written and the failure is reported in the
// Outcome; the returned error is set only if the hint itself cannot be written.
func (i *Installer) Install(ctx context.Context, projectDir string, l deps.List) (Outcome, error) {
	out := Outcome{Command: i.Command(l)}

	i.Console.Heading("installing packages")
	i.warnOnOldVersion(ctx)

	out.Err = i.install(ctx, projectDir, l)
	if out.Err == nil {
		return out, nil
	}

	i.Logger.Debug("install failed", zap.String("command", out.Command), zap.Error(out.Err))

	path := FallbackFile
	if i.Settings.FallbackInProject {
		path = filepath.Join(projectDir, FallbackFile)
	}
	if err := afero.WriteFile(i.Fs, path, []byte(fallbackHeader+out.Command), 0644); err != nil {
		return out, fmt.Errorf("writing %s: %w", path, err)
	}
	out.FallbackPath = path
	return out, nil
}

func (i *Installer) install(ctx context.Context, dir string, l deps.List) error {
	pm := i.Settings.PackageManager
	if err := i.run(ctx, dir, pm, append([]string{"add", "-D"}, l.Dev...)); err != nil {
		return err
	}
	if len(l.Runtime) == 0 {
		return nil
	}
	return i.run(ctx, dir, pm, append([]string{"add"}, l.Runtime...))
}

// InitGit runs "git init" in projectDir.
func (i *Installer) InitGit(ctx context.Context, projectDir string) error {
	i.Console.Heading("initializing git repository")
	return i.run(ctx, projectDir, "git", []string{"init"})
}

func (i *Installer) run(ctx context.Context, dir, name string, args []string) error {
	i.Logger.Debug("running", zap.String("cmd", name), zap.Strings("args", args), zap.String("dir", dir))

	res, err := i.Runner.Run(ctx, name, args, runner.Opts{
		Dir:    dir,
		Stdout: i.stdout(),
	})
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%s %s exited with status %d", name, args[0], res.ExitCode)
	}
	return nil
}

func (i *Installer) stdout() io.Writer {
	if i.Stdout != nil {
		return i.Stdout
	}
	return os.Stdout
}
