package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/suf-labs/suf-gen/internal/runner"
)

// VersionReport describes the installed package manager.
type VersionReport struct {
	Name      string
	Version   string
	Minimum   string
	Satisfies bool
	Err       error
}

// Satisfies reports whether version is at least minimum. Both accept an
// optional leading "v".
func Satisfies(version, minimum string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(minimum, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return c.Check(v), nil
}

// CheckVersion runs "<package manager> --version" and compares the result to
// the configured minimum.
func (i *Installer) CheckVersion(ctx context.Context) VersionReport {
	rep := VersionReport{Name: i.Settings.PackageManager, Minimum: i.Settings.MinVersion}

	res, err := i.Runner.Run(ctx, rep.Name, []string{"--version"}, runner.Opts{})
	if err != nil {
		rep.Err = err
		return rep
	}
	if res.ExitCode != 0 {
		rep.Err = fmt.Errorf("%s --version exited with status %d", rep.Name, res.ExitCode)
		return rep
	}

	rep.Version = strings.TrimSpace(res.Stdout)
	if rep.Minimum == "" {
		rep.Satisfies = true
		return rep
	}
	rep.Satisfies, rep.Err = Satisfies(rep.Version, rep.Minimum)
	return rep
}

func (i *Installer) warnOnOldVersion(ctx context.Context) {
	rep := i.CheckVersion(ctx)
	switch {
	case rep.Err != nil:
		i.Logger.Debug("package manager version unknown", zap.String("name", rep.Name), zap.Error(rep.Err))
	case !rep.Satisfies:
		i.Console.Warn(fmt.Sprintf("%s %s is older than the supported minimum %s", rep.Name, rep.Version, rep.Minimum))
	}
}
