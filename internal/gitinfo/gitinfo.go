// Package gitinfo reads the user's global git identity for the generated
// package manifest.
package gitinfo

import (
	"context"
	"strings"

	"github.com/suf-labs/suf-gen/internal/runner"
)

// Author returns "name <email>" from the global git config. Any failure
// (git missing, key unset, non-zero exit) reports false.
func Author(ctx context.Context, r runner.Runner) (string, bool) {
	name, ok := globalConfig(ctx, r, "user.name")
	if !ok {
		return "", false
	}
	email, ok := globalConfig(ctx, r, "user.email")
	if !ok {
		return "", false
	}
	return name + " <" + email + ">", true
}

func globalConfig(ctx context.Context, r runner.Runner, key string) (string, bool) {
	res, err := r.Run(ctx, "git", []string{"config", "--global", key}, runner.Opts{})
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	return strings.ReplaceAll(res.Stdout, "\n", ""), true
}
