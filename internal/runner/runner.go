// Package runner executes external programs (package managers, git) behind a
// small interface so callers can be tested with stubs.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Result captures the outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Opts holds optional parameters for a command.
type Opts struct {
	Dir string // working directory (optional)

	// Stdout and Stderr, when set, receive the child's output live in
	// addition to it being captured in Result.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner runs external commands.
type Runner interface {
	// Run executes name with args. A process that exits non-zero yields a
	// Result with ExitCode set and a nil error; the error is reserved for
	// failures to start or wait on the process.
	Run(ctx context.Context, name string, args []string, opts Opts) (Result, error)
}

// Exec is the os/exec backed Runner.
type Exec struct{}

// Run executes the command, streaming output to opts writers when present.
func (Exec) Run(ctx context.Context, name string, args []string, opts Opts) (Result, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return Result{}, fmt.Errorf("locating %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = opts.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(&stdoutBuf, opts.Stdout)
	cmd.Stderr = tee(&stderrBuf, opts.Stderr)

	err = cmd.Run()

	result := Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("running %s: %w", name, err)
	}
	return result, nil
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}
