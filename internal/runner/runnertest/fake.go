// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"io"
	"strings"

	"github.com/suf-labs/suf-gen/internal/runner"
)

// Call records one invocation.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// Line returns the call as a single command line.
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is what the fake returns for a matching command line.
type Response struct {
	Result runner.Result
	Err    error
}

// Fake returns scripted responses keyed by command line prefix; the longest
// matching prefix wins. Commands with no matching entry succeed with empty
// output.
type Fake struct {
	Responses map[string]Response
	Calls     []Call
}

// Run implements runner.Runner.
func (f *Fake) Run(_ context.Context, name string, args []string, opts runner.Opts) (runner.Result, error) {
	call := Call{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir}
	f.Calls = append(f.Calls, call)

	line := call.Line()
	best, found := "", false
	for prefix := range f.Responses {
		if strings.HasPrefix(line, prefix) && (!found || len(prefix) > len(best)) {
			best, found = prefix, true
		}
	}
	if !found {
		return runner.Result{}, nil
	}

	resp := f.Responses[best]
	if opts.Stdout != nil && resp.Result.Stdout != "" {
		_, _ = io.WriteString(opts.Stdout, resp.Result.Stdout)
	}
	return resp.Result, resp.Err
}
