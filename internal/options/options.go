// Package options implements the tool's tiny flag parser and help table.
//
// Flags are declared in pairs (a long and a short spelling of one logical
// option). Every occurrence of a recognized flag toggles its value, so a flag
// given twice cancels itself out.
package options

import (
	"strings"
)

// Pair declares one logical option.
type Pair struct {
	Long        string
	Short       string
	Description string
	Default     bool
}

// Table is an ordered, read-only list of option pairs.
type Table []Pair

// DefaultTable returns the options understood by the generator.
func DefaultTable() Table {
	return Table{
		{Long: "help", Short: "h", Description: "displays the help message."},
		{Long: "verbose", Short: "v", Description: "enables debug logging."},
	}
}

// Options maps every long and short key of a Table to its current value.
type Options map[string]bool

// Defaults returns the option mapping before any argument is applied.
func (t Table) Defaults() Options {
	opts := make(Options, len(t)*2)
	for _, p := range t {
		opts[p.Long] = p.Default
		opts[p.Short] = p.Default
	}
	return opts
}

// Parse applies args to the table defaults. Arguments that do not start with
// a dash are ignored, as are unknown flags.
func Parse(args []string, table Table) Options {
	opts := table.Defaults()
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		key := strings.ToLower(trimDashes(arg))
		if v, ok := opts[key]; ok {
			opts[key] = !v
		}
	}
	return opts
}

// Enabled reports whether either spelling of the option named long is set.
func (o Options) Enabled(table Table, long string) bool {
	for _, p := range table {
		if p.Long == long {
			return o[p.Long] || o[p.Short]
		}
	}
	return false
}

// Positional returns the first argument that is not a flag, or "".
func Positional(args []string) string {
	for _, arg := range args {
		if arg != "" && !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return ""
}

// trimDashes strips one or two leading dashes.
func trimDashes(arg string) string {
	arg = strings.TrimPrefix(arg, "-")
	return strings.TrimPrefix(arg, "-")
}
