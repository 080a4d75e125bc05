package options

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	opts := Parse(nil, DefaultTable())
	want := Options{"help": false, "h": false, "verbose": false, "v": false}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("Parse(nil) = %v, want %v", opts, want)
	}
}

func TestParseRecognizesBothSpellings(t *testing.T) {
	tests := []struct {
		name string
		args []string
		key  string
	}{
		{"long double dash", []string{"--help"}, "help"},
		{"long single dash", []string{"-help"}, "help"},
		{"short", []string{"-h"}, "h"},
		{"short double dash", []string{"--h"}, "h"},
		{"upper case", []string{"--HELP"}, "help"},
		{"verbose short", []string{"-v"}, "v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Parse(tt.args, DefaultTable())
			if !opts[tt.key] {
				t.Errorf("Parse(%v)[%q] = false, want true", tt.args, tt.key)
			}
		})
	}
}

func TestParseToggles(t *testing.T) {
	table := DefaultTable()
	for _, flag := range []string{"--help", "-h", "--verbose", "-v"} {
		t.Run(flag, func(t *testing.T) {
			got := Parse([]string{flag, flag}, table)
			if !reflect.DeepEqual(got, table.Defaults()) {
				t.Errorf("Parse(%s %s) = %v, want defaults", flag, flag, got)
			}
		})
	}
}

func TestParseToggleRespectsTrueDefault(t *testing.T) {
	table := Table{{Long: "color", Short: "c", Default: true}}
	if Parse([]string{"--color"}, table)["color"] {
		t.Error("toggling a true default should yield false")
	}
}

func TestParseIgnoresNonFlags(t *testing.T) {
	table := DefaultTable()
	base := Parse([]string{"-h"}, table)
	withPositional := Parse([]string{"demo", "-h", "other", "demo"}, table)
	if !reflect.DeepEqual(base, withPositional) {
		t.Errorf("non-flag arguments changed options: %v vs %v", withPositional, base)
	}
}

func TestParseIgnoresUnknownFlags(t *testing.T) {
	opts := Parse([]string{"--force", "-x", "---help"}, DefaultTable())
	if !reflect.DeepEqual(opts, DefaultTable().Defaults()) {
		t.Errorf("unknown flags changed options: %v", opts)
	}
	if _, ok := opts["force"]; ok {
		t.Error("unknown flag added a key")
	}
}

func TestEnabled(t *testing.T) {
	table := DefaultTable()
	if !Parse([]string{"-h"}, table).Enabled(table, "help") {
		t.Error("short flag should enable help")
	}
	// -h toggled twice is back to false; --help alone still enables help.
	if !Parse([]string{"-h", "--help", "-h"}, table).Enabled(table, "help") {
		t.Error("help should be enabled by the long flag")
	}
	if Parse(nil, table).Enabled(table, "unknown") {
		t.Error("unknown option reported as enabled")
	}
}

func TestPositional(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"--help"}, ""},
		{[]string{"demo"}, "demo"},
		{[]string{"-v", "My-App", "other"}, "My-App"},
	}
	for _, tt := range tests {
		if got := Positional(tt.args); got != tt.want {
			t.Errorf("Positional(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&buf, "suf-gen", DefaultTable())
	out := buf.String()

	for _, want := range []string{"Usage:", "suf-gen", "NAME", "...ARGS", "--help", "-h", "displays the help message.", "--verbose"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}
