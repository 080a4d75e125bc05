package cli

import (
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	want := map[string]bool{"version": false, "config": false, "doctor": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandPassesFlagsThrough(t *testing.T) {
	if !rootCmd.DisableFlagParsing {
		t.Error("root command must leave -h/-v to the options table")
	}
	cmd, args, err := rootCmd.Find([]string{"demo", "--verbose"})
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if cmd != rootCmd {
		t.Errorf("Find() resolved %q, want root", cmd.Name())
	}
	if len(args) != 2 || args[0] != "demo" || args[1] != "--verbose" {
		t.Errorf("args = %v", args)
	}
}
