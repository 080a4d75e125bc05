package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suf-labs/suf-gen/internal/branding"
	"github.com/suf-labs/suf-gen/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  configHelp(),
}

var configKeys = []struct {
	key, def, desc string
}{
	{config.KeyPackageManager, "yarn", "executable used to install packages"},
	{config.KeyPackageManagerMin, "1.0.0", "lowest supported package manager version"},
	{config.KeyFallbackInProject, "false", `write the "packages" retry file inside the project`},
	{config.KeyGitIdentity, "true", "use the global git identity as package author"},
	{config.KeyPromptTUI, "false", "use interactive forms on a terminal"},
	{config.KeyLogLevel, "info", "diagnostic log level"},
}

// configHelp lists every key with its default and environment override.
func configHelp() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Read and write %s configuration stored at ~/%s/config.yaml.\n\nKeys:\n", branding.CLIName(), branding.HomeDir())
	for _, k := range configKeys {
		fmt.Fprintf(&b, "  %-29s %s (default %s, env %s)\n", k.key, k.desc, k.def, branding.EnvVar(k.key))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
