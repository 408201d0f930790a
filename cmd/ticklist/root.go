// Root command for the ticklist CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ticklab/ticklist/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

// Config values loaded from config.yaml. Set by PersistentPreRunE so
// all subcommands can use them.
var (
	configBackend string
	configDataDir string
)

var rootCmd = &cobra.Command{
	Use:     "ticklist",
	Short:   "Ticklist keeps a personal to-do list in a single file",
	Version: version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the task file (default: home directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(infosCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > TICKLIST_DATA_DIR env > home
// directory.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > TICKLIST_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
