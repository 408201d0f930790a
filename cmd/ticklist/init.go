// Init command creates the configuration file and an empty task store.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ticklab/ticklist/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ticklist configuration and storage",
	Long: `Init creates the configuration directory with a default
config.yaml and materializes an empty task store. Existing files are
left untouched, so init is safe to re-run.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := writeConfigIfMissing(configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Init(); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized ticklist, tasks in %s\n", st.Location())
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the
// file does not exist. An existing file is left untouched, so init is
// idempotent.
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := types.Config{Backend: types.BackendJSON}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
