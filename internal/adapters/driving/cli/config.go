package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/digital-land/harmonise-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default settings",
	Long: `View and set defaults used when the matching flags are omitted.

Recognised keys:
  organisation.path        default organisation reference table
  organisation.patch_path  default organisation patch table
  history.enabled          record every run in the history database
  history.path             history database path`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configKeys = []string{
	configfile.KeyOrganisationPath,
	configfile.KeyPatchPath,
	configfile.KeyHistoryEnabled,
	configfile.KeyHistoryPath,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}

	cmd.Printf("Config file: %s\n\n", store.Path())
	for _, key := range configKeys {
		value, ok := store.Get(key)
		if !ok {
			cmd.Printf("  %s = (not set)\n", key)
			continue
		}
		cmd.Printf("  %s = %v\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	known := false
	for _, k := range configKeys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown setting %q", key)
	}

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}

	var stored any = value
	if key == configfile.KeyHistoryEnabled {
		stored = value == "true"
	}
	if err := store.Set(key, stored); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, stored)
	return nil
}
