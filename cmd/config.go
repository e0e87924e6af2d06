package cmd

import (
	"fmt"

	"github.com/ThatOtherAndrew/learngl/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the settings file path and the effective settings",
	Args:  cobra.NoArgs,
	RunE:  showConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("init", false, "overwrite the settings file with the defaults")
}

func showConfig(cmd *cobra.Command, args []string) error {
	path, err := config.GetSettingsPath()
	if err != nil {
		return fmt.Errorf("failed to get settings path: %w", err)
	}

	reset, _ := cmd.Flags().GetBool("init")
	if reset {
		if err := config.WriteSettings(path, config.Default()); err != nil {
			return fmt.Errorf("failed to write default settings: %w", err)
		}
	}

	settings, err := config.LoadSettingsFrom(path)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", path)
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(settings)
}
