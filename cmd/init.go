package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize hoard configuration",
	Long: `Create a default configuration file at ~/.hoard.yaml.

Examples:
  # Create default config (won't overwrite existing)
  hoard init

  # Force overwrite existing config
  hoard init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(home, ".hoard.yaml")

	if err := createFileIfNotExists(configPath, defaultConfigFile, initForce); err != nil {
		return err
	}

	fmt.Println("Initialized hoard configuration:")
	fmt.Printf("  Config: %s\n", configPath)
	fmt.Printf("\nEdit %s to customize your settings.\n", configPath)

	return nil
}

const defaultConfigFile = `# hoard configuration

# Cache capacity used when --capacity is omitted.
# Must be a positive integer.
capacity: 2

output:
  # Color output: auto, always, never
  color: auto
  # Suppress status messages
  quiet: false
`

func createFileIfNotExists(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  %s already exists (use --force to overwrite)\n", path)
			return nil
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("  Created %s\n", path)
	return nil
}
