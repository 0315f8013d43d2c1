package cmd

import (
	"fmt"
	"os"

	"github.com/jmurray2011/hoard/internal/config"
	"github.com/jmurray2011/hoard/internal/logging"
	"github.com/jmurray2011/hoard/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	capacity int
	verbose  bool
	noColor  bool
	quiet    bool

	// render is the global renderer for all output
	render *ui.Renderer

	// logger is the global logger; verbose mode lowers it to debug
	logger logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hoard",
	Short: "A workbench for a fixed-capacity LRU cache",
	Long: `hoard - stash integers in a fixed-capacity LRU cache and watch
what the recency list does with them.

The cache maps integer keys to integer values. Every lookup promotes
its entry to most-recently-used; inserting into a full cache evicts
the entry that has gone longest untouched.

Configuration:
  Create ~/.hoard.yaml to set defaults:

    capacity: 2
    output:
      color: auto   # auto, always, never
      quiet: false

Examples:
  # Walk through the canned capacity-2 demonstration
  hoard demo

  # Execute a script of cache operations
  hoard run ops.txt --capacity 100

  # Pipe operations in
  echo "put 1 1" | hoard run -`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initConfig, initRenderer, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.hoard.yaml)")
	rootCmd.PersistentFlags().IntVarP(&capacity, "capacity", "c", 0, "Cache capacity (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress status messages")

	// Bind flags to viper
	_ = viper.BindPFlag("capacity", rootCmd.PersistentFlags().Lookup("capacity"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output.quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".hoard")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("HOARD")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("capacity", config.DefaultCapacity)
	viper.SetDefault("output.color", "auto")

	// Read config file (ignore if not found, warn on other errors)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file: %v\n", err)
		}
	}
}

// initRenderer initializes the global renderer with current settings.
func initRenderer() {
	color := viper.GetString("output.color")
	disable := noColor || color == "never" || os.Getenv("NO_COLOR") != ""
	render = ui.NewRendererWithOptions(
		ui.WithNoColor(disable),
		ui.WithQuiet(quiet || viper.GetBool("output.quiet")),
	)
}

// initLogger initializes the global logger.
func initLogger() {
	logger = logging.New()
	if IsVerbose() {
		logger.SetLevel(logging.LevelDebug)
	}
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose || viper.GetBool("verbose")
}

// getCapacity returns the cache capacity from flags or config.
// Flag beats config file beats default.
func getCapacity() int {
	if capacity != 0 {
		return capacity
	}
	if v := viper.GetInt("capacity"); v != 0 {
		return v
	}
	return config.DefaultCapacity
}
