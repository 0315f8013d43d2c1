package cmd

import (
	"strings"

	"github.com/jmurray2011/hoard/internal/script"
	"github.com/jmurray2011/hoard/pkg/lru"

	"github.com/spf13/cobra"
)

// demoScript is the canonical walkthrough: a capacity-2 cache driven
// through both eviction paths and a promotion that changes the victim.
const demoScript = `put 1 1
put 2 2
get 1
put 3 3
get 2
put 4 4
get 1
get 3
get 4
`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the built-in demonstration script",
	Long: `Run a fixed sequence of operations against a capacity-2 cache and
print what happens at each step.

The sequence shows every interesting behavior: filling the cache,
promotion on read, eviction of the least recently used entry, and a
read that rescues an entry from eviction. Output is deterministic.

Examples:
  hoard demo
  hoard demo --no-color`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	// The demo is only meaningful at capacity 2; it ignores config.
	cache, err := lru.New(2)
	if err != nil {
		return err
	}
	defer cache.Close()

	ops, err := script.Parse(strings.NewReader(demoScript))
	if err != nil {
		return err
	}

	render.KeyValue("capacity", "2")
	render.Newline()

	runner := script.NewRunner(cache, logger)
	results, err := runner.Run(ops)
	if err != nil {
		return err
	}

	for i, res := range results {
		renderResult(i+1, res)
	}

	render.Newline()
	render.Success("Done: %d operations, %d entries left in cache.", len(results), cache.Len())
	return nil
}
