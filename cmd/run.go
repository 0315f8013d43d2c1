package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	hoarderrors "github.com/jmurray2011/hoard/internal/errors"
	"github.com/jmurray2011/hoard/internal/script"
	"github.com/jmurray2011/hoard/pkg/lru"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Execute a script of cache operations",
	Long: `Execute cache operations from a script file, or from stdin when the
argument is "-".

Scripts are line-oriented; blank lines and lines starting with '#' are
skipped. Operations:

  put <key> <value>   store a value (evicts the LRU entry when full)
  get <key>           look a key up and promote it
  peek <key>          look a key up without promoting
  has <key>           membership test without promoting
  len                 current entry count
  keys                keys from most to least recently used
  oldest              the entry next in line for eviction

Examples:
  hoard run ops.txt
  hoard run ops.txt --capacity 100
  echo "put 1 1" | hoard run -`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	size := getCapacity()
	cache, err := lru.New(size)
	if err != nil {
		return hoarderrors.InvalidCapacityError(size)
	}
	defer cache.Close()

	var in io.Reader
	if args[0] == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return hoarderrors.ScriptNotFoundError(args[0])
		}
		defer f.Close()
		in = f
	}

	ops, err := script.Parse(in)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		render.Warning("script contains no operations")
		return nil
	}

	render.Status("Running %d operation(s) against a capacity-%d cache...", len(ops), size)
	render.KeyValue("capacity", strconv.Itoa(size))
	render.Newline()

	runner := script.NewRunner(cache, logger)
	results, err := runner.Run(ops)
	if err != nil {
		return fmt.Errorf("executing script: %w", err)
	}

	for i, res := range results {
		renderResult(i+1, res)
	}

	render.Newline()
	render.Success("Done: %d operations, %d entries left in cache.", len(results), cache.Len())
	return nil
}

// renderResult prints one script step the same way for demo and run.
func renderResult(step int, res script.Result) {
	render.Op(step, res.Op.String())

	switch res.Op.Kind {
	case script.KindPut:
		render.Stored(res.Op.Key, res.Op.Value)
		if res.Evicted {
			render.Evicted(res.EvictedKey)
		}
	case script.KindGet, script.KindPeek:
		if res.Hit {
			render.Hit(res.Value)
		} else {
			render.Miss()
		}
	case script.KindHas:
		if res.Hit {
			render.Info("     present")
		} else {
			render.Info("     absent")
		}
	case script.KindLen:
		render.Info("     len: %d", res.Len)
	case script.KindOldest:
		if res.Hit {
			render.Hit(res.Value)
			render.Info("     oldest key: %d", res.Key)
		} else {
			render.Miss()
		}
	}

	if res.Op.Kind != script.KindLen {
		render.Order(res.Keys)
	}
}
