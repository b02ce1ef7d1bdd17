package primes

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/primes/primes/internal/output"
	"github.com/primes/primes/internal/sieve"
	"github.com/spf13/cobra"
)

var (
	flagBound   int
	flagSep     string
	flagConfig  string
	flagDigest  bool
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the primes CLI.
var rootCmd = &cobra.Command{
	Use:   "primes",
	Short: "Print the primes below a bound",
	Long: "primes runs the sieve of Eratosthenes and prints every prime below the bound " +
		"(1000000 by default) in ascending order, tab separated, followed by a newline.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPrimes,
}

// Execute runs the primes CLI. It should be called by the main package.
func Execute() {
	// A closed stdout must surface as EPIPE from Write, not a SIGPIPE kill.
	signal.Ignore(syscall.SIGPIPE)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagBound, "bound", "n", sieve.DefaultBound, "exclusive upper limit (at least 2)")
	rootCmd.PersistentFlags().StringVar(&flagSep, "sep", "", "separator between values: tab|space|newline (default tab)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "explicit YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagDigest, "digest", false, "print the xxhash64 of the output to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print a run summary to stderr")
}

func runPrimes(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	sv, err := sieve.New(settings.Bound)
	if err != nil {
		return err
	}

	start := time.Now()
	w := output.NewWriter(cmd.OutOrStdout(), settings.Separator)
	err = sv.Run(w.Emit)
	if err == nil {
		err = w.Close()
	}
	if err != nil {
		if output.IsBrokenPipe(err) {
			return nil
		}
		return fmt.Errorf("write primes: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	if flagDigest {
		_, _ = fmt.Fprintf(stderr, "xxh64:%016x\n", w.Sum64())
	}
	if flagVerbose {
		_, _ = fmt.Fprintf(stderr, "sieved %d: %d primes in %s\n", settings.Bound, w.Count(), time.Since(start).Round(time.Microsecond))
	}
	return nil
}
