package primes

import (
	"fmt"

	"github.com/primes/primes/internal/sieve"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print how many primes are below the bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			n, err := sieve.Count(settings.Bound)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
	rootCmd.AddCommand(cmd)
}
