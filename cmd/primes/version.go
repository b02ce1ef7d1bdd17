package primes

import (
	"fmt"
	"runtime/debug"

	semver "github.com/blang/semver/v4"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the primes version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "primes v"+currentVersion().String())
			return err
		},
	})
}

// currentVersion parses the build version, preferring the module version
// stamped by `go install` when it is a release tag.
func currentVersion() semver.Version {
	v := version
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	// parse semantic version (strip leading v)
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	return ver
}
