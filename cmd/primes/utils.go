package primes

import (
	"errors"
	"os"

	"github.com/primes/primes/internal/config"
	"github.com/spf13/cobra"
)

// loadSettings resolves flags and config files: CLI > --config > local > global.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	var cli config.FileConfig
	if cmd.Flags().Changed("bound") {
		cli.Bound = intPtr(flagBound)
	}
	if cmd.Flags().Changed("sep") {
		cli.Separator = strPtr(flagSep)
	}

	var explicit, local, global *config.FileConfig
	if flagConfig != "" {
		c, err := config.LoadFile(flagConfig)
		if err != nil {
			return config.Settings{}, err
		}
		explicit = &c
	}
	if wd, err := os.Getwd(); err == nil {
		c, err := config.LoadLocal(wd)
		switch {
		case err == nil:
			local = &c
		case !errors.Is(err, config.ErrNoConfig):
			return config.Settings{}, err
		}
	}
	c, err := config.LoadGlobal()
	switch {
	case err == nil:
		global = &c
	case !errors.Is(err, config.ErrNoConfig):
		return config.Settings{}, err
	}
	return config.Resolve(&cli, explicit, local, global)
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
