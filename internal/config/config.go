package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/primes/primes/internal/output"
	"github.com/primes/primes/internal/sieve"
	"gopkg.in/yaml.v3"
)

// LocalNames lists the repo-local config file names in search order.
var LocalNames = []string{".primes.yml", ".primes.yaml", "primes.yml", "primes.yaml"}

// ErrNoConfig is returned when no config file exists at the searched location.
var ErrNoConfig = errors.New("no config")

// FileConfig is the on-disk YAML configuration shape.
type FileConfig struct {
	Bound     *int    `yaml:"bound,omitempty"`
	Separator *string `yaml:"separator,omitempty"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches dir for one of LocalNames.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfig
}

// GlobalPath returns $XDG_CONFIG_HOME/primes/config.yml, falling back to
// ~/.config. It returns "" when neither base directory is known.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "primes", "config.yml")
}

// LoadGlobal loads the global config file. A missing file or config dir
// yields ErrNoConfig; a file that exists but does not parse is an error.
func LoadGlobal() (FileConfig, error) {
	p := GlobalPath()
	if p == "" {
		return FileConfig{}, fmt.Errorf("%w: no config dir", ErrNoConfig)
	}
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, ErrNoConfig
	}
	return LoadFile(p)
}

// Settings is the resolved run configuration.
type Settings struct {
	Bound int
	// SeparatorName is the configured name (tab, space, newline).
	SeparatorName string
	// Separator is the text written between values.
	Separator string
}

// Resolve merges layers in precedence order, first non-nil value wins.
// Callers pass the CLI layer first (with only the flags the user set), then
// explicit, local and global files. Missing values fall back to defaults.
// The result is validated without allocating.
func Resolve(layers ...*FileConfig) (Settings, error) {
	s := Settings{Bound: sieve.DefaultBound, SeparatorName: "tab"}
	for _, l := range layers {
		if l != nil && l.Bound != nil {
			s.Bound = *l.Bound
			break
		}
	}
	for _, l := range layers {
		if l != nil && l.Separator != nil && *l.Separator != "" {
			s.SeparatorName = *l.Separator
			break
		}
	}
	if err := sieve.Validate(s.Bound); err != nil {
		return s, err
	}
	sep, err := output.ParseSeparator(s.SeparatorName)
	if err != nil {
		return s, err
	}
	s.Separator = sep
	return s, nil
}
