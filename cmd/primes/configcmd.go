package primes

import (
	"fmt"
	"os"

	"github.com/primes/primes/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput string
	cfgForce  bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .primes.yml from the current settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", config.LocalNames[0], "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := resolvedYAML(cmd)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cfgCmd.AddCommand(showCmd)
}

func resolvedYAML(cmd *cobra.Command) ([]byte, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	fc := config.FileConfig{
		Bound:     intPtr(settings.Bound),
		Separator: strPtr(settings.SeparatorName),
	}
	return yaml.Marshal(&fc)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if !cfgForce {
		if _, err := os.Stat(cfgOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
		}
	}
	b, err := resolvedYAML(cmd)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Wrote", cfgOutput)
	return nil
}
