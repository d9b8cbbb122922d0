package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default or effective config",
	Long: `Print the built-in default config file, ready to be edited and saved to
~/.t2048/config.yaml or ./configs/t2048.yaml.

With --effective the config actually in use is printed instead, after the
config file, --preset and flag overrides have been applied.

Examples:
  t2048 config > ~/.t2048/config.yaml
  t2048 config --effective --preset big`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return
	}

	cfg := mustLoadSettings(cmd)
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck
}
