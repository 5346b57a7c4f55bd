package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the gameplay configuration",
	Long: `Print the built-in gameplay configuration as YAML. Save it to
~/.runner/configs/runner.yaml or ./configs/runner.yaml to customise it.

With --resolved, prints the configuration play would use after applying
--config and --difficulty.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addGameplayFlags(configCmd)
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
