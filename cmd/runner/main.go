// runner is an endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show the high score and best runs
//	runner config            - Print the default gameplay configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.runner/runner.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Gameplay flags shared by play and serve
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless Runner - dodge obstacles and collect gems in your terminal",
	Long: `Endless Runner is a terminal game: steer up and down to dodge the
obstacles scrolling towards you and pick up gems on the way. Every obstacle
you pass scores a point, and every 20 points they come faster.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the high score and run history
  config   - Print the gameplay configuration

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222
  runner scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to runner database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameplayFlags registers the flags that shape a run.
func addGameplayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadRunnerConfig resolves the config file and applies the difficulty preset.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(strings.ToLower(flagDifficulty))
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}

	return cfg, nil
}

// newLogger builds a logger writing to w at the level named by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens path for appending, expanding ~ and creating parents.
func openLogFile(path string) (*os.File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
