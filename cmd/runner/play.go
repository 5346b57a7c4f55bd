package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/lifecycle"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagLogFile string
	flagNoSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Up/W, Down/S   - Move (hold)
  Enter/Space    - Play / restart after game over
  Tab            - Open or close the shop
  M              - Mute
  Click          - Tap a button (PLAY, SHOP, mute) or restart
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Obstacles start every 1.2s
  normal - Obstacles start every 1s
  hard   - Obstacles start every 0.7s
  fixed  - No progression, the starting cadence never changes

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --seed 42 --no-sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameplayFlags(playCmd)
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.runner/runner.log", "Path to log file")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio output")
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout, so logs go to a file.
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: runnerCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Lifecycle: lifecycle.NewLogNotifier(logger),
		Logger:    logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runner database: %v\n", err)
		logger.Warn("continuing without storage", "error", err)
		// Continue without storage - the high score lasts for this process only
		opts.Scores = storage.NewMemoryKV()
	} else {
		opts.Scores = store
		opts.Recorder = store
	}

	var sink audio.Sink
	if !flagNoSound {
		if sink, err = audio.InitSpeaker(audio.DefaultSampleRate); err != nil {
			logger.Warn("audio unavailable", "error", err)
			sink = nil
		}
	}
	opts.Sounds = audio.NewCues(audio.DefaultSampleRate, sink)

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
