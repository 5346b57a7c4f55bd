package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and best runs",
	Long: `Display the stored high score and the best runs.

With --interactive, opens a scrollable table that can switch between the
best and the most recent runs.

Examples:
  runner scores
  runner scores --limit 20
  runner scores -i
  runner scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (the high score is kept)")
}

var (
	scoresTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoresDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoresBestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runner database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	best, err := store.HighScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(scoresTitleStyle.Render(fmt.Sprintf("High Score: %d", best)))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	fmt.Println(scoresDimStyle.Render(fmt.Sprintf("  %-4s  %-6s  %-5s  %s", "Rank", "Score", "Gems", "Date")))
	for i, r := range runs {
		line := fmt.Sprintf("  %-4d  %-6d  %-5d  %s", i+1, r.Score, r.Gems, r.CreatedAt.Local().Format("2006-01-02 15:04"))
		if r.NewBest {
			line = scoresBestStyle.Render(line + "  new best")
		}
		fmt.Println(line)
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Println(scoresDimStyle.Render(fmt.Sprintf("%d runs, average %.1f, %d gems collected", stats.Runs, stats.AvgScore, stats.TotalGems)))
	}
}
