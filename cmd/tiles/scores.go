package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/highscore"
	"github.com/vovakirdan/tui-tiles/internal/storage"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorBest  = color.New(color.FgYellow)
	colorClear = color.New(color.FgGreen)
	colorFail  = color.New(color.FgRed)
	colorDim   = color.New(color.FgHiBlack)
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best values and top runs",
	Long: `Display the best value and the top runs for a mode, or for every mode
when none is given. Classic ranks cleared runs by time; the other modes rank
by tiles tapped.

Examples:
  tiles scores
  tiles scores classic
  tiles scores rush --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show per mode")
}

func runScores(_ *cobra.Command, args []string) {
	modes := tiles.AllModes()
	if len(args) == 1 {
		mode, err := tiles.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'tiles modes' to see available modes.")
			os.Exit(1)
		}
		modes = []tiles.Mode{mode}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ledger := highscore.Open(store, log.New(io.Discard))

	for i, mode := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printMode(store, ledger, mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			store.Close()
			os.Exit(1)
		}
	}
}

func printMode(store *storage.Store, ledger *highscore.Ledger, mode tiles.Mode) error {
	runs, err := store.TopRuns(mode, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetModeStats(mode)
	if err != nil {
		return err
	}

	colorTitle.Printf("High Scores - %s\n", mode.Title())
	best := "--"
	if v, ok := ledger.Best(mode); ok {
		best = highscore.Format(mode, v)
	}
	colorBest.Printf("Best: %s\n", best)
	colorDim.Printf("%d runs, %d cleared, average score %.1f\n", stats.Runs, stats.Wins, stats.AvgScore)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Printf("Play 'tiles play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-6s  %s\n", "Rank", "Score", "Time", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-6s  %s\n", "----", "-----", "----", "------", "----")
	for i, r := range runs {
		result, c := "fail", colorFail
		if r.Success {
			result, c = "clear", colorClear
		}
		fmt.Printf("  %-4d  %-6d  %-9s  ", i+1, r.Score, fmt.Sprintf("%.2fs", r.Elapsed.Seconds()))
		c.Printf("%-6s", result)
		fmt.Printf("  %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
