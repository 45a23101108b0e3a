package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode right away, skipping the menu.

Modes:
  classic  - Tap 50 tiles, fastest time wins
  arcade   - Endless, every hit speeds the board up
  zen      - 30 seconds, as many tiles as you can
  rush     - Endless, the board also speeds up on its own

Difficulty options:
  easy   - Slower starting speed
  normal - Default speeds
  hard   - Faster starting speed
  fixed  - No speed-up at all

Examples:
  tiles play classic
  tiles play zen --difficulty easy
  tiles play rush --config ./my-tiles.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode, err := tiles.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tiles modes' to see available modes.")
		os.Exit(1)
	}
	runInteractive(mode, true)
}
