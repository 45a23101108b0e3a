package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-tiles/internal/telemetry"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a mode.
After a round ends, retry with R or go back to the menu with B.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start mode
  D F J K      - Tap columns 1-4 (mouse clicks work too)
  R            - Retry after game over
  B/Esc        - Back to menu
  Tab          - Scoreboard
  Ctrl+S       - Screenshot
  Q            - Quit

Examples:
  tiles menu
  tiles menu --mute
  tiles menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	runInteractive(tiles.ModeClassic, false)
}

// runInteractive runs the TUI for a local player, optionally skipping the menu.
func runInteractive(mode tiles.Mode, direct bool) {
	cfg, err := loadTiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := setupLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	store, ledger := openScores(logger)

	runErr := tui.Run(tui.Options{
		Tiles:     cfg,
		Runtime:   runtimeConfig(),
		Store:     store,
		Ledger:    ledger,
		Sound:     newSound(logger),
		Telemetry: telemetry.NewLogSink(logger, ""),
		Logger:    logger,
		StartMode: mode,
		Direct:    direct,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("tui exited", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
