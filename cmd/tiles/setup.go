package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/audio"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/highscore"
	"github.com/vovakirdan/tui-tiles/internal/storage"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// setupLogger opens the log file. The TUI owns the terminal, so nothing is
// logged to stdout or stderr while it runs.
func setupLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiles",
		Level:           level,
	})
	return logger, f, nil
}

// loadTiles reads the game configuration and applies the difficulty preset.
func loadTiles() (config.TilesConfig, error) {
	cfg, err := config.LoadTiles(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyTilesPreset(&cfg, preset)
	return cfg, nil
}

// openScores opens the run history and the ledger on top of it. When the
// database is unavailable the ledger lives in memory for this process only.
func openScores(logger *log.Logger) (*storage.Store, *highscore.Ledger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		return nil, highscore.Open(highscore.NewMemoryKV(), logger)
	}
	return store, highscore.Open(store, logger)
}

// newSound returns the tone player, or a silent sound when muted or when
// no audio device is available.
func newSound(logger *log.Logger) tiles.Sound {
	if flagMute {
		return audio.Nop{}
	}
	player, err := audio.NewTonePlayer(time.Now().UnixNano())
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}
	}
	return player
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
