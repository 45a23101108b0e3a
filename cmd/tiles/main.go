// tiles is a Piano Tiles game for the terminal.
//
// Usage:
//
//	tiles                    - Start the mode picker menu
//	tiles menu               - Same as above
//	tiles play <mode>        - Start a mode directly
//	tiles modes              - List modes and their rules
//	tiles scores [mode]      - Show best values and top runs
//	tiles serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set wakeup rate (default: 100)
//	--seed <value>       - Set RNG seed for reproducible rows
//	--db <path>          - Set database path (default: ~/.tiles/scores.db)
//	--config <path>      - Custom tiles.yaml
//	--difficulty <name>  - easy, normal, hard, fixed
//	--mute               - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Piano Tiles - tap the black tiles in your terminal",
	Long: `Piano Tiles is a terminal rhythm game. Rows of tiles scroll down the
board; tap the black tile of the lowest row before it leaves the board.

Available commands:
  menu     - Interactive mode picker (default)
  play     - Play a specific mode directly
  modes    - Show all modes and their rules
  scores   - View best values and top runs
  serve    - Start SSH server for remote play

Examples:
  tiles
  tiles play classic
  tiles play arcade --difficulty hard
  tiles scores zen
  tiles serve --ssh :2222`,
	PersistentPreRun: applyEnv,
	Run:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 100, "Wakeup rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiles/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tiles config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.tiles/tiles.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnv loads .env and lets TILES_* variables fill flags the user did not set.
func applyEnv(cmd *cobra.Command, _ []string) {
	_ = godotenv.Load()

	overrides := []struct {
		flag string
		env  string
		dst  *string
	}{
		{"db", "TILES_DB", &flagDBPath},
		{"config", "TILES_CONFIG", &flagConfig},
		{"log-file", "TILES_LOG", &flagLogFile},
	}
	for _, o := range overrides {
		if f := cmd.Flag(o.flag); f != nil && f.Changed {
			continue
		}
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
}
