package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all modes",
	Long:  `Shows every mode with its rules under the current configuration.`,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	cfg, err := loadTiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-8s  %-28s  %s\n", "ID", "Goal", "Rules")
	fmt.Printf("  %-8s  %-28s  %s\n", "--", "----", "-----")

	for _, mode := range tiles.AllModes() {
		line1, line2 := mode.Description()
		fmt.Printf("  %-8s  %-28s  %s\n", mode, line1+", "+line2, describePolicy(tiles.PolicyFor(cfg, mode)))
	}

	fmt.Println()
	fmt.Println("Run 'tiles play <id>' to start a mode.")
}

// describePolicy summarises the timing rules of a mode.
func describePolicy(p tiles.Policy) string {
	parts := []string{fmt.Sprintf("start %dms", p.InitialSpeed.Milliseconds())}
	if p.HitDrop > 0 {
		parts = append(parts, fmt.Sprintf("-%dms per hit", p.HitDrop.Milliseconds()))
	}
	if p.AutoDrop > 0 && p.AutoInterval > 0 {
		parts = append(parts, fmt.Sprintf("-%dms every %s", p.AutoDrop.Milliseconds(), p.AutoInterval))
	}
	if p.TimeLimit > 0 {
		parts = append(parts, fmt.Sprintf("%s limit", p.TimeLimit))
	}
	if p.HitDrop > 0 || p.AutoDrop > 0 {
		parts = append(parts, fmt.Sprintf("floor %dms", p.MinSpeed.Milliseconds()))
	}
	return strings.Join(parts, ", ")
}
