// Package tiles implements the piano tiles engine: row generation, the
// bounded board, speed progression, input resolution, per-mode rules, and
// the session state machine that ties them to a clock.
//
// The engine is single-threaded. One event loop owns an Engine and calls
// Tick on every wakeup and ResolveInput on every tap; nothing in this
// package spawns goroutines.
package tiles

import "math/rand"

// Row is one horizontal strip of the board with exactly one correct tile.
type Row struct {
	ID           uint64 // Unique within a generator
	CorrectIndex int    // Column of the black tile
	Resolved     bool   // Correct tile has been tapped
	Missed       bool   // A wrong tile has been tapped
	MissedIndex  int    // Column of the wrong tap, valid only when Missed
}

// Generator produces rows with a uniformly random correct column.
type Generator struct {
	rng    *rand.Rand
	cols   int
	nextID uint64
}

// NewGenerator creates a generator for a board with the given column count.
// The same seed always yields the same sequence.
func NewGenerator(seed int64, cols int) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		cols: cols,
	}
}

// Next returns a fresh unresolved row.
func (g *Generator) Next() Row {
	g.nextID++
	return Row{
		ID:           g.nextID,
		CorrectIndex: g.rng.Intn(g.cols),
	}
}

// Columns returns the number of columns rows are generated for.
func (g *Generator) Columns() int {
	return g.cols
}
