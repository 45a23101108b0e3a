package tiles

import "github.com/vovakirdan/tui-tiles/internal/core"

// Layout dimensions
const (
	hudHeight    = 3 // Title, stats, spacer
	footerHeight = 2 // Expired-row strip and key hints
	minTileW     = 3
	maxTileW     = 12
	maxTileH     = 4
)

// Layout is the screen geometry of the board. Slot 0 is the top row of the
// board; the tail row is drawn in the bottom slot.
type Layout struct {
	Frame core.Rect // Board including its border
	Board core.Rect // Tile area
	TileW int
	TileH int
	Cols  int
	Rows  int
}

// NewLayout fits a cols x rows board into a screen of the given size.
// Columns are separated by one-cell gaps.
func NewLayout(screenW, screenH, cols, rows int) Layout {
	l := Layout{Cols: cols, Rows: rows}
	if cols <= 0 || rows <= 0 {
		return l
	}

	l.TileW = core.Clamp((screenW-2-(cols-1))/cols, minTileW, maxTileW)
	l.TileH = core.Clamp((screenH-hudHeight-footerHeight-2)/rows, 1, maxTileH)

	innerW := cols*l.TileW + (cols - 1)
	innerH := rows * l.TileH
	x := max(0, (screenW-innerW-2)/2)

	l.Frame = core.NewRect(x, hudHeight, innerW+2, innerH+2)
	l.Board = core.NewRect(x+1, hudHeight+1, innerW, innerH)
	return l
}

// TileRect returns the screen area of the tile at (slot, col).
func (l Layout) TileRect(slot, col int) core.Rect {
	return core.NewRect(l.Board.X+col*(l.TileW+1), l.Board.Y+slot*l.TileH, l.TileW, l.TileH)
}

// HitTest maps screen coordinates to a board slot and column.
// Points on column gaps or outside the board miss.
func (l Layout) HitTest(x, y int) (slot, col int, ok bool) {
	if l.TileW <= 0 || l.TileH <= 0 || !l.Board.Contains(x, y) {
		return 0, 0, false
	}
	dx := x - l.Board.X
	if dx%(l.TileW+1) == l.TileW {
		return 0, 0, false
	}
	return (y - l.Board.Y) / l.TileH, dx / (l.TileW + 1), true
}

// GapX returns the x-coordinate of the gap to the left of col.
func (l Layout) GapX(col int) int {
	return l.Board.X + col*(l.TileW+1) - 1
}
