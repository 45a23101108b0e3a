package tiles

// Locator identifies what the player tapped. The set of implementations is
// closed: Key, Cell, and Point.
type Locator interface {
	locator()
}

// Key is a key press identified by name, mapped to a column through the
// configured key table.
type Key string

// Cell is a tap addressed directly to a board position.
// Row uses the board's newest-first indexing.
type Cell struct {
	Row int
	Col int
}

// Point is a tap at screen coordinates, hit-tested against the current layout.
type Point struct {
	X, Y int
}

func (Key) locator()   {}
func (Cell) locator()  {}
func (Point) locator() {}
