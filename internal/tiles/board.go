package tiles

// Outcome is the result of resolving a tap against the board.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Out of range or already resolved
	OutcomeHit
	OutcomeMiss
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	default:
		return "ignored"
	}
}

// Board holds the visible window of rows, newest first.
// Its length never exceeds Bound(); the tail row is the tappable one.
type Board struct {
	rows  []Row
	bound int
	gen   *Generator
}

// NewBoard creates an empty board showing visible rows plus one buffer row.
func NewBoard(visible int, gen *Generator) *Board {
	return &Board{
		bound: visible + 1,
		gen:   gen,
		rows:  make([]Row, 0, visible+2),
	}
}

// Seed clears the board and inserts n generated rows at the head.
func (b *Board) Seed(n int) {
	b.rows = b.rows[:0]
	for i := 0; i < min(n, b.bound); i++ {
		b.push(b.gen.Next())
	}
}

// Clear removes every row.
func (b *Board) Clear() {
	b.rows = b.rows[:0]
}

// Advance inserts a new row at the head. When that pushes the board past its
// bound the tail row is removed and returned with ok set.
func (b *Board) Advance() (evicted Row, ok bool) {
	b.push(b.gen.Next())
	if len(b.rows) > b.bound {
		last := len(b.rows) - 1
		evicted = b.rows[last]
		b.rows = b.rows[:last]
		return evicted, true
	}
	return Row{}, false
}

// push inserts r at the head.
func (b *Board) push(r Row) {
	b.rows = append(b.rows, Row{})
	copy(b.rows[1:], b.rows)
	b.rows[0] = r
}

// Resolve applies a tap at (rowIndex, col).
// A resolved row ignores further taps, so double taps score once.
func (b *Board) Resolve(rowIndex, col int) Outcome {
	if rowIndex < 0 || rowIndex >= len(b.rows) || col < 0 || col >= b.gen.Columns() {
		return OutcomeIgnored
	}
	row := &b.rows[rowIndex]
	if row.Resolved {
		return OutcomeIgnored
	}
	if col == row.CorrectIndex {
		row.Resolved = true
		return OutcomeHit
	}
	row.Missed = true
	row.MissedIndex = col
	return OutcomeMiss
}

// Tail returns the oldest row, the one about to expire.
func (b *Board) Tail() (Row, bool) {
	if len(b.rows) == 0 {
		return Row{}, false
	}
	return b.rows[len(b.rows)-1], true
}

// TailIndex returns the index of the tail row, or -1 when the board is empty.
func (b *Board) TailIndex() int {
	return len(b.rows) - 1
}

// Rows returns a copy of the rows, newest first.
func (b *Board) Rows() []Row {
	out := make([]Row, len(b.rows))
	copy(out, b.rows)
	return out
}

// Len returns the number of rows on the board.
func (b *Board) Len() int {
	return len(b.rows)
}

// Bound returns the maximum number of rows the board holds.
func (b *Board) Bound() int {
	return b.bound
}
