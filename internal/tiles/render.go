package tiles

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Visual characters for rendering
const (
	TileChar     = '█'
	DoneChar     = '░'
	MissedChar   = '▓'
	BlankChar    = ' '
	GapChar      = '│'
	DividerChar  = '─'
	TitleText    = "PIANO TILES"
	MenuSubtitle = "Choose a mode to start"
)

// Render draws the current state to the screen and updates the layout used
// for hit-testing Point locators.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()
	e.layout = NewLayout(dst.Width(), dst.Height(), e.cfg.Board.Columns, e.board.Bound())
	snap := e.Snapshot()

	e.drawHUD(dst, snap)
	e.drawBoard(dst, snap)
	e.drawFooter(dst, snap)

	switch snap.Status {
	case StatusMenu:
		drawCenteredMessage(dst, core.ColorBrightWhite, TitleText, MenuSubtitle)
	case StatusCountdown:
		label := "GO!"
		if snap.Countdown > 0 {
			label = strconv.Itoa(snap.Countdown)
		}
		drawCenteredMessage(dst, core.ColorYellow, label, snap.Mode.Title())
	case StatusGameOver:
		e.drawGameOver(dst, snap)
	}
}

func (e *Engine) drawHUD(dst *core.Screen, snap Snapshot) {
	w := dst.Width()

	dst.DrawTextColored(2, 0, TitleText, core.ColorBrightWhite)
	if snap.Status != StatusMenu {
		dst.DrawTextColored(2+len(TitleText), 0, " · "+snap.Mode.Title(), core.ColorCyan)
	}
	if snap.HasBest && snap.Status != StatusMenu {
		best := "Best: " + FormatMetric(snap.Policy.Metric, snap.Best)
		dst.DrawTextColored(w-len(best)-2, 0, best, core.ColorYellow)
	}
	if snap.Status == StatusMenu {
		return
	}

	stats := []string{}
	switch snap.Policy.Display {
	case DisplayProgress:
		stats = append(stats, fmt.Sprintf("%d/%d", snap.Score, snap.Policy.Target))
	default:
		stats = append(stats, fmt.Sprintf("Score %d", snap.Score))
	}
	if snap.Policy.Display == DisplayCountdown {
		stats = append(stats, fmt.Sprintf("Time %.2f", snap.Remaining.Seconds()))
	} else {
		stats = append(stats, fmt.Sprintf("Time %.2fs", snap.Elapsed.Seconds()))
	}
	if snap.Policy.ShowRate {
		stats = append(stats, fmt.Sprintf("Speed %.1fx", snap.Rate))
	}
	dst.DrawTextColored(2, 1, strings.Join(stats, "   "), core.ColorDefault)
	dst.DrawHLine(0, 2, w, DividerChar, core.ColorGray)
}

func (e *Engine) drawBoard(dst *core.Screen, snap Snapshot) {
	l := e.layout
	cols := e.cfg.Board.Columns

	// Empty slots above a partly filled board stay blank.
	offset := snap.Bound - len(snap.Rows)
	for slot := 0; slot < offset; slot++ {
		for col := 0; col < cols; col++ {
			dst.DrawRect(l.TileRect(slot, col), BlankChar, core.ColorTileBlank)
		}
	}
	for i, row := range snap.Rows {
		for col := 0; col < cols; col++ {
			ch, c := tileGlyph(row, col)
			dst.DrawRect(l.TileRect(offset+i, col), ch, c)
		}
	}

	for col := 1; col < cols; col++ {
		dst.DrawVLine(l.GapX(col), l.Board.Y, l.Board.H, GapChar, core.ColorGray)
	}
	dst.DrawBox(l.Frame, core.ColorGray)

	// Key hints sit on the tappable row.
	if snap.Status == StatusPlaying || snap.Status == StatusCountdown {
		tail := snap.Bound - 1
		for col, key := range e.cfg.Board.Keys {
			if col >= cols || key == "" {
				break
			}
			r := l.TileRect(tail, col)
			cx, cy := r.Center()
			c := core.ColorTileBlank
			if len(snap.Rows) > 0 {
				_, c = tileGlyph(snap.Rows[len(snap.Rows)-1], col)
			}
			dst.SetColored(cx, cy, unicode.ToUpper([]rune(key)[0]), c)
		}
	}

	// The row that timed out is drawn just below the board.
	if snap.HasExpired && snap.Status == StatusGameOver {
		y := l.Frame.Bottom()
		r := l.TileRect(0, snap.Expired.CorrectIndex)
		dst.DrawRect(core.NewRect(r.X, y, r.W, 1), MissedChar, core.ColorTileMissed)
	}
}

// tileGlyph returns how a tile is drawn.
func tileGlyph(row Row, col int) (rune, core.Color) {
	switch {
	case col == row.CorrectIndex && row.Resolved:
		return DoneChar, core.ColorTileDone
	case col == row.CorrectIndex:
		return TileChar, core.ColorTile
	case row.Missed && col == row.MissedIndex:
		return MissedChar, core.ColorTileMissed
	default:
		return BlankChar, core.ColorTileBlank
	}
}

func (e *Engine) drawFooter(dst *core.Screen, snap Snapshot) {
	var hint string
	switch snap.Status {
	case StatusPlaying, StatusCountdown:
		keys := make([]string, 0, len(e.cfg.Board.Keys))
		for _, k := range e.cfg.Board.Keys {
			keys = append(keys, strings.ToUpper(k))
		}
		hint = strings.Join(keys, " ") + " tap  ·  B menu  ·  Q quit"
	case StatusGameOver:
		hint = "R retry  ·  B menu  ·  Q quit"
	default:
		return
	}
	dst.DrawTextCentered(dst.Height()-1, hint, core.ColorGray)
}

func (e *Engine) drawGameOver(dst *core.Screen, snap Snapshot) {
	res := snap.Result
	title, c := "GAME OVER", core.ColorRed
	if res.Success {
		title, c = "CLEAR!", core.ColorGreen
		if res.Reason == ReasonTimeUp {
			title = "TIME UP"
		}
	}

	lines := []string{title}
	if !res.Success {
		lines = append(lines, res.Reason.String())
	}

	switch {
	case snap.Policy.Metric == MetricTime && res.HasMetric:
		lines = append(lines, "Time "+FormatMetric(MetricTime, res.Metric))
	case snap.Policy.Display == DisplayProgress:
		lines = append(lines, fmt.Sprintf("Score %d/%d", res.Score, snap.Policy.Target))
	default:
		lines = append(lines, fmt.Sprintf("Score %d", res.Score))
	}

	switch {
	case res.IsNewRecord:
		lines = append(lines, "NEW RECORD!")
	case snap.HasBest:
		lines = append(lines, "Best "+FormatMetric(snap.Policy.Metric, snap.Best))
	}

	drawCenteredMessage(dst, c, lines...)
}

// FormatMetric renders a result value for display.
func FormatMetric(m Metric, v float64) string {
	if m == MetricTime {
		return fmt.Sprintf("%.2fs", v)
	}
	return strconv.Itoa(int(v))
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title; the rest follow with a blank line between each.
func drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	if len(lines) == 0 {
		return
	}
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := 0
	for _, line := range lines {
		boxW = max(boxW, len([]rune(line)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, line := range lines {
		lc := core.ColorDefault
		if i == 0 {
			lc = c
		}
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(x, boxY+1+2*i, line, lc)
	}
}
