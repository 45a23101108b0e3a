package tiles

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
)

func TestLayoutFitsStandardTerminal(t *testing.T) {
	l := NewLayout(80, 24, 4, 5)

	if l.TileW != 12 || l.TileH != 3 {
		t.Errorf("tile = %dx%d, expected 12x3", l.TileW, l.TileH)
	}
	if l.Board != core.NewRect(14, 4, 51, 15) {
		t.Errorf("Board = %+v", l.Board)
	}
	if l.Frame.Bottom() > 24-footerHeight+1 {
		t.Errorf("frame bottom %d leaves no room for the footer", l.Frame.Bottom())
	}
}

func TestLayoutHitTest(t *testing.T) {
	l := NewLayout(80, 24, 4, 5)

	tests := []struct {
		name       string
		x, y       int
		slot, col  int
		expectedOK bool
	}{
		{"top-left tile", 14, 4, 0, 0, true},
		{"last cell of col 0", 25, 6, 0, 0, true},
		{"gap after col 0", 26, 6, 0, 0, false},
		{"first cell of col 1", 27, 7, 1, 1, true},
		{"bottom-right tile", 64, 18, 4, 3, true},
		{"below board", 64, 19, 0, 0, false},
		{"left border", 13, 10, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slot, col, ok := l.HitTest(tc.x, tc.y)
			if ok != tc.expectedOK {
				t.Fatalf("HitTest(%d, %d) ok = %v, expected %v", tc.x, tc.y, ok, tc.expectedOK)
			}
			if ok && (slot != tc.slot || col != tc.col) {
				t.Errorf("HitTest(%d, %d) = (%d, %d), expected (%d, %d)", tc.x, tc.y, slot, col, tc.slot, tc.col)
			}
		})
	}
}

func TestLayoutTileRectRoundTrip(t *testing.T) {
	l := NewLayout(120, 40, 4, 5)
	for slot := 0; slot < 5; slot++ {
		for col := 0; col < 4; col++ {
			cx, cy := l.TileRect(slot, col).Center()
			s, c, ok := l.HitTest(cx, cy)
			if !ok || s != slot || c != col {
				t.Errorf("center of (%d, %d) hit-tests to (%d, %d, %v)", slot, col, s, c, ok)
			}
		}
	}
}

func TestLayoutDegenerate(t *testing.T) {
	l := NewLayout(10, 5, 0, 5)
	if _, _, ok := l.HitTest(1, 1); ok {
		t.Error("zero-column layout should never hit")
	}
}

func TestRenderStates(t *testing.T) {
	h := newHarness(t, config.DefaultTilesConfig())
	screen := core.NewScreen(80, 24)

	h.e.Render(screen)
	if !strings.Contains(screen.String(), MenuSubtitle) {
		t.Error("menu render should prompt for a mode")
	}

	h.e.SelectMode(ModeClassic)
	h.e.Render(screen)
	if !strings.Contains(screen.String(), "3") {
		t.Error("countdown render should show the step")
	}

	h.start(t, ModeClassic)
	h.e.Render(screen)
	hud := screen.Row(1)
	if !strings.Contains(hud, "0/50") || !strings.Contains(hud, "Time") {
		t.Errorf("classic HUD = %q, expected progress and time", hud)
	}
	if !strings.ContainsRune(screen.String(), TileChar) {
		t.Error("board should contain black tiles")
	}
	if !strings.Contains(screen.Row(23), "D F J K") {
		t.Errorf("footer = %q, expected key hints", screen.Row(23))
	}

	// Black tiles are coloured as tiles.
	row, _ := h.e.board.Tail()
	r := h.e.Layout().TileRect(h.e.board.Bound()-1, row.CorrectIndex)
	if c := screen.GetCell(r.X, r.Y); c.Color != core.ColorTile {
		t.Errorf("tail tile colour = %v, expected tile", c.Color)
	}

	h.miss(t)
	h.e.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Wrong tile") {
		t.Error("game over render should show the reason")
	}
	if !strings.Contains(screen.Row(23), "R retry") {
		t.Errorf("footer = %q, expected retry hint", screen.Row(23))
	}
}

func TestRenderArcadeShowsRate(t *testing.T) {
	h := newHarness(t, config.DefaultTilesConfig())
	screen := core.NewScreen(80, 24)
	h.start(t, ModeArcade)
	h.e.Render(screen)

	if hud := screen.Row(1); !strings.Contains(hud, "Speed 1.0x") || !strings.Contains(hud, "Score 0") {
		t.Errorf("arcade HUD = %q", hud)
	}
}

func TestRenderZenShowsRemaining(t *testing.T) {
	h := newHarness(t, config.DefaultTilesConfig())
	screen := core.NewScreen(80, 24)
	h.start(t, ModeZen)
	h.e.Render(screen)

	if hud := screen.Row(1); !strings.Contains(hud, "Time 30.00") {
		t.Errorf("zen HUD = %q, expected remaining time", hud)
	}
}

func TestFormatMetric(t *testing.T) {
	if got := FormatMetric(MetricTime, 12.34); got != "12.34s" {
		t.Errorf("FormatMetric(time) = %q", got)
	}
	if got := FormatMetric(MetricTaps, 37); got != "37" {
		t.Errorf("FormatMetric(taps) = %q", got)
	}
}
