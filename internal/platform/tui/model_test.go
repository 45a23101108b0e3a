package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/clock"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/highscore"
	"github.com/vovakirdan/tui-tiles/internal/storage"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

type testEnv struct {
	store  *storage.Store
	ledger *highscore.Ledger
	shots  string
}

func newTestModel(t *testing.T, opts Options) (Model, testEnv) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tiles.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	env := testEnv{store: store, ledger: highscore.Open(store, nil), shots: t.TempDir()}

	cfg := config.DefaultTilesConfig()
	cfg.Timing.CountdownSteps = 0
	opts.Tiles = cfg
	opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 100, Seed: 7}
	opts.Store = store
	opts.Ledger = env.ledger
	opts.Clock = clock.NewManual(time.Unix(1000, 0))
	opts.ScreenshotDir = env.shots

	return NewModel(opts), env
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tailKeys(t *testing.T, m Model) (right, wrong tea.KeyMsg) {
	t.Helper()
	snap := m.engine.Snapshot()
	if len(snap.Rows) == 0 {
		t.Fatal("board is empty")
	}
	tail := snap.Rows[len(snap.Rows)-1]
	keys := m.engine.Keys()
	return runeKey(keys[tail.CorrectIndex]), runeKey(keys[(tail.CorrectIndex+1)%len(keys)])
}

func TestModelSavesRunOncePerSession(t *testing.T) {
	m, env := newTestModel(t, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.Status() != tiles.StatusPlaying || m.engine.Mode() != tiles.ModeClassic {
		t.Fatalf("status = %v mode = %v, expected playing classic", m.engine.Status(), m.engine.Mode())
	}

	_, wrong := tailKeys(t, m)
	m, _ = send(t, m, wrong)
	if m.engine.Status() != tiles.StatusGameOver {
		t.Fatalf("status = %v, expected game over", m.engine.Status())
	}
	m, _ = send(t, m, TickMsg(time.Now()))
	m, _ = send(t, m, TickMsg(time.Now()))

	runs, err := env.store.RecentRuns(tiles.ModeClassic, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Success {
		t.Fatalf("runs = %+v, expected one failed run", runs)
	}

	m, _ = send(t, m, runeKey("r"))
	if m.engine.Status() != tiles.StatusPlaying {
		t.Fatalf("status after retry = %v", m.engine.Status())
	}
	_, wrong = tailKeys(t, m)
	m, _ = send(t, m, wrong)
	send(t, m, TickMsg(time.Now()))

	runs, _ = env.store.RecentRuns(tiles.ModeClassic, 10)
	if len(runs) != 2 {
		t.Errorf("expected 2 runs after retry, got %d", len(runs))
	}
}

func TestModelMenuNavigation(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.menu.Selected() != tiles.ModeArcade {
		t.Fatalf("selected = %v, expected arcade", m.menu.Selected())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.menu.Selected() != tiles.ModeClassic {
		t.Fatalf("cursor should stop at the top, got %v", m.menu.Selected())
	}

	m, _ = send(t, m, runeKey("j"))
	m, _ = send(t, m, runeKey("j"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.engine.Mode() != tiles.ModeZen || m.engine.Status() != tiles.StatusPlaying {
		t.Fatalf("mode = %v status = %v, expected zen playing", m.engine.Mode(), m.engine.Status())
	}

	m, _ = send(t, m, runeKey("b"))
	if m.engine.Status() != tiles.StatusMenu {
		t.Errorf("status = %v, expected menu", m.engine.Status())
	}
	if m.menu.Selected() != tiles.ModeZen {
		t.Errorf("menu cursor = %v, expected zen kept", m.menu.Selected())
	}
}

func TestModelTileKeysBeatBindings(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// k is both a column key and vim-up; while playing it must tap.
	snap := m.engine.Snapshot()
	tail := snap.Rows[len(snap.Rows)-1]
	m, _ = send(t, m, runeKey("k"))

	want := 0
	if tail.CorrectIndex == 3 {
		want = 1
	}
	if got := m.engine.Snapshot().Score; got != want {
		t.Errorf("score = %d, expected %d", got, want)
	}
}

func TestModelMouseTap(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	snap := m.engine.Snapshot()
	tail := snap.Rows[len(snap.Rows)-1]
	rect := m.engine.Layout().TileRect(snap.Bound-1, tail.CorrectIndex)
	x, y := rect.Center()

	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.engine.Snapshot().Score; got != 1 {
		t.Errorf("score after click = %d, expected 1", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Fatal("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelScoreboard(t *testing.T) {
	m, env := newTestModel(t, Options{})
	env.store.SaveRun(storage.Run{Mode: tiles.ModeArcade, Score: 77})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Classic") {
		t.Errorf("scoreboard view missing title:\n%s", m.View())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	if !strings.Contains(view, "Arcade") || !strings.Contains(view, "77") {
		t.Errorf("arcade page missing run:\n%s", view)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
	if m.engine.Status() != tiles.StatusMenu {
		t.Errorf("status = %v, expected menu", m.engine.Status())
	}
}

func TestModelMenuShowsBest(t *testing.T) {
	m, env := newTestModel(t, Options{})
	env.ledger.Record(tiles.ModeArcade, 42)

	view := m.View()
	if !strings.Contains(view, "Best 42") {
		t.Errorf("menu missing arcade best:\n%s", view)
	}
	if !strings.Contains(view, "Best --") {
		t.Errorf("menu missing empty best:\n%s", view)
	}
}

func TestModelDirectStart(t *testing.T) {
	m, _ := newTestModel(t, Options{StartMode: tiles.ModeRush, Direct: true})

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule a tick")
	}
	if m.engine.Status() != tiles.StatusPlaying || m.engine.Mode() != tiles.ModeRush {
		t.Errorf("status = %v mode = %v, expected rush playing", m.engine.Status(), m.engine.Mode())
	}
	if m.menu.Selected() != tiles.ModeRush {
		t.Errorf("menu cursor = %v, expected rush", m.menu.Selected())
	}
	if !strings.Contains(m.View(), tiles.TitleText) {
		t.Error("board view should show the title bar")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, env := newTestModel(t, Options{})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(env.shots)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "tiles_classic_") {
		t.Fatalf("screenshots = %v", entries)
	}
	data, _ := os.ReadFile(filepath.Join(env.shots, entries[0].Name()))
	if !strings.Contains(string(data), tiles.TitleText) {
		t.Errorf("screenshot missing title:\n%s", data)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "hi", core.ColorGreen)
	s.SetColored(0, 1, tiles.TileChar, core.ColorTile)

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, string(tiles.TileChar)) {
		t.Errorf("RenderScreen lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
