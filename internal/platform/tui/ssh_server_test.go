package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/audio"
	"github.com/vovakirdan/tui-tiles/internal/highscore"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

func TestSSHSessionsShareLedger(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	t.Cleanup(func() { srv.Shutdown() })

	alice := srv.sessionOptions("alice", 80, 24)
	bob := srv.sessionOptions("bob", 100, 30)

	if alice.Ledger != bob.Ledger || alice.Store != bob.Store {
		t.Fatal("sessions should share the ledger and the store")
	}
	if _, ok := alice.Sound.(audio.Nop); !ok {
		t.Errorf("remote sound = %T, expected audio.Nop", alice.Sound)
	}
	if bob.Runtime.ScreenW != 100 || bob.Runtime.ScreenH != 30 {
		t.Errorf("runtime = %+v, expected PTY size", bob.Runtime)
	}

	alice.Ledger.Record(tiles.ModeZen, 31)
	if v, ok := bob.Ledger.Best(tiles.ModeZen); !ok || highscore.Format(tiles.ModeZen, v) != "31" {
		t.Errorf("bob sees zen best = %v (ok=%v), expected 31", v, ok)
	}

	a, b := NewModel(alice), NewModel(bob)
	if a.engine == b.engine {
		t.Error("each session needs its own engine")
	}
}
