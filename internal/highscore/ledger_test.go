package highscore

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

type failingKV struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingKV) Get(string) ([]byte, error) { return nil, f.getErr }

func (f *failingKV) Set(string, []byte) error {
	f.sets++
	return f.setErr
}

func TestDefaults(t *testing.T) {
	l := Open(NewMemoryKV(), nil)

	if v := l.All()[tiles.ModeClassic]; !math.IsInf(v, 1) {
		t.Errorf("classic default = %v, expected +Inf", v)
	}
	for _, m := range []tiles.Mode{tiles.ModeArcade, tiles.ModeZen, tiles.ModeRush} {
		if v := l.All()[m]; v != 0 {
			t.Errorf("%s default = %v, expected 0", m, v)
		}
		if _, ok := l.Best(m); ok {
			t.Errorf("%s should have no best yet", m)
		}
	}
}

func TestClassicLowerIsBetter(t *testing.T) {
	l := Open(NewMemoryKV(), nil)

	steps := []struct {
		metric float64
		isNew  bool
		best   float64
	}{
		{12.34, true, 12.34}, // first successful completion always counts
		{15.00, false, 12.34},
		{12.34, false, 12.34}, // ties are not records
		{10.00, true, 10.00},
	}

	for i, s := range steps {
		if got := l.Record(tiles.ModeClassic, s.metric); got != s.isNew {
			t.Errorf("step %d: Record(%v) = %v, expected %v", i, s.metric, got, s.isNew)
		}
		if best, _ := l.Best(tiles.ModeClassic); best != s.best {
			t.Errorf("step %d: best = %v, expected %v", i, best, s.best)
		}
	}
}

func TestTapModesHigherIsBetter(t *testing.T) {
	for _, m := range []tiles.Mode{tiles.ModeArcade, tiles.ModeZen, tiles.ModeRush} {
		l := Open(NewMemoryKV(), nil)

		if l.Record(m, 0) {
			t.Errorf("%s: zero taps should not be a record", m)
		}
		if !l.Record(m, 37) {
			t.Errorf("%s: 37 should be a record", m)
		}
		if l.Record(m, 20) {
			t.Errorf("%s: 20 should not beat 37", m)
		}
		if !l.Record(m, 38) {
			t.Errorf("%s: 38 should beat 37", m)
		}
		if best, ok := l.Best(m); !ok || best != 38 {
			t.Errorf("%s: best = %v (ok=%v), expected 38", m, best, ok)
		}
	}
}

func TestRejectsInvalidMetrics(t *testing.T) {
	l := Open(NewMemoryKV(), nil)
	for _, v := range []float64{math.NaN(), math.Inf(1), -1} {
		if l.Record(tiles.ModeClassic, v) || l.Record(tiles.ModeArcade, v) {
			t.Errorf("metric %v should be rejected", v)
		}
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	kv := NewMemoryKV()
	l := Open(kv, nil)
	l.Record(tiles.ModeZen, 91)

	data, err := kv.Get(StorageKey)
	if err != nil {
		t.Fatalf("nothing persisted: %v", err)
	}
	// No classic record yet: stored as null.
	if !strings.Contains(string(data), `"CLASSIC":null`) {
		t.Errorf("persisted = %s, expected null classic", data)
	}

	l.Record(tiles.ModeClassic, 21.5)
	reopened := Open(kv, nil)
	if best, ok := reopened.Best(tiles.ModeClassic); !ok || best != 21.5 {
		t.Errorf("reopened classic = %v (ok=%v), expected 21.5", best, ok)
	}
	if best, ok := reopened.Best(tiles.ModeZen); !ok || best != 91 {
		t.Errorf("reopened zen = %v (ok=%v), expected 91", best, ok)
	}
}

func TestWritesOnlyOnImprovement(t *testing.T) {
	kv := &failingKV{getErr: ErrNotFound}
	l := Open(kv, nil)

	l.Record(tiles.ModeArcade, 10)
	l.Record(tiles.ModeArcade, 5)
	l.Record(tiles.ModeArcade, 10)
	if kv.sets != 1 {
		t.Errorf("Set called %d times, expected 1", kv.sets)
	}
}

func TestDegradesOnStorageFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	kv := &failingKV{getErr: errors.New("disk on fire"), setErr: errors.New("read-only")}
	l := Open(kv, logger)
	if !strings.Contains(buf.String(), "cannot read high scores") {
		t.Errorf("read failure not logged: %q", buf.String())
	}

	if !l.Record(tiles.ModeRush, 12) {
		t.Error("record should succeed in memory when the write fails")
	}
	if best, _ := l.Best(tiles.ModeRush); best != 12 {
		t.Errorf("in-memory best = %v, expected 12", best)
	}
	if !strings.Contains(buf.String(), "cannot save high scores") {
		t.Errorf("write failure not logged: %q", buf.String())
	}
}

func TestCorruptDataFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"wrong types", `{"CLASSIC":"fast","ARCADE":"many"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := NewMemoryKV()
			_ = kv.Set(StorageKey, []byte(tc.data))
			l := Open(kv, nil)
			if _, ok := l.Best(tiles.ModeClassic); ok {
				t.Error("corrupt data should yield no classic record")
			}
		})
	}
}

func TestNegativeStoredValuesIgnored(t *testing.T) {
	kv := NewMemoryKV()
	_ = kv.Set(StorageKey, []byte(`{"CLASSIC":-3,"ARCADE":-1,"ZEN":14,"RUSH":0}`))
	l := Open(kv, nil)

	if _, ok := l.Best(tiles.ModeClassic); ok {
		t.Error("negative classic time should be ignored")
	}
	if v := l.All()[tiles.ModeArcade]; v != 0 {
		t.Errorf("negative arcade best = %v, expected default 0", v)
	}
	if v, _ := l.Best(tiles.ModeZen); v != 14 {
		t.Errorf("zen = %v, expected 14", v)
	}
}

func TestReset(t *testing.T) {
	l := Open(NewMemoryKV(), nil)
	l.Record(tiles.ModeClassic, 9)
	if err := l.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if _, ok := l.Best(tiles.ModeClassic); ok {
		t.Error("reset should clear classic record")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		mode     tiles.Mode
		v        float64
		expected string
	}{
		{tiles.ModeClassic, math.Inf(1), "--"},
		{tiles.ModeClassic, 12.34, "12.34s"},
		{tiles.ModeArcade, 0, "--"},
		{tiles.ModeZen, 55, "55"},
	}
	for _, tc := range tests {
		if got := Format(tc.mode, tc.v); got != tc.expected {
			t.Errorf("Format(%s, %v) = %q, expected %q", tc.mode, tc.v, got, tc.expected)
		}
	}
}
