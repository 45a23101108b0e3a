// Package highscore keeps the best result per mode and persists it through a
// key-value store. Storage faults are logged and never reach the caller.
package highscore

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

// StorageKey is the key the table is stored under.
const StorageKey = "pianoTilesHighScores"

// record is the persisted form. A Classic best of +Inf ("no record") is
// stored as null because JSON has no infinity.
type record struct {
	Classic *float64 `json:"CLASSIC"`
	Arcade  float64  `json:"ARCADE"`
	Zen     float64  `json:"ZEN"`
	Rush    float64  `json:"RUSH"`
}

// Defaults returns the table used before anything has been recorded.
func Defaults() map[tiles.Mode]float64 {
	return map[tiles.Mode]float64{
		tiles.ModeClassic: math.Inf(1),
		tiles.ModeArcade:  0,
		tiles.ModeZen:     0,
		tiles.ModeRush:    0,
	}
}

// Ledger implements tiles.Ledger. Safe for concurrent use by several engines.
type Ledger struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger
	best   map[tiles.Mode]float64
}

var _ tiles.Ledger = (*Ledger)(nil)

// Open loads the table from kv. Missing or unreadable data yields defaults.
func Open(kv KV, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if kv == nil {
		kv = NewMemoryKV()
	}
	l := &Ledger{kv: kv, logger: logger, best: Defaults()}

	data, err := kv.Get(StorageKey)
	switch {
	case errors.Is(err, ErrNotFound):
		return l
	case err != nil:
		logger.Warn("cannot read high scores, using defaults", "error", err)
		return l
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		logger.Warn("cannot decode high scores, using defaults", "error", err)
		return l
	}
	if rec.Classic != nil && valid(*rec.Classic) && *rec.Classic > 0 {
		l.best[tiles.ModeClassic] = *rec.Classic
	}
	for m, v := range map[tiles.Mode]float64{
		tiles.ModeArcade: rec.Arcade,
		tiles.ModeZen:    rec.Zen,
		tiles.ModeRush:   rec.Rush,
	} {
		if valid(v) && v >= 0 {
			l.best[m] = v
		}
	}
	return l
}

// Record stores metric when it beats the current best for mode.
// Classic ranks lower times higher; the other modes rank higher tap counts higher.
func (l *Ledger) Record(mode tiles.Mode, metric float64) bool {
	if !valid(metric) || metric < 0 {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	best, ok := l.best[mode]
	if !ok {
		return false
	}
	if mode.LowerIsBetter() {
		if metric >= best {
			return false
		}
	} else if metric <= best {
		return false
	}

	l.best[mode] = metric
	if err := l.save(); err != nil {
		// In-memory best stays updated for the rest of the process.
		l.logger.Warn("cannot save high scores", "mode", mode, "error", err)
	}
	return true
}

// Best returns the stored best for mode. ok is false when nothing has been recorded.
func (l *Ledger) Best(mode tiles.Mode) (float64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.best[mode]
	if !ok || math.IsInf(v, 1) || v == 0 {
		return v, false
	}
	return v, true
}

// All returns a copy of the table.
func (l *Ledger) All() map[tiles.Mode]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[tiles.Mode]float64, len(l.best))
	for m, v := range l.best {
		out[m] = v
	}
	return out
}

// Reset restores defaults and persists them.
func (l *Ledger) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.best = Defaults()
	return l.save()
}

// save writes the table. Callers hold l.mu.
func (l *Ledger) save() error {
	rec := record{
		Arcade: l.best[tiles.ModeArcade],
		Zen:    l.best[tiles.ModeZen],
		Rush:   l.best[tiles.ModeRush],
	}
	if c := l.best[tiles.ModeClassic]; !math.IsInf(c, 1) {
		rec.Classic = &c
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return l.kv.Set(StorageKey, data)
}

// Format renders a best value for display, "--" when there is none.
func Format(mode tiles.Mode, v float64) string {
	if math.IsInf(v, 1) || (!mode.LowerIsBetter() && v == 0) {
		return "--"
	}
	metric := tiles.MetricTaps
	if mode.LowerIsBetter() {
		metric = tiles.MetricTime
	}
	return tiles.FormatMetric(metric, v)
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
