package tiles

import (
	"time"
)

// Sound plays feedback for taps. Calls must return promptly.
type Sound interface {
	PlayHit()
	PlayMiss()
}

// Telemetry receives lifecycle events.
type Telemetry interface {
	Emit(Event)
}

// Ledger records session results and reports personal bests.
type Ledger interface {
	// Record stores metric for mode and reports whether it is a new best.
	Record(mode Mode, metric float64) bool
	// Best returns the stored best for mode, if any.
	Best(mode Mode) (float64, bool)
}

// Event names emitted to Telemetry.
const (
	EventModeSelect = "mode_select"
	EventGameStart  = "game_start"
	EventGameRetry  = "game_retry"
	EventComplete   = "game_complete"
	EventFail       = "game_fail"
	EventNewRecord  = "new_record"
	EventBackToHome = "back_to_home"
)

// Event is a telemetry record.
type Event struct {
	Name      string
	Mode      Mode
	Score     int
	Metric    float64
	HasMetric bool
	At        time.Time
}

type nopSound struct{}

func (nopSound) PlayHit()  {}
func (nopSound) PlayMiss() {}

type nopTelemetry struct{}

func (nopTelemetry) Emit(Event) {}

type nopLedger struct{}

func (nopLedger) Record(Mode, float64) bool { return false }
func (nopLedger) Best(Mode) (float64, bool) { return 0, false }

// guard runs fn and swallows any panic so collaborator faults never reach
// the game loop.
func guard(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
