package tiles

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tiles/internal/config"
)

// Mode selects the rule set of a session.
type Mode int

const (
	ModeClassic Mode = iota
	ModeArcade
	ModeZen
	ModeRush
)

// AllModes returns every mode in menu order.
func AllModes() []Mode {
	return []Mode{ModeClassic, ModeArcade, ModeZen, ModeRush}
}

// String returns the mode identifier used for storage keys and flags.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeArcade:
		return "arcade"
	case ModeZen:
		return "zen"
	case ModeRush:
		return "rush"
	default:
		return "unknown"
	}
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeArcade:
		return "Arcade"
	case ModeZen:
		return "Zen"
	case ModeRush:
		return "Rush"
	default:
		return "Unknown"
	}
}

// Description returns the two-line menu card text.
func (m Mode) Description() (string, string) {
	switch m {
	case ModeClassic:
		return "Tap 50 tiles", "Fastest wins"
	case ModeArcade:
		return "Endless", "Increasing speed"
	case ModeZen:
		return "30 Seconds", "Max score"
	case ModeRush:
		return "Endless", "Auto-accelerating"
	default:
		return "", ""
	}
}

// LowerIsBetter reports whether smaller results rank higher for this mode.
func (m Mode) LowerIsBetter() bool {
	return m == ModeClassic
}

// ParseMode converts an identifier or title to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic":
		return ModeClassic, nil
	case "arcade":
		return ModeArcade, nil
	case "zen":
		return ModeZen, nil
	case "rush":
		return ModeRush, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (expected classic, arcade, zen, or rush)", s)
	}
}

// Metric is what a session's result measures.
type Metric int

const (
	MetricTaps Metric = iota // Number of correct taps
	MetricTime               // Seconds to reach the target
)

// Display selects the primary HUD figure.
type Display int

const (
	DisplayScore     Display = iota // Tap count
	DisplayProgress                 // Tap count out of the target
	DisplayCountdown                // Time remaining
)

// Policy is the complete rule set for one mode.
type Policy struct {
	Mode          Mode
	InitialSpeed  time.Duration
	MinSpeed      time.Duration
	HitDrop       time.Duration // Interval reduction per hit
	AutoDrop      time.Duration // Interval reduction per auto tick
	AutoInterval  time.Duration // Auto tick cadence, 0 disables
	Target        int           // Hits that win, 0 means none
	TimeLimit     time.Duration // Elapsed time that wins, 0 means none
	LossOnMiss    bool
	LossOnExpire  bool
	Metric        Metric
	LowerIsBetter bool
	Display       Display
	ShowRate      bool // HUD shows the speed multiplier
}

// PolicyFor builds the policy for m from configuration.
func PolicyFor(cfg config.TilesConfig, m Mode) Policy {
	var mc config.ModeConfig
	p := Policy{Mode: m, MinSpeed: config.Ms(cfg.Speed.MinMs)}

	switch m {
	case ModeClassic:
		mc = cfg.Modes.Classic
		p.Metric = MetricTime
		p.Display = DisplayProgress
		p.Target = mc.Target
	case ModeArcade:
		mc = cfg.Modes.Arcade
		p.Display = DisplayScore
		p.ShowRate = true
	case ModeZen:
		mc = cfg.Modes.Zen
		p.Display = DisplayCountdown
		p.TimeLimit = config.Ms(mc.TimeLimitMs)
	case ModeRush:
		mc = cfg.Modes.Rush
		p.Display = DisplayScore
		p.ShowRate = true
	}

	p.LowerIsBetter = m.LowerIsBetter()
	p.InitialSpeed = config.Ms(mc.InitialSpeedMs)
	p.HitDrop = config.Ms(mc.HitDropMs)
	p.AutoDrop = config.Ms(mc.AutoDropMs)
	p.AutoInterval = config.Ms(mc.AutoIntervalMs)
	p.LossOnMiss = mc.LossOnMiss
	p.LossOnExpire = mc.LossOnExpire
	return p
}

// Better reports whether candidate beats best under this policy's ordering.
func (p Policy) Better(candidate, best float64) bool {
	if p.LowerIsBetter {
		return candidate < best
	}
	return candidate > best
}
