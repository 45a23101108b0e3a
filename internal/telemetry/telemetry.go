// Package telemetry provides tiles.Telemetry sinks.
package telemetry

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

// LogSink writes every event as a structured log line.
type LogSink struct {
	logger *log.Logger
	player string
}

var _ tiles.Telemetry = (*LogSink)(nil)

// NewLogSink creates a sink writing to logger. player tags every line and may
// be empty.
func NewLogSink(logger *log.Logger, player string) *LogSink {
	return &LogSink{logger: logger, player: player}
}

// Emit logs ev at info level.
func (s *LogSink) Emit(ev tiles.Event) {
	if s.logger == nil {
		return
	}
	kv := []any{"mode", ev.Mode.String(), "score", ev.Score}
	if ev.HasMetric {
		kv = append(kv, "metric", ev.Metric)
	}
	if s.player != "" {
		kv = append(kv, "player", s.player)
	}
	s.logger.Info(ev.Name, kv...)
}

// Nop discards events.
type Nop struct{}

// Emit does nothing.
func (Nop) Emit(tiles.Event) {}

// Multi fans events out to several sinks.
type Multi []tiles.Telemetry

// Emit forwards ev to every non-nil sink.
func (m Multi) Emit(ev tiles.Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(ev)
		}
	}
}

// Counter tallies events by name.
type Counter struct {
	counts map[string]int
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Emit counts ev.
func (c *Counter) Emit(ev tiles.Event) {
	c.counts[ev.Name]++
}

// Count returns how many events named name were seen.
func (c *Counter) Count(name string) int {
	return c.counts[name]
}
