package tiles

import "time"

// SpeedController owns the row interval. Smaller means faster.
// The interval never drops below the configured floor.
type SpeedController struct {
	initial  time.Duration
	speed    time.Duration
	min      time.Duration
	hitDrop  time.Duration
	autoDrop time.Duration
}

// NewSpeedController creates a controller starting at initial.
func NewSpeedController(initial, floor, hitDrop, autoDrop time.Duration) *SpeedController {
	s := &SpeedController{
		initial:  initial,
		min:      floor,
		hitDrop:  hitDrop,
		autoDrop: autoDrop,
	}
	s.Reset()
	return s
}

// Reset restores the initial interval.
func (s *SpeedController) Reset() {
	s.speed = max(s.initial, s.min)
}

// OnHit shortens the interval after a correct tap.
func (s *SpeedController) OnHit() {
	s.drop(s.hitDrop)
}

// OnAutoTick shortens the interval on the time-based acceleration cadence.
func (s *SpeedController) OnAutoTick() {
	s.drop(s.autoDrop)
}

func (s *SpeedController) drop(d time.Duration) {
	if d <= 0 {
		return
	}
	s.speed = max(s.min, s.speed-d)
}

// Current returns the current row interval.
func (s *SpeedController) Current() time.Duration {
	return s.speed
}

// Initial returns the interval the controller was reset to.
func (s *SpeedController) Initial() time.Duration {
	return s.initial
}

// Rate returns how many times faster than the start the rows now move.
func (s *SpeedController) Rate() float64 {
	if s.speed <= 0 {
		return 1
	}
	return float64(s.initial) / float64(s.speed)
}
