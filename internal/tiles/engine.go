package tiles

import (
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tiles/internal/clock"
	"github.com/vovakirdan/tui-tiles/internal/config"
)

// Status is the session state.
type Status int

const (
	StatusMenu Status = iota
	StatusCountdown
	StatusPlaying
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusCountdown:
		return "countdown"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reason explains why a session ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonTargetReached
	ReasonTimeUp
	ReasonWrongTile
	ReasonTimedOut
)

// String returns a short human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonTargetReached:
		return "Target reached"
	case ReasonTimeUp:
		return "Time up"
	case ReasonWrongTile:
		return "Wrong tile"
	case ReasonTimedOut:
		return "Too slow"
	default:
		return ""
	}
}

// Result is the terminal outcome of a session.
type Result struct {
	Success     bool
	IsNewRecord bool
	Reason      Reason
	Score       int
	Elapsed     time.Duration
	Metric      float64 // Seconds for time metrics, taps otherwise
	HasMetric   bool    // False when the run produced nothing to record
}

// Deps are the collaborators injected into an Engine. Nil fields fall back
// to no-op implementations and a real clock.
type Deps struct {
	Clock     clock.Clock
	Sound     Sound
	Telemetry Telemetry
	Ledger    Ledger
	Seed      int64
}

// Engine runs one game session at a time.
type Engine struct {
	cfg       config.TilesConfig
	clock     clock.Clock
	sound     Sound
	telemetry Telemetry
	ledger    Ledger

	keys   map[string]int
	board  *Board
	speed  *SpeedController
	policy Policy
	layout Layout

	status     Status
	mode       Mode
	score      int
	start      time.Time
	elapsed    time.Duration
	moveCount  int
	countdown  int
	result     Result
	expired    Row
	hasExpired bool
	generation uint64

	countdownTicker *clock.Ticker
	sampler         *clock.Ticker
	driver          *clock.Ticker
	accel           *clock.Ticker
}

// New creates an engine in the menu state.
func New(cfg config.TilesConfig, deps Deps) *Engine {
	e := &Engine{
		cfg:       cfg,
		clock:     deps.Clock,
		sound:     deps.Sound,
		telemetry: deps.Telemetry,
		ledger:    deps.Ledger,
		keys:      make(map[string]int, len(cfg.Board.Keys)),
		status:    StatusMenu,
	}
	if e.clock == nil {
		e.clock = clock.Real{}
	}
	if e.sound == nil {
		e.sound = nopSound{}
	}
	if e.telemetry == nil {
		e.telemetry = nopTelemetry{}
	}
	if e.ledger == nil {
		e.ledger = nopLedger{}
	}

	for col, k := range cfg.Board.Keys {
		e.keys[strings.ToLower(k)] = col
	}

	e.board = NewBoard(cfg.Board.VisibleRows, NewGenerator(deps.Seed, cfg.Board.Columns))
	e.policy = PolicyFor(cfg, ModeClassic)
	e.speed = NewSpeedController(e.policy.InitialSpeed, e.policy.MinSpeed, e.policy.HitDrop, e.policy.AutoDrop)
	e.layout = NewLayout(80, 24, cfg.Board.Columns, e.board.Bound())

	e.countdownTicker = clock.NewFixed(config.Ms(cfg.Timing.CountdownIntervalMs))
	e.sampler = clock.NewFixed(config.Ms(cfg.Timing.SampleIntervalMs))
	// The row driver reads the live speed on every wakeup.
	e.driver = clock.NewVariable(func() time.Duration { return e.speed.Current() })
	e.accel = clock.NewFixed(0)
	return e
}

// SelectMode starts a new session of mode m from the menu or the game-over screen.
func (e *Engine) SelectMode(m Mode) {
	if e.status != StatusMenu && e.status != StatusGameOver {
		return
	}
	e.emit(EventModeSelect, m)
	e.startSession(m)
}

// Restart plays the same mode again after a session ended.
func (e *Engine) Restart() {
	if e.status != StatusGameOver {
		return
	}
	e.emit(EventGameRetry, e.mode)
	e.startSession(e.mode)
}

// BackToMenu abandons the current session.
func (e *Engine) BackToMenu() {
	if e.status == StatusMenu {
		return
	}
	e.stopAll()
	e.board.Clear()
	e.hasExpired = false
	e.countdown = 0
	e.status = StatusMenu
	e.generation++
	e.emit(EventBackToHome, e.mode)
}

// Close stops every periodic activity. The engine returns to the menu
// without emitting telemetry.
func (e *Engine) Close() {
	e.stopAll()
	e.board.Clear()
	e.status = StatusMenu
	e.generation++
}

// startSession resets all per-session state. Tickers from the previous
// session are stopped before any new state is created.
func (e *Engine) startSession(m Mode) {
	e.stopAll()
	e.generation++

	e.mode = m
	e.policy = PolicyFor(e.cfg, m)
	e.speed = NewSpeedController(e.policy.InitialSpeed, e.policy.MinSpeed, e.policy.HitDrop, e.policy.AutoDrop)
	e.accel = clock.NewFixed(e.policy.AutoInterval)

	e.score = 0
	e.elapsed = 0
	e.moveCount = 0
	e.result = Result{}
	e.expired = Row{}
	e.hasExpired = false
	e.board.Seed(e.cfg.Board.VisibleRows)

	now := e.clock.Now()
	if e.cfg.Timing.CountdownSteps <= 0 {
		e.beginPlaying(now)
		return
	}
	e.status = StatusCountdown
	e.countdown = e.cfg.Timing.CountdownSteps
	e.countdownTicker.Start(now)
}

func (e *Engine) beginPlaying(now time.Time) {
	e.status = StatusPlaying
	e.countdown = 0
	e.start = now
	e.sampler.Start(now)
	e.driver.Start(now)
	if e.policy.AutoInterval > 0 && e.policy.AutoDrop > 0 {
		e.accel.Start(now)
	}
	e.emit(EventGameStart, e.mode)
}

func (e *Engine) stopAll() {
	e.countdownTicker.Stop()
	e.sampler.Stop()
	e.driver.Stop()
	e.accel.Stop()
}

// Tick advances every due periodic activity to the clock's current time.
// Each handler re-checks the status, so work due after a transition is dropped.
func (e *Engine) Tick() {
	now := e.clock.Now()

	switch e.status {
	case StatusCountdown:
		e.tickCountdown(now)
	case StatusPlaying:
		e.tickPlaying(now)
	}
}

func (e *Engine) tickCountdown(now time.Time) {
	if !e.countdownTicker.Due(now) {
		return
	}
	// The final step shows GO before play begins.
	if e.countdown > 0 {
		e.countdown--
		return
	}
	e.countdownTicker.Stop()
	e.beginPlaying(now)
}

func (e *Engine) tickPlaying(now time.Time) {
	if e.status == StatusPlaying && e.sampler.Due(now) {
		e.sample(now)
	}
	if e.status == StatusPlaying && e.accel.Due(now) {
		e.speed.OnAutoTick()
	}
	if e.status == StatusPlaying && e.driver.Due(now) {
		e.advance(now)
	}
}

func (e *Engine) sample(now time.Time) {
	e.elapsed = now.Sub(e.start)
	if e.policy.TimeLimit > 0 && e.elapsed >= e.policy.TimeLimit {
		e.elapsed = e.policy.TimeLimit
		e.finish(true, ReasonTimeUp, now)
	}
}

func (e *Engine) advance(now time.Time) {
	evicted, ok := e.board.Advance()
	e.moveCount++
	if ok && !evicted.Resolved && e.policy.LossOnExpire {
		e.expired = evicted
		e.hasExpired = true
		guard(e.sound.PlayMiss)
		e.finish(false, ReasonTimedOut, now)
	}
}

// ResolveInput applies a tap. Only the tail row accepts taps; anything that
// does not address it, or arrives outside play, is ignored.
func (e *Engine) ResolveInput(loc Locator) Outcome {
	if e.status != StatusPlaying {
		return OutcomeIgnored
	}
	rowIndex, col, ok := e.locate(loc)
	if !ok || e.board.Len() == 0 || rowIndex != e.board.TailIndex() {
		return OutcomeIgnored
	}

	outcome := e.board.Resolve(rowIndex, col)
	switch outcome {
	case OutcomeHit:
		e.score++
		guard(e.sound.PlayHit)
		// Win is checked before speed decay so a hit reaching the target always wins.
		if e.policy.Target > 0 && e.score >= e.policy.Target {
			e.finish(true, ReasonTargetReached, e.clock.Now())
			return outcome
		}
		e.speed.OnHit()
	case OutcomeMiss:
		guard(e.sound.PlayMiss)
		if e.policy.LossOnMiss {
			e.finish(false, ReasonWrongTile, e.clock.Now())
		}
	}
	return outcome
}

// locate maps a locator to a board position.
func (e *Engine) locate(loc Locator) (rowIndex, col int, ok bool) {
	switch l := loc.(type) {
	case Key:
		c, found := e.keys[strings.ToLower(string(l))]
		if !found {
			return 0, 0, false
		}
		return e.board.TailIndex(), c, true
	case Cell:
		return l.Row, l.Col, true
	case Point:
		slot, c, hit := e.layout.HitTest(l.X, l.Y)
		if !hit {
			return 0, 0, false
		}
		// Rows fill the board from the bottom slot upward.
		idx := slot - (e.board.Bound() - e.board.Len())
		return idx, c, idx >= 0
	}
	return 0, 0, false
}

// finish moves the session to GAME_OVER and records the result once.
func (e *Engine) finish(success bool, reason Reason, now time.Time) {
	if e.status != StatusPlaying {
		return
	}
	e.stopAll()
	e.status = StatusGameOver

	if reason != ReasonTimeUp {
		e.elapsed = now.Sub(e.start)
	}

	res := Result{
		Success: success,
		Reason:  reason,
		Score:   e.score,
		Elapsed: e.elapsed,
	}
	switch e.policy.Metric {
	case MetricTime:
		// Failed timed runs produce nothing to record.
		if success {
			res.Metric = math.Round(e.elapsed.Seconds()*100) / 100
			res.HasMetric = true
		}
	default:
		res.Metric = float64(e.score)
		res.HasMetric = true
	}

	if res.HasMetric {
		res.IsNewRecord = e.record(e.mode, res.Metric)
	}
	e.result = res

	name := EventFail
	if success {
		name = EventComplete
	}
	e.emitResult(name, res)
	if res.IsNewRecord {
		e.emitResult(EventNewRecord, res)
	}
}

func (e *Engine) record(m Mode, metric float64) (isNew bool) {
	guard(func() { isNew = e.ledger.Record(m, metric) })
	return isNew
}

func (e *Engine) best(m Mode) (v float64, ok bool) {
	guard(func() { v, ok = e.ledger.Best(m) })
	return v, ok
}

func (e *Engine) emit(name string, m Mode) {
	ev := Event{Name: name, Mode: m, Score: e.score, At: e.clock.Now()}
	guard(func() { e.telemetry.Emit(ev) })
}

func (e *Engine) emitResult(name string, res Result) {
	ev := Event{
		Name:      name,
		Mode:      e.mode,
		Score:     res.Score,
		Metric:    res.Metric,
		HasMetric: res.HasMetric,
		At:        e.clock.Now(),
	}
	guard(func() { e.telemetry.Emit(ev) })
}

// SetViewport sizes the layout used to hit-test Point locators.
func (e *Engine) SetViewport(w, h int) {
	e.layout = NewLayout(w, h, e.cfg.Board.Columns, e.board.Bound())
}

// Layout returns the geometry last used for rendering and hit-testing.
func (e *Engine) Layout() Layout {
	return e.layout
}

// Status returns the current session state.
func (e *Engine) Status() Status {
	return e.status
}

// Mode returns the mode of the current or last session.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Result returns the outcome of the last finished session.
func (e *Engine) Result() Result {
	return e.result
}

// Generation identifies the current session. It changes whenever a session
// starts or is abandoned, so callers can drop work queued for an older one.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Keys returns the column key table.
func (e *Engine) Keys() []string {
	return e.cfg.Board.Keys
}

// Snapshot is a read-only view of the engine for presentation.
type Snapshot struct {
	Status     Status
	Mode       Mode
	Policy     Policy
	Score      int
	Elapsed    time.Duration
	Remaining  time.Duration // Time left for time-limited modes
	Speed      time.Duration
	Rate       float64
	Countdown  int // Steps left; 0 during COUNTDOWN means GO
	MoveCount  int
	Rows       []Row // Newest first
	Bound      int
	Expired    Row // Row that timed out, valid when HasExpired
	HasExpired bool
	Result     Result
	Best       float64
	HasBest    bool
	Generation uint64
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Status:     e.status,
		Mode:       e.mode,
		Policy:     e.policy,
		Score:      e.score,
		Elapsed:    e.elapsed,
		Speed:      e.speed.Current(),
		Rate:       e.speed.Rate(),
		Countdown:  e.countdown,
		MoveCount:  e.moveCount,
		Rows:       e.board.Rows(),
		Bound:      e.board.Bound(),
		Expired:    e.expired,
		HasExpired: e.hasExpired,
		Result:     e.result,
		Generation: e.generation,
	}
	if e.policy.TimeLimit > 0 {
		s.Remaining = max(0, e.policy.TimeLimit-e.elapsed)
	}
	s.Best, s.HasBest = e.best(e.mode)
	return s
}
