package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/clock"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/highscore"
	"github.com/vovakirdan/tui-tiles/internal/storage"
	"github.com/vovakirdan/tui-tiles/internal/telemetry"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

// Options configures a Model.
type Options struct {
	Tiles   config.TilesConfig
	Runtime core.RuntimeConfig

	// Store receives one run per finished session. May be nil.
	Store *storage.Store

	// Ledger holds best values. Nil means an in-memory ledger.
	Ledger *highscore.Ledger

	Sound     tiles.Sound
	Telemetry tiles.Telemetry
	Logger    *log.Logger
	Clock     clock.Clock

	// StartMode, when Direct is set, skips the menu and starts this mode.
	StartMode tiles.Mode
	Direct    bool

	// ScreenshotDir defaults to ~/.tiles/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one player, built around a single engine.
type Model struct {
	engine     *tiles.Engine
	screen     *core.Screen
	store      *storage.Store
	ledger     *highscore.Ledger
	session    *telemetry.Counter
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	menu       MenuModel
	scoreboard *ScoreboardModel
	shotDir    string
	startMode  tiles.Mode
	direct     bool
	quitting   bool
	scoreSaved bool   // Whether the run has been saved for the current game over
	savedGen   uint64 // Engine generation of the last saved run
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ledger := opts.Ledger
	if ledger == nil {
		ledger = highscore.Open(highscore.NewMemoryKV(), logger)
	}

	session := telemetry.NewCounter()
	engine := tiles.New(opts.Tiles, tiles.Deps{
		Clock:     opts.Clock,
		Sound:     opts.Sound,
		Telemetry: telemetry.Multi{opts.Telemetry, session},
		Ledger:    ledger,
		Seed:      cfg.Seed,
	})
	engine.SetViewport(cfg.ScreenW, cfg.ScreenH)

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".tiles", "screenshots")
	}

	return Model{
		engine:    engine,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		ledger:    ledger,
		session:   session,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(engine.Keys()),
		menu:      NewMenuModel(ledger, cfg.ScreenW, cfg.ScreenH).Select(opts.StartMode),
		shotDir:   shotDir,
		startMode: opts.StartMode,
		direct:    opts.Direct,
	}
}

// Init starts the tick loop and, for direct entry, the first session.
func (m Model) Init() tea.Cmd {
	if m.direct && m.engine.Status() == tiles.StatusMenu {
		m.engine.SelectMode(m.startMode)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	// Column keys win over bindings while tiles are falling.
	if m.engine.Status() == tiles.StatusPlaying {
		if k, ok := m.keyMapper.TileKey(msg); ok {
			m.engine.ResolveInput(k)
			m.saveRun()
			return m, nil
		}
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.engine.Close()
		return m, tea.Quit
	}
	if action == core.ActionScreenshot {
		m.saveScreenshot()
		return m, nil
	}

	switch m.engine.Status() {
	case tiles.StatusMenu:
		switch action {
		case core.ActionUp, core.ActionDown:
			m.menu = m.menu.Move(action)
		case core.ActionConfirm:
			m.engine.SelectMode(m.menu.Selected())
		case core.ActionScoreboard:
			m.openScoreboard(m.menu.Selected())
		}

	case tiles.StatusCountdown, tiles.StatusPlaying:
		if action == core.ActionBack {
			m.engine.BackToMenu()
		}

	case tiles.StatusGameOver:
		switch action {
		case core.ActionRestart:
			m.engine.Restart()
		case core.ActionBack:
			m.menu = m.menu.Select(m.engine.Mode())
			m.engine.BackToMenu()
		case core.ActionScoreboard:
			m.openScoreboard(m.engine.Mode())
		}
	}

	return m, nil
}

// handleMouse turns left clicks on the board into taps.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil || m.engine.Status() != tiles.StatusPlaying {
		return m, nil
	}
	if p, ok := TapPoint(msg); ok {
		m.engine.ResolveInput(p)
		m.saveRun()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.engine.SetViewport(msg.Width, msg.Height)
	m.menu = m.menu.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		next, _ := m.scoreboard.Update(msg)
		sb := next.(ScoreboardModel)
		m.scoreboard = &sb
	}
	return m, nil
}

// handleTick wakes the engine's schedulers.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Tick()
	m.saveRun()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) openScoreboard(mode tiles.Mode) {
	sb := NewScoreboardModel(m.store, m.ledger, m.session, m.config.ScreenW, m.config.ScreenH).ShowMode(mode)
	m.scoreboard = &sb
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb := next.(ScoreboardModel)

	switch {
	case sb.IsQuitting():
		m.quitting = true
		m.engine.Close()
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// saveRun stores the finished session once per engine generation.
func (m *Model) saveRun() {
	if m.engine.Status() != tiles.StatusGameOver {
		return
	}
	gen := m.engine.Generation()
	if m.scoreSaved && m.savedGen == gen {
		return
	}
	m.scoreSaved = true
	m.savedGen = gen

	if m.store == nil {
		return
	}
	run := storage.RunFromResult(m.engine.Mode(), m.engine.Result())
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "mode", run.Mode.String(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.engine.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("tiles_%s_%s.txt", m.engine.Mode(), timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	if m.engine.Status() == tiles.StatusMenu {
		return m.menu.View()
	}

	m.engine.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local player.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the board are taps
	)

	_, err := p.Run()
	model.engine.Close()
	return err
}
