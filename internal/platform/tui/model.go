package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neondrive/internal/config"
	"github.com/vovakirdan/neondrive/internal/core"
	"github.com/vovakirdan/neondrive/internal/engine"
	"github.com/vovakirdan/neondrive/internal/games/drive"
)

// Options configures the terminal host.
type Options struct {
	Runtime core.RuntimeConfig
	Drive   config.DriveConfig
	Logger  *log.Logger
}

// session is the mutable drawing state shared with the driver's hooks.
type session struct {
	screen   *core.Screen
	renderer drive.Renderer
	results  ResultsPanel
	score    float64
	tooSmall bool
}

func (s *session) draw(st *drive.State) {
	s.screen.Clear()
	s.renderer.Draw(s.screen, st)
}

func (s *session) drawIdle(vp core.Viewport, cfg config.DriveConfig) {
	road, _, err := drive.Layout(vp, cfg)
	if err != nil {
		s.tooSmall = true
		drawTooSmall(s.screen)
		return
	}
	s.tooSmall = false
	s.screen.Clear()
	s.renderer.DrawIdle(s.screen, road)
	drawReady(s.screen)
}

// Model is the Bubble Tea model for the game. It owns the driver and the
// steering aggregator and feeds them from key, mouse and tick messages.
type Model struct {
	driver   *engine.Driver
	steering *core.Steering
	sess     *session
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger

	// Terminals send no key-up events: a steer key counts as held for
	// holdTicks frames after its last press or auto-repeat.
	holdTicks int
	leftHold  int
	rightHold int

	showResults bool
	quitting    bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	disp := opts.Drive.Display
	sess := &session{
		screen:   core.NewScreen(max(1, cfg.ScreenW), max(1, cfg.ScreenH-chromeRows)),
		renderer: drive.NewRenderer(disp.UnitsPerColumn, disp.UnitsPerRow),
		results:  NewResultsPanel(cfg.ScreenW, cfg.ScreenH),
	}

	steering := core.NewSteering()
	var d *engine.Driver
	hooks := engine.Hooks{
		OnScore: func(score float64) {
			sess.score = score
		},
		OnGameOver: func(score float64) {
			st := d.State()
			sess.results.Add(RunResult{
				Run:   sess.results.Len() + 1,
				Score: int(score),
				Ticks: st.Ticks,
				Seed:  d.Seed(),
			})
		},
		Render: sess.draw,
	}
	d = engine.NewDriver(opts.Drive, steering, hooks, engine.WithLogger(logger))

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		driver:    d,
		steering:  steering,
		sess:      sess,
		keys:      keys,
		mapper:    NewKeyMapper(keys),
		help:      h,
		config:    cfg,
		logger:    logger,
		holdTicks: max(1, disp.KeyHoldTicks),
	}
}

// Init sets the window title. The first run starts on the player's signal.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Neon Night Drive")
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
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showResults {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Results), key.Matches(msg, m.keys.Start):
			m.showResults = false
			return m, nil
		}
		var cmd tea.Cmd
		m.sess.results, cmd = m.sess.results.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Results):
		if m.driver.Phase() != engine.PhaseRunning {
			m.showResults = true
		}
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionSteerLeft, core.ActionSteerRight:
		m.press(action)
	case core.ActionStart:
		if m.driver.Phase() != engine.PhaseRunning {
			return m.start()
		}
	case core.ActionRestart:
		if m.driver.Phase() == engine.PhaseOver {
			m.reset()
		}
	}

	return m, nil
}

// press holds a steer key and drops the opposite one: on a keyboard without
// release events the newest direction wins.
func (m *Model) press(a core.Action) {
	m.steering.Press(a)
	if a == core.ActionSteerLeft {
		m.leftHold = m.holdTicks
		m.rightHold = 0
		m.steering.Release(core.ActionSteerRight)
	} else {
		m.rightHold = m.holdTicks
		m.leftHold = 0
		m.steering.Release(core.ActionSteerLeft)
	}
}

// decayHolds releases steer keys whose hold has run out.
func (m *Model) decayHolds() {
	if m.leftHold > 0 {
		m.leftHold--
		if m.leftHold == 0 {
			m.steering.Release(core.ActionSteerLeft)
		}
	}
	if m.rightHold > 0 {
		m.rightHold--
		if m.rightHold == 0 {
			m.steering.Release(core.ActionSteerRight)
		}
	}
}

// handleMouse maps a press or drag on either half of the screen to touch steering.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.driver.Phase() != engine.PhaseRunning {
			if msg.Action == tea.MouseActionPress && !m.showResults {
				return m.start()
			}
			return m, nil
		}
		if msg.X < m.config.ScreenW/2 {
			m.steering.SetTouch(-1)
		} else {
			m.steering.SetTouch(1)
		}
	case tea.MouseActionRelease:
		m.steering.ClearTouch()
	}
	return m, nil
}

// handleResize processes window resize events. A run in progress keeps its
// road; the new size applies from the next start.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.sess.screen.Resize(max(1, msg.Width), max(1, msg.Height-chromeRows))
	m.sess.results.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if m.driver.Phase() == engine.PhaseOver {
		// Re-centre the overlay on a clean copy of the last frame
		m.sess.draw(m.driver.State())
	}

	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick runs one frame and schedules the next while the run lasts.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.driver.Generation() {
		return m, nil
	}

	m.decayHolds()

	if !m.driver.Frame() {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, msg.Gen)
}

// reset discards the finished run and goes back to the ready screen.
func (m *Model) reset() {
	if err := m.driver.Restart(); err != nil {
		m.logger.Debug("restart ignored", "error", err)
		return
	}
	m.steering.Reset()
	m.leftHold, m.rightHold = 0, 0
	m.sess.score = 0
}

// start begins a new run on the current terminal size.
func (m Model) start() (tea.Model, tea.Cmd) {
	if m.driver.Phase() == engine.PhaseOver {
		if err := m.driver.Restart(); err != nil {
			return m, nil
		}
	}

	// The configured seed applies to the first run; later runs vary.
	seed := m.config.Seed
	if m.sess.results.Len() > 0 {
		seed = 0
	}

	m.steering.Reset()
	m.leftHold, m.rightHold = 0, 0
	m.sess.score = 0

	if err := m.driver.Start(m.viewport(), seed); err != nil {
		m.sess.tooSmall = true
		return m, nil
	}
	m.sess.tooSmall = false
	m.showResults = false
	m.sess.draw(m.driver.State())

	return m, tickCmd(m.config.TickRate, m.driver.Generation())
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.driver.Stop()
	m.quitting = true
	return m, tea.Quit
}

// viewport is the world-space size of the road area.
func (m Model) viewport() core.Viewport {
	return m.sess.renderer.Viewport(m.sess.screen.Width(), m.sess.screen.Height())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpLine := helpStyle.Render(m.help.View(m.keys))

	if m.showResults {
		return m.sess.results.View() + "\n" + helpLine
	}

	phase := m.driver.Phase()
	speed := m.driver.Config().World.BaseSpeed
	switch phase {
	case engine.PhaseIdle:
		m.sess.drawIdle(m.viewport(), m.driver.Config())
	case engine.PhaseRunning:
		speed = m.driver.State().Speed
	case engine.PhaseOver:
		speed = m.driver.State().Speed
		drawGameOver(m.sess.screen, m.sess.score, m.sess.results.Best())
	}

	status := statusBar(hudInfo{
		Phase: phase,
		Score: m.sess.score,
		Speed: speed,
		Best:  m.sess.results.Best(),
		Steer: steerIndicator(m.steering),
		Width: m.config.ScreenW,
	})

	return status + "\n" + RenderScreen(m.sess.screen) + "\n" + helpLine
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and drags steer
	)

	_, err := p.Run()
	return err
}
