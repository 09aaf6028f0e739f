package tui

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/config"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/games/flappy"
)

// footerRows is the number of terminal rows reserved for the key help.
const footerRows = 1

// maxTickGap caps the wall-clock time one tick may feed the spawn timer,
// so a suspended terminal does not release a burst of obstacles on resume.
const maxTickGap = 250 * time.Millisecond

// Model is the Bubble Tea model running one game session in a terminal.
type Model struct {
	game     *flappy.Game
	sched    *core.Scheduler
	surface  *CellSurface
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	tickRate int
	lastTick time.Time
	logger   *log.Logger
	quitting bool
}

// NewModel creates a session for a terminal of the given size.
// The configuration must already be validated.
func NewModel(cfg config.FlappyConfig, rt core.RuntimeConfig, width, height int, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := core.NewScheduler()
	h := help.New()
	h.Styles.ShortKey = footerStyle.Bold(true)
	h.Styles.ShortDesc = footerStyle

	return Model{
		game:     flappy.New(cfg, rt, sched, flappy.WithLogger(logger)),
		sched:    sched,
		surface:  NewCellSurface(width, height-footerRows, cfg.Board.Width, cfg.Board.Height),
		keys:     DefaultKeyMap(),
		help:     h,
		input:    core.NewInputFrame(),
		tickRate: rt.TickRate,
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width, msg.Height-footerRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		m.logger.Debug("quit requested", "phase", m.game.Phase())
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies pending input, fires due timers and advances one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.tickRate)
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick), maxTickGap)
	}
	m.lastTick = now

	m.game.HandleInput(m.input)
	m.input.Clear()

	m.sched.Advance(dt)
	m.game.Update()

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.surface)
	return RenderScreen(m.surface.Screen()) + "\n" + m.help.View(m.keys)
}

// Game returns the session's game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Run starts a terminal session on stdin/stdout and blocks until the player quits.
func Run(cfg config.FlappyConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	model := NewModel(cfg, rt, width, height, logger)
	logger.Info("starting terminal session", "width", width, "height", height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
