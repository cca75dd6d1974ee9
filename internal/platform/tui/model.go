package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

// Options configures a terminal game model.
type Options struct {
	Board         ScoreBoard  // Leaderboard source; nil hides the scores view
	ScreenshotDir string      // Defaults to ~/.robo-runner/screenshots
	Logger        *log.Logger // Defaults to a discarding logger
}

// Model is the Bubble Tea model that hosts one runner engine.
type Model struct {
	engine     *runner.Engine
	screen     *core.Screen
	canvas     *ScreenCanvas
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	opts       Options
	scores     *ScoreboardModel
	lastShot   string
	quitting   bool
}

// NewModel creates a model for the engine. The bottom terminal row is kept
// for the help bar.
func NewModel(engine *runner.Engine, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	world := engine.Config().World
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:     engine,
		screen:     screen,
		canvas:     NewScreenCanvas(screen, world.Width, world.Height),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  engine.State(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		opts:       opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

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
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		if m.opts.Board != nil && m.gameState.GameOver {
			sb := NewScoreboardModel(m.opts.Board, m.config.ScreenW, m.config.ScreenH)
			sb.embedded = true
			sb.ShowRun(m.gameState.Score)
			m.scores = &sb
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left click into a jump, or a restart when it lands on
// the restart button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !IsLeftClick(msg) {
		return m, nil
	}

	if m.engine.Session().RestartVisible {
		wx, wy := m.canvas.ToWorld(msg.X, msg.Y)
		if m.engine.RestartButton().ContainsPoint(wx, wy) {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	}

	m.inputFrame.Set(core.ActionJump)
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one engine step with the input gathered since the last
// tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.engine.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Crashed {
		m.opts.Logger.Debug("run ended", "score", result.State.Score, "high", result.State.HighScore)
	}

	return m, tickCmd(m.config.TickRate)
}

// updateScores forwards messages to the embedded scoreboard, keeping the
// engine ticking underneath.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.handleTick()
	case tea.WindowSizeMsg:
		next, _ := m.handleResize(msg)
		m = next.(Model)
	}

	next, cmd := m.scores.Update(msg)
	sb := next.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.engine.Draw(m.canvas)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".robo-runner", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", runner.GameID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}

	m.lastShot = path
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.engine.Draw(m.canvas)
	if m.engine.Session().RestartVisible {
		m.canvas.DrawButton(m.engine.RestartButton(), "Restart", core.ColorWhite)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// LastScreenshot returns the path of the most recent screenshot.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

// Engine returns the hosted engine.
func (m Model) Engine() *runner.Engine {
	return m.engine
}

// Run starts a local Bubble Tea program for the engine.
func Run(engine *runner.Engine, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(engine, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
