package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/games/dino"
	"github.com/vovakirdan/dino-run/internal/storage"
)

// Layout constants
const (
	hudRows    = 1 // Score line above the canvas
	helpRows   = 1 // Help bar below the canvas
	minCanvasH = 6
)

// Journal stores finished runs.
type Journal interface {
	SaveRun(r storage.Run) (int64, error)
}

// Sounder plays cues for frame events.
type Sounder interface {
	Play(e dino.Event)
	ToggleMute() bool
}

// Options configures a game Model.
type Options struct {
	Runtime core.RuntimeConfig
	Runner  config.RunnerConfig
	Preset  string      // Difficulty name, journaled with each run
	Player  string      // User name, journaled with each run
	Journal Journal     // Optional
	Cues    Sounder     // Optional
	Logger  *log.Logger // Optional

	// ScreenshotDir receives ctrl+s screenshots. Empty means ~/.dino/screenshots.
	ScreenshotDir string
}

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(hexInk)).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model hosting one runner game.
type Model struct {
	loop     *dino.Loop
	screen   *core.Screen
	canvas   *core.Canvas
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	width    int
	height   int
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model. The game starts idle.
func NewModel(opts Options) Model {
	defaults := core.DefaultConfig()
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = defaults.TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW = defaults.ScreenW
		opts.Runtime.ScreenH = defaults.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	canvas := core.NewCanvas(screen, core.Rect{}, opts.Runner.Surface.Width, opts.Runner.Surface.Height)
	game := dino.New(opts.Runner)

	m := Model{
		loop:   dino.NewLoop(game, canvas, newSeeder(opts.Runtime.Seed, opts.Runtime.FixedSeed)),
		screen: screen,
		canvas: canvas,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		logger: logger,
	}
	m.layout(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// newSeeder returns the seed source for successive runs. A fixed seed gives
// seed, seed+1, ... so restarted runs differ but stay reproducible. Zero is a
// valid fixed seed.
func newSeeder(seed int64, fixed bool) func() int64 {
	if !fixed {
		return func() int64 { return time.Now().UnixNano() }
	}
	next := seed
	return func() int64 {
		s := next
		next++
		return s
	}
}

// layout sizes the screen and canvas for a terminal of w x h cells.
func (m *Model) layout(w, h int) {
	m.width = core.Max(w, 1)
	m.height = core.Max(h, 1)

	canvasH := core.Clamp(m.width/4, minCanvasH, core.Max(m.height-hudRows-helpRows, 1))
	canvasH = core.Min(canvasH, core.Max(m.height-hudRows-helpRows, 1))

	m.screen.Resize(m.width, canvasH)
	m.canvas.SetRegion(core.NewRect(0, 0, m.width, canvasH))
	m.help.Width = m.width
	m.loop.Redraw()
}

// canvasArea returns the canvas cells in terminal coordinates.
func (m Model) canvasArea() core.Rect {
	r := m.canvas.Region()
	r.Y += hudRows
	return r
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg, m.canvasArea()))

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleAction applies one host action.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.loop.Detach()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPrimary:
		if id, ok := m.loop.Dispatch(); ok {
			m.status = ""
			s := m.loop.Game().State()
			m.logger.Debug("run started", "seed", m.loop.Game().Record().Seed, "high", s.HighScore)
			return m, frameCmd(m.opts.Runtime.TickRate, id)
		}

	case core.ActionSound:
		if m.opts.Cues == nil {
			m.status = "sound unavailable"
			break
		}
		if m.opts.Cues.ToggleMute() {
			m.status = "sound off"
		} else {
			m.status = "sound on"
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("cannot save screenshot", "err", err)
			m.status = "screenshot failed"
			break
		}
		m.status = "saved " + filepath.Base(path)
	}

	return m, nil
}

// handleFrame runs one requested frame and schedules the next.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	res, next, ok := m.loop.Frame(msg.ID)

	if m.opts.Cues != nil && res.Events != 0 {
		m.opts.Cues.Play(res.Events)
	}
	if res.Events.Has(dino.EventCrash) {
		m.journal()
	}

	if !ok {
		return m, nil
	}
	return m, frameCmd(m.opts.Runtime.TickRate, next)
}

// journal records the finished run. Failures are logged, never fatal.
func (m *Model) journal() {
	rec := m.loop.Game().Record()
	m.logger.Info("run over", "score", rec.Score, "frames", rec.Frames, "jumps", len(rec.Jumps))

	if m.opts.Journal == nil {
		return
	}
	id, err := m.opts.Journal.SaveRun(storage.Run{
		Seed:   rec.Seed,
		Score:  rec.Score,
		Frames: rec.Frames,
		Jumps:  rec.Jumps,
		Preset: m.opts.Preset,
		Player: m.opts.Player,
	})
	if err != nil {
		m.logger.Error("cannot journal run", "err", err)
		m.status = "run not saved"
		return
	}
	m.status = fmt.Sprintf("saved as run #%d", id)
}

// saveScreenshot writes the canvas as plain text and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".dino", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dino_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Game returns the hosted game.
func (m Model) Game() *dino.Game {
	return m.loop.Game()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.loop.Game().State()
	switch {
	case s.Over():
		drawCenteredMessage(m.screen, "GAME OVER", "Press Space or Click to Restart")
	case !s.Running():
		drawCenteredMessage(m.screen, "Press Space or Click to Start", "")
	}

	return m.renderHUD(s) + "\n" + RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// renderHUD renders the high score and score right aligned, with the status
// message on the left.
func (m Model) renderHUD(s dino.Snapshot) string {
	score := hudStyle.Render(FormatScore(s.HighScore, s.Score))
	status := statusStyle.Render(m.status)

	gap := m.width - lipgloss.Width(score) - lipgloss.Width(status)
	if gap < 1 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, score)
	}
	return status + lipgloss.PlaceHorizontal(gap+lipgloss.Width(score), lipgloss.Right, score)
}

// FormatScore formats the HUD score line.
func FormatScore(high, score int) string {
	return fmt.Sprintf("HI %05d  %05d", high, score)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to start/jump
	)

	_, err := p.Run()
	return err
}
