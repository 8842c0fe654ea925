package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/games/dino"
	"github.com/vovakirdan/dino-run/internal/storage"
)

type fakeJournal struct {
	runs []storage.Run
	err  error
}

func (j *fakeJournal) SaveRun(r storage.Run) (int64, error) {
	if j.err != nil {
		return 0, j.err
	}
	j.runs = append(j.runs, r)
	return int64(len(j.runs)), nil
}

type fakeCues struct {
	events []dino.Event
	muted  bool
}

func (c *fakeCues) Play(e dino.Event) { c.events = append(c.events, e) }

func (c *fakeCues) ToggleMute() bool {
	c.muted = !c.muted
	return c.muted
}

func testOptions() Options {
	return Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7, FixedSeed: true},
		Runner:  config.DefaultRunnerConfig(),
		Preset:  "normal",
		Player:  "tester",
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

// runUntilStopped feeds frame callbacks in issue order until the loop stops.
func runUntilStopped(t *testing.T, m Model, first dino.FrameID) Model {
	t.Helper()
	id := first
	for i := 0; i < 20000; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, FrameMsg{ID: id})
		if cmd == nil {
			return m
		}
		id++
	}
	t.Fatal("run never ended")
	return m
}

func TestModelStartsIdle(t *testing.T) {
	m := NewModel(testOptions())

	if m.Game().State().Phase != dino.PhaseIdle {
		t.Fatal("model should start idle")
	}

	view := m.View()
	if !strings.Contains(view, "Press Space or Click to Start") {
		t.Error("idle view should show the start prompt")
	}
	if !strings.Contains(view, "HI 00000  00000") {
		t.Error("idle view should show zero scores")
	}
}

func TestModelSpaceStartsAndFramesAdvance(t *testing.T) {
	m := NewModel(testOptions())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("starting a run should schedule a frame")
	}
	if !m.Game().State().Running() {
		t.Fatal("space should start the run")
	}
	if m.Game().Record().Seed != 7 {
		t.Errorf("first run should use the configured seed, got %d", m.Game().Record().Seed)
	}

	m, cmd = update(t, m, FrameMsg{ID: 1})
	if cmd == nil {
		t.Error("a running frame should schedule the next one")
	}
	if m.Game().State().Frame != 1 {
		t.Errorf("expected frame 1, got %d", m.Game().State().Frame)
	}

	// Duplicate callback is ignored
	m, cmd = update(t, m, FrameMsg{ID: 1})
	if cmd != nil || m.Game().State().Frame != 1 {
		t.Error("stale frame should be ignored")
	}

	if strings.Contains(m.View(), "Press Space") {
		t.Error("running view should not show a prompt")
	}
}

func TestModelCrashJournalsRun(t *testing.T) {
	opts := testOptions()
	journal := &fakeJournal{}
	cues := &fakeCues{}
	opts.Journal = journal
	opts.Cues = cues
	m := NewModel(opts)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = runUntilStopped(t, m, 1)

	s := m.Game().State()
	if !s.Over() {
		t.Fatal("a run without jumps should crash")
	}
	if len(journal.runs) != 1 {
		t.Fatalf("expected one journaled run, got %d", len(journal.runs))
	}
	run := journal.runs[0]
	if run.Seed != 7 || run.Frames != s.Frame || run.Score != s.Score {
		t.Errorf("journaled run does not match the game: %+v vs %+v", run, s)
	}
	if run.Player != "tester" || run.Preset != "normal" {
		t.Errorf("journaled run missing player or preset: %+v", run)
	}
	if len(cues.events) == 0 || !cues.events[len(cues.events)-1].Has(dino.EventCrash) {
		t.Error("crash cue should be played last")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("over view should show GAME OVER")
	}

	// Restart uses the next seed
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil || !m.Game().State().Running() {
		t.Fatal("space after game over should restart")
	}
	if m.Game().Record().Seed != 8 {
		t.Errorf("restart should use seed 8, got %d", m.Game().Record().Seed)
	}
}

func TestModelJournalFailureIsNotFatal(t *testing.T) {
	opts := testOptions()
	opts.Journal = &fakeJournal{err: errors.New("disk full")}
	m := NewModel(opts)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = runUntilStopped(t, m, 1)

	if !m.Game().State().Over() {
		t.Fatal("run should still end")
	}
	if m.status != "run not saved" {
		t.Errorf("expected failure status, got %q", m.status)
	}
}

func TestModelMouseStarts(t *testing.T) {
	m := NewModel(testOptions())

	// HUD row is not part of the canvas
	m, cmd := update(t, m, tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil || m.Game().State().Running() {
		t.Error("click on the HUD should be ignored")
	}

	m, cmd = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd == nil || !m.Game().State().Running() {
		t.Error("click on the canvas should start the run")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}

	// The pending frame was canceled by quitting
	if _, cmd = update(t, m, FrameMsg{ID: 1}); cmd != nil {
		t.Error("frames after quit should be ignored")
	}
}

func TestModelSoundToggle(t *testing.T) {
	opts := testOptions()
	m := NewModel(opts)

	m, _ = update(t, m, runeKey('m'))
	if m.status != "sound unavailable" {
		t.Errorf("expected unavailable status, got %q", m.status)
	}

	opts.Cues = &fakeCues{}
	m = NewModel(opts)
	m, _ = update(t, m, runeKey('m'))
	if m.status != "sound off" {
		t.Errorf("expected sound off, got %q", m.status)
	}
	m, _ = update(t, m, runeKey('m'))
	if m.status != "sound on" {
		t.Errorf("expected sound on, got %q", m.status)
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(testOptions())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 {
		t.Errorf("expected screen width 120, got %d", m.screen.Width())
	}
	if got := m.screen.Height(); got != 30 {
		t.Errorf("expected canvas height 30, got %d", got)
	}
	if area := m.canvasArea(); area.Y != hudRows || area.H != 30 {
		t.Errorf("unexpected canvas area %+v", area)
	}

	// Tiny terminals still get a canvas
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 3})
	if m.screen.Height() != 1 {
		t.Errorf("expected a single canvas row, got %d", m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	opts := testOptions()
	opts.ScreenshotDir = t.TempDir()
	m := NewModel(opts)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.status, "saved dino_") {
		t.Fatalf("expected saved status, got %q", m.status)
	}

	files, err := os.ReadDir(opts.ScreenshotDir)
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %d (%v)", len(files), err)
	}
	data, err := os.ReadFile(filepath.Join(opts.ScreenshotDir, files[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if lines := strings.Count(string(data), "\n") + 1; lines != m.screen.Height() {
		t.Errorf("screenshot should have %d rows, got %d", m.screen.Height(), lines)
	}
}

func TestModelDefaultsScreenSize(t *testing.T) {
	opts := testOptions()
	opts.Runtime = core.RuntimeConfig{}
	m := NewModel(opts)

	if m.width != 80 || m.height != 24 {
		t.Errorf("expected 80x24 default, got %dx%d", m.width, m.height)
	}
	if m.opts.Runtime.TickRate != 60 {
		t.Errorf("expected default tick rate 60, got %d", m.opts.Runtime.TickRate)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		high, score int
		want        string
	}{
		{0, 0, "HI 00000  00000"},
		{42, 7, "HI 00042  00007"},
		{123456, 1, "HI 123456  00001"},
	}

	for _, tc := range tests {
		if got := FormatScore(tc.high, tc.score); got != tc.want {
			t.Errorf("FormatScore(%d, %d) = %q, want %q", tc.high, tc.score, got, tc.want)
		}
	}
}

func TestNewSeeder(t *testing.T) {
	tests := []struct {
		name  string
		seed  int64
		first int64
		next  int64
	}{
		{"counts up", 100, 100, 101},
		{"zero is a fixed seed", 0, 0, 1},
		{"negative", -2, -2, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := newSeeder(tc.seed, true)
			if a, b := next(), next(); a != tc.first || b != tc.next {
				t.Errorf("got %d %d, want %d %d", a, b, tc.first, tc.next)
			}
		})
	}

	timed := newSeeder(0, false)
	if timed() == 0 {
		t.Error("time seeder should not return zero")
	}
}

func TestZeroSeedStartsReproducibleRun(t *testing.T) {
	opts := testOptions()
	opts.Runtime.Seed = 0
	m := NewModel(opts)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.Game().Record().Seed; got != 0 {
		t.Errorf("first run seed = %d, want 0", got)
	}
}
