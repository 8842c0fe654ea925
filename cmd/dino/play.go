package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-run/internal/audio"
	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/platform/tui"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Space/Up/Click - Start, then jump
  M              - Toggle sound
  ?              - More keys
  Q/Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start (0.8x base speed)
  normal - Default speed
  hard   - Faster start (1.3x base speed)
  fixed  - No speed ramp, stays at base speed

Every finished run is saved to the journal with its seed and jumps,
so it can be replayed later with 'dino replay'.

Examples:
  dino play
  dino play --difficulty easy
  dino play --seed 42
  dino play --config ./my-runner.yaml
  dino play --sound --log ./dino.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addRunnerFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume (0..1)")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
}

// addRunnerFlags registers the flags that select a runner config.
func addRunnerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadRunner resolves the runner config and applies a difficulty preset.
func loadRunner(path, difficulty string) (config.RunnerConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}

	cfg, err := config.LoadRunner(path)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}

	if preset == "" {
		preset = config.DifficultyNormal
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// openLog returns a file logger, or nil when no path is given. The terminal
// belongs to the game, so play never logs to stderr.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dino",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// currentUser names the local player in the journal.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	runner, preset, err := loadRunner(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			TickRate:  flagFPS,
			Seed:      flagSeed,
			FixedSeed: cmd.Flags().Changed("seed"),
		},
		Runner: runner,
		Preset: string(preset),
		Player: currentUser(),
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Journal = store
	}

	if flagSound {
		cues := audio.NewCues(flagVolume)
		if err := cues.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			defer cues.Close()
			opts.Cues = cues
		}
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
