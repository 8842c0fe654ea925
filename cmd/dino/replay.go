package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-run/internal/games/dino"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled run",
	Long: `Re-run a journaled run headlessly from its seed and jump frames and
check that it ends with the recorded score at the recorded frame.

The run's own difficulty preset is used; --config must point at the
same runner config the run was played with.

Examples:
  dino replay 12
  dino replay 12 --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	run, err := store.Run(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no run with id %d", id)
	}
	if err != nil {
		return err
	}

	return verifyRun(run)
}

// verifyRun replays run and reports whether it reproduces.
func verifyRun(run storage.Run) error {
	runner, _, err := loadRunner(flagConfig, run.Preset)
	if err != nil {
		return err
	}

	rec := dino.Record{
		Seed:   run.Seed,
		Frames: run.Frames,
		Score:  run.Score,
		Jumps:  run.Jumps,
	}
	// A little past the recorded end, so a longer replay is caught
	res := dino.Replay(runner, rec, run.Frames+1)

	fmt.Printf("Run #%d (seed %d, %d jumps)\n", run.ID, run.Seed, len(run.Jumps))
	fmt.Printf("  recorded: score %d at frame %d\n", run.Score, run.Frames)
	if res.Crashed {
		fmt.Printf("  replayed: score %d at frame %d\n", res.Score, res.Frames)
	} else {
		fmt.Printf("  replayed: still running at frame %d with score %d\n", res.Frames, res.Score)
	}

	if !res.Matches(rec) {
		return errors.New("replay does not match the journal")
	}
	fmt.Println("  replay matches")
	return nil
}
