package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-run/internal/platform/tui"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Long: `Display the most recent runs from the journal, newest first.

With --browse, opens an interactive table; pressing Enter on a run
replays it and verifies the recorded score.

Examples:
  dino runs
  dino runs --limit 50
  dino runs --browse`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse runs interactively")
	runsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML (for replays)")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	runs, err := store.Runs(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		id, err := tui.RunRunsBrowser(runs, stats, width, height)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}
		run, err := store.Run(id)
		if err != nil {
			return err
		}
		return verifyRun(run)
	}

	fmt.Println("Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dino play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-6s  %-6s  %-7s  %-5s  %-7s  %-10s  %s\n", "ID", "Score", "Frames", "Jumps", "Preset", "Player", "Date")
	fmt.Printf("  %-6s  %-6s  %-7s  %-5s  %-7s  %-10s  %s\n", "--", "-----", "------", "-----", "------", "------", "----")

	for _, r := range runs {
		row := tui.RunRow(r)
		fmt.Printf("  %-6s  %-6s  %-7s  %-5s  %-7s  %-10s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	fmt.Println()
	fmt.Println(tui.FormatStats(stats))
	return nil
}
