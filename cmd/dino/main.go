// dino is an endless runner for the terminal: jump the cacti, chase the high score.
//
// Usage:
//
//	dino play            - Play in this terminal
//	dino serve           - Start SSH server for remote play
//	dino runs            - List journaled runs
//	dino replay <id>     - Re-simulate a journaled run and verify its score
//	dino config          - Print the default runner config
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set journal path (default: ~/.dino/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Run - an endless runner in your terminal",
	Long: `Dino Run is a side-scrolling runner: the dino runs on its own,
you jump over the cacti. Every cactus passed scores a point and the
world speeds up as you go.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  runs     - List or browse journaled runs
  replay   - Re-simulate a journaled run
  config   - Print the runner config

Examples:
  dino play
  dino play --difficulty hard --sound
  dino serve --ssh :2222
  dino runs --browse
  dino replay 12`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for reproducible runs (default: time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dino/runs.db", "Path to run journal")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
