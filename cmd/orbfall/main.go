// orbfall is a terminal arcade game: launch an orb into a procedurally
// generated board and steer it through gates into scoring portals.
//
// Usage:
//
//	orbfall play             - Play a round
//	orbfall scores           - Show high scores
//	orbfall serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.orbfall/scores.db)
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
	Use:   "orbfall",
	Short: "Orbfall - a falling-orb arcade game for your terminal",
	Long: `Orbfall is a terminal arcade game. Aim, set your power, and launch
an orb into a procedurally generated board of panels, warps, gates and
zones. Land in a portal at the bottom to score; chain gates and portals
to build combos and trigger flow mode.

Available commands:
  play     - Play a round
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  orbfall play
  orbfall play --seed 42
  orbfall scores
  orbfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.orbfall/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
