package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/orbfall/internal/config"
	"github.com/vovakirdan/orbfall/internal/core"
	"github.com/vovakirdan/orbfall/internal/game"
	"github.com/vovakirdan/orbfall/internal/platform/tui"
	"github.com/vovakirdan/orbfall/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of orbfall.

Controls:
  A/D, Left/Right - Adjust launch angle
  W/S, Up/Down    - Adjust launch power
  Space/Enter     - Fire
  P/Esc           - Pause
  R               - New round (after round end)
  Q/Ctrl+C        - Quit

Examples:
  orbfall play
  orbfall play --seed 42
  orbfall play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// An explicitly requested config must load cleanly or not at all.
	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the round still works
		store = nil
	}

	high := 0
	var persist func(int)
	if store != nil {
		if stored, hsErr := store.HighScore(); hsErr == nil {
			high = stored
		}
		persist = func(score int) {
			//nolint:errcheck // Best-effort write-through, round continues regardless
			store.SetHighScore(score)
		}
	}

	g := game.New(tuning, high, persist)
	runErr := tui.Run(g, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
