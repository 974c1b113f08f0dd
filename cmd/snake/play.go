package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Pablify/Snake/internal/audio"
	"github.com/Pablify/Snake/internal/config"
	"github.com/Pablify/Snake/internal/game"
	"github.com/Pablify/Snake/internal/platform/tui"
	"github.com/Pablify/Snake/internal/storage"
)

var (
	flagMode string
	flagWrap bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD - Steer / navigate the menu
  Enter       - Confirm menu selection
  P           - Pause
  R           - Restart the run
  M           - Toggle sound
  Esc         - Back to menu
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --mode hard
  snake play --mode easy --wrap
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "normal", "Difficulty mode: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWrap, "wrap", false, "Start with wrap-around walls")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	mode, err := config.ParseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Open highscore storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open highscore database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	var persist game.Persistence
	if store != nil {
		persist = store
	}

	sfx := audio.New()

	session := game.NewSession(cfg, mode, flagWrap, seed, persist, sfx)

	runErr := tui.Run(session, store, width, height, flagFPS)

	// os.Exit skips defers, so release everything by hand.
	sfx.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
