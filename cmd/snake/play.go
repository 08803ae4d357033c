package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the local terminal.

Controls:
  Arrows / hjkl / wasd  - Steer
  ?                     - Toggle help
  Q / Ctrl+C            - Quit

A reversal (e.g. Down while heading Up) is ignored. When a round ends the
snake respawns immediately at the start position.

The session and every finished round are journaled to --db along with a
replay tape, unless --no-record is given.

Examples:
  snake play
  snake play --speed easy
  snake play --seed 42 --no-record
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not journal the session")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadRuntime()
	if err != nil {
		fatalf("%v", err)
	}

	// The alternate screen is in use, so logs only go to --log-file
	logger, cleanup, err := newLogger(io.Discard, "snake")
	if err != nil {
		fatalf("%v", err)
	}
	defer cleanup()

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fatalf("play needs a terminal; use 'snake sim' for headless runs")
	}
	needW, needH := tui.BoardSize(cfg.Arena)
	if w, h, termErr := term.GetSize(fd); termErr == nil && (w < needW || h < needH+1) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH+1)
	}

	var store *storage.Store
	if !flagNoRecord {
		store = openStore(logger)
	}
	if store != nil {
		defer store.Close()
	}

	sess, err := session.New(cfg, session.Options{Source: "play", Store: store, Logger: logger})
	if err != nil {
		fatalf("%v", err)
	}
	logger.Info("session started", "session", sess.ID(), "seed", cfg.Seed, "arena", cfg.Arena)

	runErr := tui.Run(sess)
	if err := sess.Close(); err != nil {
		logger.Error("could not save tape", "error", err)
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}

	fmt.Printf("Rounds finished: %d\n", len(sess.Rounds()))
	if sess.ID() != 0 {
		fmt.Printf("Session %d recorded. Replay with: snake replay %d\n", sess.ID(), sess.ID())
	}
}
