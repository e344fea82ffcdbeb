package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadjump/internal/core"
	"github.com/vovakirdan/roadjump/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Enter        - Start a run
  Left/J       - Jump one tile
  Right/K      - Jump two tiles
  Q/Ctrl+C     - Quit

Logs are discarded unless --log-file is given, so they do not draw over
the game.

Examples:
  roadjump play
  roadjump play --difficulty easy
  roadjump play --seed 42 --log-file roadjump.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early; Bubble Tea sends the real size on start
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.TickRate
	rt.Seed = flagSeed

	return tui.Run(cfg, rt, logger)
}
