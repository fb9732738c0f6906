package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/lox/lightsout/cmd/lightsout/shared"
	"github.com/lox/lightsout/internal/board"
	"github.com/lox/lightsout/internal/randutil"
	"github.com/lox/lightsout/internal/tui"
	"github.com/muesli/termenv"
)

type ShowCmd struct {
	BoardFlags

	NoColor bool `help:"Print without colors"`
	Plain   bool `help:"Print rows of O and . instead of the styled grid"`
	Debug   bool `help:"Enable debug logging"`

	out io.Writer // stdout when nil
}

func (c *ShowCmd) Run() error {
	level := "warn"
	if c.Debug {
		level = "debug"
	}
	logger, err := shared.SetupLogger(os.Stderr, level)
	if err != nil {
		return err
	}

	cfg, err := c.load()
	if err != nil {
		return err
	}

	seed := randutil.ResolveSeed(quartz.NewReal(), cfg.Board.Seed)
	b, err := board.New(cfg.BoardConfig(), randutil.New(seed))
	if err != nil {
		return err
	}
	logger.Debug("Generated board", "seed", seed, "lit", b.LitCount())

	w := c.out
	if w == nil {
		w = os.Stdout
	}

	if c.Plain {
		fmt.Fprintln(w, b.String())
	} else {
		if c.NoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		fmt.Fprintln(w, tui.RenderBoard(b, nil))
	}

	if b.IsWon() {
		fmt.Fprintln(w, tui.WinMessage)
	}
	fmt.Fprintf(w, "seed: %d\n", seed)
	return nil
}
