package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/lightsout/internal/board"
	"github.com/lox/lightsout/internal/randutil"
)

// Generator returns a function that starts a new game on every call. With a
// non-zero seed the n-th game uses seed+n, so a session can be replayed; a
// zero seed draws a fresh one from clock for each game.
func Generator(cfg board.Config, seed int64, clock quartz.Clock, logger *log.Logger) func() (*Game, error) {
	var n int64
	return func() (*Game, error) {
		s := randutil.ResolveSeed(clock, seed)
		if seed != 0 {
			s += n
		}
		n++

		logger.Info("Generating board", "seed", s, "rows", cfg.Rows, "cols", cfg.Cols)
		return New(cfg, randutil.New(s), logger)
	}
}
