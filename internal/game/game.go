package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/lightsout/internal/board"
)

// ErrGameOver is returned when a move is attempted after the game is won.
var ErrGameOver = errors.New("game is already won")

// Game is the state holder for one session. It is not safe for concurrent
// use; the UI event loop is its only caller.
type Game struct {
	board  *board.Board
	state  State
	logger *log.Logger
}

// New generates a board from cfg using rng. A board that starts dark is
// already won.
func New(cfg board.Config, rng board.Float64er, logger *log.Logger) (*Game, error) {
	b, err := board.New(cfg, rng)
	if err != nil {
		return nil, err
	}
	g := NewFromBoard(b, logger)
	g.logger.Debug("New game",
		"rows", cfg.Rows,
		"cols", cfg.Cols,
		"chance", cfg.ChanceLightStartsOn,
		"lit", b.LitCount(),
		"state", g.state)
	return g, nil
}

// NewFromBoard starts a game on an existing board.
func NewFromBoard(b *board.Board, logger *log.Logger) *Game {
	g := &Game{
		board:  b,
		logger: logger.WithPrefix("game"),
	}
	g.state = stateOf(b)
	return g
}

// Board returns the current board. Boards are immutable, so the caller may
// keep it across moves.
func (g *Game) Board() *board.Board { return g.board }

// State returns the current phase.
func (g *Game) State() State { return g.state }

// IsWon reports whether every light is off.
func (g *Game) IsWon() bool { return g.state == Won }

// Toggle flips the light at p and its neighbours, then recomputes the win
// state from the new board.
func (g *Game) Toggle(p board.Position) (State, error) {
	if g.state == Won {
		return g.state, fmt.Errorf("toggle %s: %w", p, ErrGameOver)
	}

	next, err := g.board.ToggleAround(p)
	if err != nil {
		return g.state, err
	}

	g.board = next
	g.state = stateOf(next)

	g.logger.Debug("Toggled", "pos", p, "lit", next.LitCount())
	if g.state == Won {
		g.logger.Info("All lights out", "rows", next.Rows(), "cols", next.Cols())
	}
	return g.state, nil
}

func stateOf(b *board.Board) State {
	if b.IsWon() {
		return Won
	}
	return Playing
}
