package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned when a position does not lie on the board.
var ErrOutOfBounds = errors.New("position out of bounds")

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

// String returns the position as "row-col".
func (p Position) String() string {
	return fmt.Sprintf("%d-%d", p.Row, p.Col)
}

// Float64er is the subset of *rand.Rand used to draw the starting lights.
type Float64er interface {
	Float64() float64
}

// plus lists the offsets flipped by ToggleAround: the cell itself, left,
// right, up and down.
var plus = [5]Position{
	{0, 0},
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

// Board is an immutable grid of lights. The zero value is not usable; build
// one with New or FromRows.
type Board struct {
	rows  int
	cols  int
	cells []bool // row-major, len == rows*cols
}

// New validates cfg and generates a board where each light is independently
// lit with probability cfg.ChanceLightStartsOn.
func New(cfg Config, rng Float64er) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		rows:  cfg.Rows,
		cols:  cfg.Cols,
		cells: make([]bool, cfg.Rows*cfg.Cols),
	}
	for i := range b.cells {
		b.cells[i] = rng.Float64() < cfg.ChanceLightStartsOn
	}
	return b, nil
}

// FromRows builds a board from explicit rows of lights. The input is copied.
func FromRows(rows [][]bool) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: board must have at least one row and one column", ErrInvalidConfiguration)
	}

	cols := len(rows[0])
	b := &Board{
		rows:  len(rows),
		cols:  cols,
		cells: make([]bool, 0, len(rows)*cols),
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfiguration, r, len(row), cols)
		}
		b.cells = append(b.cells, row...)
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Contains reports whether p lies on the board.
func (b *Board) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Lit reports whether the light at p is on. Positions off the board are
// reported as unlit.
func (b *Board) Lit(p Position) bool {
	if !b.Contains(p) {
		return false
	}
	return b.cells[b.index(p)]
}

// ToggleAround returns a new board with p and its orthogonal neighbours
// flipped. The receiver is left unchanged.
func (b *Board) ToggleAround(p Position) (*Board, error) {
	if !b.Contains(p) {
		return nil, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.rows, b.cols)
	}

	next := b.clone()
	for _, d := range plus {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if next.Contains(n) {
			i := next.index(n)
			next.cells[i] = !next.cells[i]
		}
	}
	return next, nil
}

// IsWon reports whether every light is off.
func (b *Board) IsWon() bool {
	for _, lit := range b.cells {
		if lit {
			return false
		}
	}
	return true
}

// LitCount returns the number of lights that are on.
func (b *Board) LitCount() int {
	n := 0
	for _, lit := range b.cells {
		if lit {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the grid as rows of lights.
func (b *Board) Snapshot() [][]bool {
	out := make([][]bool, b.rows)
	for r := range out {
		out[r] = make([]bool, b.cols)
		copy(out[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// Equal reports whether two boards have the same shape and lights.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board with 'O' for lit and '.' for unlit cells, one row
// per line.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c] {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func (b *Board) index(p Position) int {
	return p.Row*b.cols + p.Col
}

func (b *Board) clone() *Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}
