// Package board implements the Lights Out grid.
//
// A Board is an immutable rows x cols grid of lights. ToggleAround never
// mutates its receiver; it returns a new Board with the clicked cell and its
// orthogonal neighbours flipped:
//
//	b, err := board.New(board.DefaultConfig(), rng)
//	b, err = b.ToggleAround(board.Position{Row: 2, Col: 2})
//	if b.IsWon() {
//	    // every light is off
//	}
//
// Neighbours that fall outside the grid are skipped, never wrapped.
package board
