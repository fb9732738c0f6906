// Package game holds a Lights Out session.
//
// A Game owns the current board and derives the win state from it after every
// move. The state machine has two states:
//
//	Playing --Toggle leaves every light off--> Won
//
// Won is terminal. Toggle on a won game returns ErrGameOver and the board is
// not touched; callers start a fresh Game instead.
package game
