package tui

import (
	"strings"

	"github.com/lox/lightsout/internal/board"
)

// gridOrigin is the offset of the first cell inside BoardStyle: one column
// of border plus one of padding, and one row of border.
const (
	gridOriginX = 2
	gridOriginY = 1
)

// RenderBoard draws b inside BoardStyle. cursor may be nil.
func RenderBoard(b *board.Board, cursor *board.Position) string {
	rows := make([]string, b.Rows())
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		sb.Reset()
		for c := 0; c < b.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			p := board.Position{Row: r, Col: c}
			cell := Cell{
				Pos:      p,
				Lit:      b.Lit(p),
				Selected: cursor != nil && *cursor == p,
			}
			sb.WriteString(cell.View())
		}
		rows[r] = sb.String()
	}
	return BoardStyle.Render(strings.Join(rows, strings.Repeat("\n", rowStride)))
}

// cellAt maps a terminal coordinate relative to the top-left corner of the
// rendered board to the cell drawn there. Gaps and borders map to nothing.
func cellAt(b *board.Board, x, y int) (board.Position, bool) {
	dx, dy := x-gridOriginX, y-gridOriginY
	if dx < 0 || dy < 0 || dx%cellStride >= cellWidth || dy%rowStride != 0 {
		return board.Position{}, false
	}
	p := board.Position{Row: dy / rowStride, Col: dx / cellStride}
	return p, b.Contains(p)
}
