package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/lightsout/internal/board"
)

// Grid geometry in terminal cells. A cell is cellWidth wide followed by a
// one column gap; board rows are separated by a blank line.
const (
	cellWidth  = 3
	cellStride = cellWidth + 1
	rowStride  = 2
)

// ToggleMsg asks the model to toggle the lights around Pos.
type ToggleMsg struct {
	Pos board.Position
}

// Cell renders a single light. It holds no state of its own.
type Cell struct {
	Pos      board.Position
	Lit      bool
	Selected bool
}

// View renders the cell as a cellWidth wide block.
func (c Cell) View() string {
	glyph := "."
	style := UnlitStyle
	if c.Lit {
		glyph = "O"
		style = LitStyle
	}

	if c.Selected {
		return style.Render("[" + glyph + "]")
	}
	return style.Render(" " + glyph + " ")
}

// Click forwards a click on this cell as a toggle request for its position.
func (c Cell) Click() tea.Cmd {
	pos := c.Pos
	return func() tea.Msg {
		return ToggleMsg{Pos: pos}
	}
}
