package tui

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/lightsout/internal/board"
	"github.com/lox/lightsout/internal/game"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// fixedGames returns a factory handing out a fresh game on rows each call.
func fixedGames(t *testing.T, rows [][]bool) GameFactory {
	t.Helper()
	return func() (*game.Game, error) {
		b, err := board.FromRows(rows)
		require.NoError(t, err)
		return game.NewFromBoard(b, quietLogger()), nil
	}
}

func newTestModel(t *testing.T, rows [][]bool) *Model {
	t.Helper()
	m, err := NewModel(fixedGames(t, rows), quietLogger())
	require.NoError(t, err)
	return m
}

// send feeds msg through Update and then feeds every message produced by the
// returned command, the way the Bubble Tea runtime would.
func send(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	_, cmd := m.Update(msg)
	for cmd != nil {
		next := cmd()
		if next == nil {
			return
		}
		if _, ok := next.(tea.QuitMsg); ok {
			return
		}
		_, cmd = m.Update(next)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// screenPos returns the terminal coordinate of the middle of a cell as laid
// out by View.
func screenPos(p board.Position) (int, int) {
	return gridOriginX + p.Col*cellStride + 1, titleHeight + gridOriginY + p.Row*rowStride
}

func click(p board.Position) tea.MouseMsg {
	x, y := screenPos(p)
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestCellView(t *testing.T) {
	assert.Equal(t, " O ", Cell{Lit: true}.View())
	assert.Equal(t, " . ", Cell{}.View())
	assert.Equal(t, "[O]", Cell{Lit: true, Selected: true}.View())
	assert.Equal(t, "[.]", Cell{Selected: true}.View())
	assert.Equal(t, cellWidth, lipgloss.Width(Cell{}.View()))
}

func TestCellClickCarriesPosition(t *testing.T) {
	p := board.Position{Row: 2, Col: 3}
	msg := Cell{Pos: p}.Click()()
	assert.Equal(t, ToggleMsg{Pos: p}, msg)
}

func TestRenderBoardLayoutMatchesHitTest(t *testing.T) {
	b, err := board.FromRows([][]bool{
		{true, false, true},
		{false, true, false},
	})
	require.NoError(t, err)

	lines := strings.Split(RenderBoard(b, nil), "\n")
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			p := board.Position{Row: r, Col: c}
			x := gridOriginX + c*cellStride
			y := gridOriginY + r*rowStride

			line := []rune(lines[y])
			require.GreaterOrEqual(t, len(line), x+cellWidth)
			assert.Equal(t, Cell{Lit: b.Lit(p)}.View(), string(line[x:x+cellWidth]), "cell %s", p)

			for dx := 0; dx < cellWidth; dx++ {
				got, ok := cellAt(b, x+dx, y)
				assert.True(t, ok)
				assert.Equal(t, p, got)
			}
		}
	}

	_, ok := cellAt(b, gridOriginX+cellWidth, gridOriginY) // gap between columns
	assert.False(t, ok)
	_, ok = cellAt(b, gridOriginX, gridOriginY+1) // gap between rows
	assert.False(t, ok)
	_, ok = cellAt(b, 0, 0) // border
	assert.False(t, ok)
	_, ok = cellAt(b, gridOriginX+3*cellStride, gridOriginY) // past the last column
	assert.False(t, ok)
}

func TestViewLayoutMatchesClicks(t *testing.T) {
	m := newTestModel(t, [][]bool{
		{true, false},
		{false, false},
	})

	lines := strings.Split(m.View(), "\n")
	x, y := screenPos(board.Position{Row: 0, Col: 0})
	line := []rune(lines[y])
	assert.Equal(t, "[O]", string(line[x-1:x-1+cellWidth]))
}

func TestClickTogglesPlus(t *testing.T) {
	m := newTestModel(t, [][]bool{
		{true, true},
		{true, true},
	})

	send(t, m, click(board.Position{Row: 0, Col: 0}))

	assert.Equal(t, [][]bool{
		{false, false},
		{false, true},
	}, m.Game().Board().Snapshot())
	assert.Equal(t, board.Position{Row: 0, Col: 0}, m.Cursor())
	assert.Equal(t, game.Playing, m.Game().State())
}

func TestClickOnBoardTallerThanTerminal(t *testing.T) {
	const rows, cols, termHeight = 10, 4, 24

	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			grid[r][c] = true
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := board.Position{Row: r, Col: c}
			m := newTestModel(t, grid)
			send(t, m, tea.WindowSizeMsg{Width: 80, Height: termHeight})

			// title, blank, 21 board lines, status, blank, help
			view := m.View()
			require.Equal(t, 26, lipgloss.Height(view))
			dropped := lipgloss.Height(view) - termHeight

			msg := click(p)
			msg.Y -= dropped
			send(t, m, msg)

			assert.Equal(t, p, m.Cursor(), "click on %s", p)
			assert.False(t, m.Game().Board().Lit(p), "click on %s", p)
		}
	}
}

func TestClickIgnoresGapsAndOtherButtons(t *testing.T) {
	m := newTestModel(t, [][]bool{{true, true}})
	before := m.Game().Board()

	x, y := screenPos(board.Position{})
	send(t, m, tea.MouseMsg{X: x + 2, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	send(t, m, tea.MouseMsg{X: x, Y: y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Same(t, before, m.Game().Board())
}

func TestKeyboardCursorAndToggle(t *testing.T) {
	m := newTestModel(t, [][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	})

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	send(t, m, runes("l"))
	assert.Equal(t, board.Position{Row: 1, Col: 1}, m.Cursor())

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, [][]bool{
		{false, true, false},
		{true, false, true},
		{false, true, false},
	}, m.Game().Board().Snapshot())

	// the cursor is clamped to the grid
	for i := 0; i < 5; i++ {
		send(t, m, tea.KeyMsg{Type: tea.KeyRight})
		send(t, m, runes("j"))
	}
	assert.Equal(t, board.Position{Row: 2, Col: 2}, m.Cursor())
	for i := 0; i < 5; i++ {
		send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		send(t, m, runes("k"))
	}
	assert.Equal(t, board.Position{Row: 0, Col: 0}, m.Cursor())
}

func TestWinReplacesBoard(t *testing.T) {
	m := newTestModel(t, [][]bool{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	})
	assert.Contains(t, m.View(), "╭")
	assert.NotContains(t, m.View(), WinMessage)

	send(t, m, click(board.Position{Row: 1, Col: 1}))
	require.True(t, m.Game().IsWon())

	view := m.View()
	assert.Contains(t, view, WinMessage)
	assert.NotContains(t, view, "╭")
	assert.NotContains(t, view, "[.]")
}

func TestWonGameIgnoresInput(t *testing.T) {
	m := newTestModel(t, [][]bool{{true}})
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Game().IsWon())
	won := m.Game().Board()

	send(t, m, click(board.Position{}))
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	send(t, m, runes("x"))

	assert.Same(t, won, m.Game().Board())
	assert.True(t, m.Game().IsWon())
	assert.Contains(t, m.View(), WinMessage)
}

func TestStartsWonWhenBoardIsDark(t *testing.T) {
	m := newTestModel(t, [][]bool{{false}})
	assert.True(t, m.Game().IsWon())
	assert.Contains(t, m.View(), WinMessage)
}

func TestNewGame(t *testing.T) {
	m := newTestModel(t, [][]bool{{true}})
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	first := m.Game()
	require.True(t, first.IsWon())

	send(t, m, runes("n"))

	assert.NotSame(t, first, m.Game())
	assert.True(t, first.IsWon(), "the finished game stays won")
	assert.Equal(t, game.Playing, m.Game().State())
	assert.NotContains(t, m.View(), WinMessage)
}

func TestNewGameFailureIsShown(t *testing.T) {
	calls := 0
	factory := func() (*game.Game, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("no more boards")
		}
		return fixedGames(t, [][]bool{{true}})()
	}

	m, err := NewModel(factory, quietLogger())
	require.NoError(t, err)
	first := m.Game()

	send(t, m, runes("n"))
	assert.Same(t, first, m.Game())
	assert.Contains(t, m.View(), "no more boards")
}

func TestNewModelPropagatesFactoryError(t *testing.T) {
	_, err := NewModel(func() (*game.Game, error) {
		return nil, board.ErrInvalidConfiguration
	}, quietLogger())
	assert.ErrorIs(t, err, board.ErrInvalidConfiguration)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, [][]bool{{true}})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, [][]bool{{true}})
	assert.NotContains(t, m.View(), "left")
	assert.Contains(t, m.View(), "enter/space/x toggle")

	send(t, m, runes("?"))
	assert.Contains(t, m.View(), "left")
}
