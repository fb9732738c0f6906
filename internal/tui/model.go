package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/lightsout/internal/board"
	"github.com/lox/lightsout/internal/game"
)

// titleHeight is the number of lines drawn above the board: the title and a
// blank line.
const titleHeight = 2

// WinMessage replaces the board once every light is out.
const WinMessage = "You Win"

// GameFactory starts a new game. It is called once by NewModel and again for
// every "new game" request.
type GameFactory func() (*game.Game, error)

// Model is the Bubble Tea model driving a game.Game.
type Model struct {
	game    *game.Game
	newGame GameFactory
	logger  *log.Logger

	keys keyMap
	help help.Model

	cursor   board.Position
	lastErr  error
	width    int
	height   int
	quitting bool
}

// NewModel starts the first game from newGame.
func NewModel(newGame GameFactory, logger *log.Logger) (*Model, error) {
	g, err := newGame()
	if err != nil {
		return nil, err
	}

	m := &Model{
		newGame: newGame,
		logger:  logger.WithPrefix("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.setGame(g)
	return m, nil
}

// Game returns the game currently on screen.
func (m *Model) Game() *game.Game { return m.game }

// Cursor returns the keyboard cursor position.
func (m *Model) Cursor() board.Position { return m.cursor }

func (m *Model) setGame(g *game.Game) {
	m.game = g
	m.cursor = board.Position{}
	m.lastErr = nil
	m.keys.setPlaying(!g.IsWon())
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case ToggleMsg:
		m.toggle(msg.Pos)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NewGame):
		g, err := m.newGame()
		if err != nil {
			m.logger.Error("Failed to start new game", "error", err)
			m.lastErr = err
			return nil
		}
		m.logger.Info("Starting new game", "rows", g.Board().Rows(), "cols", g.Board().Cols())
		m.setGame(g)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Toggle):
		return m.cellFor(m.cursor).Click()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.game.IsWon() || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	pos, ok := cellAt(m.game.Board(), msg.X, msg.Y+m.scrolledOff()-titleHeight)
	if !ok {
		return nil
	}
	m.cursor = pos
	return m.cellFor(pos).Click()
}

// scrolledOff returns how many lines of the view the renderer drops off the
// top because the view is taller than the terminal.
func (m *Model) scrolledOff() int {
	if m.height <= 0 {
		return 0
	}
	return max(0, lipgloss.Height(m.View())-m.height)
}

func (m *Model) toggle(p board.Position) {
	state, err := m.game.Toggle(p)
	if err != nil {
		m.logger.Warn("Toggle rejected", "pos", p, "error", err)
		m.lastErr = err
		return
	}
	m.lastErr = nil
	if state == game.Won {
		m.keys.setPlaying(false)
	}
}

func (m *Model) moveCursor(dRow, dCol int) {
	b := m.game.Board()
	m.cursor.Row = min(max(m.cursor.Row+dRow, 0), b.Rows()-1)
	m.cursor.Col = min(max(m.cursor.Col+dCol, 0), b.Cols()-1)
}

func (m *Model) cellFor(p board.Position) Cell {
	return Cell{
		Pos:      p,
		Lit:      m.game.Board().Lit(p),
		Selected: p == m.cursor,
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Lights Out"))
	sb.WriteString(strings.Repeat("\n", titleHeight))

	if m.game.IsWon() {
		sb.WriteString(WinStyle.Render(WinMessage))
	} else {
		b := m.game.Board()
		sb.WriteString(RenderBoard(b, &m.cursor))
		sb.WriteString("\n")
		sb.WriteString(StatusStyle.Render(fmt.Sprintf("%d of %d lights on", b.LitCount(), b.Rows()*b.Cols())))
	}

	if m.lastErr != nil {
		sb.WriteString("\n")
		sb.WriteString(ErrorStyle.Render(m.lastErr.Error()))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
