package game

// State is the phase of a game.
type State int

const (
	Playing State = iota
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}
