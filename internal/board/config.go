package board

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when board dimensions or the starting
// light probability are out of range.
var ErrInvalidConfiguration = errors.New("invalid board configuration")

// Default board settings.
const (
	DefaultRows                = 5
	DefaultCols                = 5
	DefaultChanceLightStartsOn = 0.5
)

// Config describes how a new board is generated.
type Config struct {
	Rows                int
	Cols                int
	ChanceLightStartsOn float64
}

// DefaultConfig returns a 5x5 board where each light starts on half the time.
func DefaultConfig() Config {
	return Config{
		Rows:                DefaultRows,
		Cols:                DefaultCols,
		ChanceLightStartsOn: DefaultChanceLightStartsOn,
	}
}

// Validate checks the dimensions and the probability.
func (c Config) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidConfiguration, c.Rows)
	}
	if c.Cols < 1 {
		return fmt.Errorf("%w: cols must be at least 1, got %d", ErrInvalidConfiguration, c.Cols)
	}
	p := c.ChanceLightStartsOn
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: chance light starts on must be between 0 and 1, got %v", ErrInvalidConfiguration, p)
	}
	return nil
}
