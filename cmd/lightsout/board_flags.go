package main

import (
	"fmt"

	"github.com/lox/lightsout/internal/config"
)

// BoardFlags are shared by every command that generates a board. Unset flags
// fall back to the configuration file.
type BoardFlags struct {
	Config string   `short:"c" default:"lightsout.hcl" type:"path" help:"Path to HCL configuration file"`
	Rows   *int     `help:"Number of rows (overrides config)"`
	Cols   *int     `help:"Number of columns (overrides config)"`
	Chance *float64 `help:"Chance each light starts on, 0 to 1 (overrides config)"`
	Seed   *int64   `help:"Board seed, 0 for random (overrides config)"`
}

// load reads the config file, applies flag overrides and validates the result.
func (f *BoardFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", f.Config, err)
	}

	if f.Rows != nil {
		cfg.Board.Rows = *f.Rows
	}
	if f.Cols != nil {
		cfg.Board.Cols = *f.Cols
	}
	if f.Chance != nil {
		cfg.Board.ChanceLightStartsOn = *f.Chance
	}
	if f.Seed != nil {
		cfg.Board.Seed = *f.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
