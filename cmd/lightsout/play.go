package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/lightsout/cmd/lightsout/shared"
	"github.com/lox/lightsout/internal/game"
	"github.com/lox/lightsout/internal/tui"
)

type PlayCmd struct {
	BoardFlags

	NoMouse  bool   `help:"Disable mouse support"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
}

func (c *PlayCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.NoMouse {
		cfg.UI.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The terminal belongs to the TUI, so logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger, err := shared.SetupLogger(logFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}

	logger.Info("Starting Lights Out",
		"rows", cfg.Board.Rows,
		"cols", cfg.Board.Cols,
		"chance", cfg.Board.ChanceLightStartsOn,
		"config", c.Config)

	newGame := game.Generator(cfg.BoardConfig(), cfg.Board.Seed, quartz.NewReal(), logger)
	model, err := tui.NewModel(newGame, logger)
	if err != nil {
		return err
	}

	ctx := shared.SetupSignalHandlerWithLogger(logger)
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); !cleanExit(err) {
		return fmt.Errorf("running TUI: %w", err)
	}

	logger.Info("Goodbye", "state", model.Game().State())
	return nil
}

// cleanExit reports whether the program stopped because the user or a signal
// asked it to, rather than because it failed.
func cleanExit(err error) bool {
	return err == nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)
}
