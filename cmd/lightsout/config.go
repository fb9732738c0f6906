package main

import (
	"errors"
	"fmt"

	"github.com/lox/lightsout/internal/config"
	"github.com/lox/lightsout/internal/fileutil"
)

type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a default configuration file"`
}

type ConfigInitCmd struct {
	Path  string `arg:"" optional:"" default:"lightsout.hcl" type:"path" help:"Where to write the file"`
	Force bool   `short:"f" help:"Overwrite an existing file"`
}

func (c *ConfigInitCmd) Run() error {
	err := config.Default().Save(c.Path, c.Force)
	if errors.Is(err, fileutil.ErrExists) {
		return fmt.Errorf("%s already exists, use --force to overwrite", c.Path)
	}
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Println("Wrote", c.Path)
	return nil
}
