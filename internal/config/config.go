// Package config loads and writes the lightsout HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/lox/lightsout/internal/board"
	"github.com/lox/lightsout/internal/fileutil"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFile is the config path used when none is given.
const DefaultFile = "lightsout.hcl"

// Config is the complete lightsout configuration.
type Config struct {
	Board BoardSettings
	UI    UISettings
}

// BoardSettings controls how new boards are generated.
type BoardSettings struct {
	Rows                int
	Cols                int
	ChanceLightStartsOn float64
	Seed                int64 // 0 means derive from the clock
}

// UISettings controls the terminal front end.
type UISettings struct {
	LogLevel string
	LogFile  string
	Mouse    bool
}

// fileConfig mirrors the on-disk layout. Every attribute is a pointer so an
// explicit zero (chance_light_starts_on = 0) can be told apart from an
// omitted attribute.
type fileConfig struct {
	Board *fileBoard `hcl:"board,block"`
	UI    *fileUI    `hcl:"ui,block"`
}

type fileBoard struct {
	Rows                *int     `hcl:"rows,optional"`
	Cols                *int     `hcl:"cols,optional"`
	ChanceLightStartsOn *float64 `hcl:"chance_light_starts_on,optional"`
	Seed                *int64   `hcl:"seed,optional"`
}

type fileUI struct {
	LogLevel *string `hcl:"log_level,optional"`
	LogFile  *string `hcl:"log_file,optional"`
	Mouse    *bool   `hcl:"mouse,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Board: BoardSettings{
			Rows:                board.DefaultRows,
			Cols:                board.DefaultCols,
			ChanceLightStartsOn: board.DefaultChanceLightStartsOn,
		},
		UI: UISettings{
			LogLevel: "warn",
			LogFile:  "lightsout.log",
			Mouse:    true,
		},
	}
}

// Load reads filename. A missing file yields the defaults; omitted
// attributes keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if b := raw.Board; b != nil {
		setIf(&config.Board.Rows, b.Rows)
		setIf(&config.Board.Cols, b.Cols)
		setIf(&config.Board.ChanceLightStartsOn, b.ChanceLightStartsOn)
		setIf(&config.Board.Seed, b.Seed)
	}
	if u := raw.UI; u != nil {
		setIf(&config.UI.LogLevel, u.LogLevel)
		setIf(&config.UI.LogFile, u.LogFile)
		setIf(&config.UI.Mouse, u.Mouse)
	}

	return config, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// BoardConfig returns the board generation settings.
func (c *Config) BoardConfig() board.Config {
	return board.Config{
		Rows:                c.Board.Rows,
		Cols:                c.Board.Cols,
		ChanceLightStartsOn: c.Board.ChanceLightStartsOn,
	}
}

// Validate checks board settings and the log level.
func (c *Config) Validate() error {
	if err := c.BoardConfig().Validate(); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	if c.UI.LogFile == "" {
		return fmt.Errorf("log file is required")
	}

	return nil
}

// Encode renders the configuration as HCL.
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	b := root.AppendNewBlock("board", nil).Body()
	b.SetAttributeValue("rows", cty.NumberIntVal(int64(c.Board.Rows)))
	b.SetAttributeValue("cols", cty.NumberIntVal(int64(c.Board.Cols)))
	b.SetAttributeValue("chance_light_starts_on", cty.NumberFloatVal(c.Board.ChanceLightStartsOn))
	b.SetAttributeValue("seed", cty.NumberIntVal(c.Board.Seed))

	root.AppendNewline()

	u := root.AppendNewBlock("ui", nil).Body()
	u.SetAttributeValue("log_level", cty.StringVal(c.UI.LogLevel))
	u.SetAttributeValue("log_file", cty.StringVal(c.UI.LogFile))
	u.SetAttributeValue("mouse", cty.BoolVal(c.UI.Mouse))

	return f.Bytes()
}

// Save writes the configuration to filename atomically. Unless overwrite is
// set, an existing file is left alone and fileutil.ErrExists is returned.
func (c *Config) Save(filename string, overwrite bool) error {
	data := c.Encode()
	if overwrite {
		return fileutil.WriteFileAtomic(filename, data, 0o644)
	}
	return fileutil.WriteNewFileAtomic(filename, data, 0o644)
}
