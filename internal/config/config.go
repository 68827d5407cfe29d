// Package config loads video poker settings from an HCL file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kelseyhightower/envconfig"
	"github.com/lox/videopoker/internal/paytable"
)

// EnvPrefix is the prefix for environment overrides, e.g. VIDEOPOKER_GAME_DECKS
const EnvPrefix = "videopoker"

// Config represents the complete configuration
type Config struct {
	Game     GameSettings    `envconfig:"game"`
	Paytable map[string]int  `envconfig:"paytable"`
	UI       UISettings      `envconfig:"ui"`
	History  HistorySettings `envconfig:"history"`
}

// GameSettings contains session settings
type GameSettings struct {
	StartingBalance int `hcl:"starting_balance,optional" envconfig:"starting_balance"`
	Decks           int `hcl:"decks,optional" envconfig:"decks"`
	MaxBet          int `hcl:"max_bet,optional" envconfig:"max_bet"`
	// Seed fixes the shuffle when set. Zero is a valid seed.
	Seed *int64 `hcl:"seed,optional" envconfig:"seed"`
}

// UISettings contains terminal settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional" envconfig:"log_level"`
	LogFile  string `hcl:"log_file,optional" envconfig:"log_file"`
	NoColor  bool   `hcl:"no_color,optional" envconfig:"no_color"`
	Plain    bool   `hcl:"plain,optional" envconfig:"plain"`
}

// HistorySettings contains hand log settings
type HistorySettings struct {
	File string `hcl:"file,optional" envconfig:"file"`
}

// fileConfig is the shape of the HCL file. Every block is optional.
type fileConfig struct {
	Game     *GameSettings    `hcl:"game,block"`
	Paytable map[string]int   `hcl:"paytable,optional"`
	UI       *UISettings      `hcl:"ui,block"`
	History  *HistorySettings `hcl:"history,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StartingBalance: 100,
			Decks:           1,
		},
		Paytable: map[string]int{},
		UI: UISettings{
			LogLevel: "info",
			LogFile:  "videopoker.log",
		},
	}
}

// Load reads filename (if it exists), applies environment overrides and
// validates the result. An empty filename skips the file.
func Load(filename string) (*Config, error) {
	cfg, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from an HCL file. A missing file yields the defaults.
func LoadFile(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.merge(&fc)
	return cfg, nil
}

// merge copies the values set in the file over the defaults
func (c *Config) merge(fc *fileConfig) {
	if g := fc.Game; g != nil {
		if g.StartingBalance != 0 {
			c.Game.StartingBalance = g.StartingBalance
		}
		if g.Decks != 0 {
			c.Game.Decks = g.Decks
		}
		c.Game.MaxBet = g.MaxBet
		if g.Seed != nil {
			c.Game.Seed = g.Seed
		}
	}

	for k, v := range fc.Paytable {
		c.Paytable[k] = v
	}

	if ui := fc.UI; ui != nil {
		if ui.LogLevel != "" {
			c.UI.LogLevel = ui.LogLevel
		}
		if ui.LogFile != "" {
			c.UI.LogFile = ui.LogFile
		}
		c.UI.NoColor = ui.NoColor
		c.UI.Plain = ui.Plain
	}

	if fc.History != nil {
		c.History.File = fc.History.File
	}
}

// ApplyEnv overlays VIDEOPOKER_* environment variables
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if c.Paytable == nil {
		c.Paytable = map[string]int{}
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.StartingBalance <= 0 {
		return fmt.Errorf("starting balance must be positive")
	}
	if c.Game.Decks < 1 {
		return fmt.Errorf("decks must be at least 1")
	}
	if c.Game.MaxBet < 0 {
		return fmt.Errorf("max bet cannot be negative")
	}
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	if _, err := c.PaytableTable(); err != nil {
		return err
	}
	return nil
}

// PaytableTable returns the Jacks or Better table with any overrides applied
func (c *Config) PaytableTable() (paytable.Paytable, error) {
	return paytable.Default().WithOverrides(c.Paytable)
}

// GetLogLevel returns the parsed log level, falling back to info
func (c *Config) GetLogLevel() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
