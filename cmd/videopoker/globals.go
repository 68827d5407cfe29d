package main

import (
	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/cmd/videopoker/shared"
	"github.com/lox/videopoker/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" type:"path" default:"videopoker.hcl" help:"HCL configuration file"`
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `type:"path" help:"Log file for interactive play (overrides config)"`
}

// LoadConfig reads the configuration file and environment
func (g *Globals) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}
	if g.Debug {
		cfg.UI.LogLevel = "debug"
	}
	return cfg, nil
}

// FileLogger opens the configured log file
func (g *Globals) FileLogger(cfg *config.Config) (*log.Logger, func(), error) {
	return shared.SetupFileLogger(cfg.UI.LogFile, cfg.GetLogLevel())
}
