package main

import (
	"github.com/lox/pokertrainer/internal/tui"
)

// PlayCmd runs the interactive drill session.
type PlayCmd struct {
	Debug bool `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	level := "warn"
	if c.Debug {
		level = "debug"
	}
	logger := setupLogger(level)
	return tui.Run(logger)
}
