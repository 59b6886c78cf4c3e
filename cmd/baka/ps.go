package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// NewPsCommand creates the ps command definition
func NewPsCommand() *cli.Command {
	return &cli.Command{
		Name:        "ps",
		Usage:       "List running processes",
		Description: "Lists processes via Get-Process, falling back to tasklist when powershell is unavailable.",
		Action:      psCommand,
	}
}

func psCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	automator := newAutomator(cfg)
	return writeResult(commandWriter(cmd), automator.ListProcesses())
}
