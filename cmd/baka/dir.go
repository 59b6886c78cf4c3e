package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// NewDirCommand creates the dir command definition
func NewDirCommand() *cli.Command {
	return &cli.Command{
		Name:        "dir",
		Usage:       "List the contents of a directory",
		Description: "Lists files and folders via the shell. With no argument the current directory is listed.",
		ArgsUsage:   "[path]",
		Action:      dirCommand,
	}
}

func dirCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	automator := newAutomator(cfg)
	return writeResult(commandWriter(cmd), automator.ListDirectory(cmd.Args().First()))
}
