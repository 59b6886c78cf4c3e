package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Pablo-Gaspar/baka/internal/errors"
)

// NewOpenCommand creates the open command definition
func NewOpenCommand() *cli.Command {
	return &cli.Command{
		Name:  "open",
		Usage: "Launch a program without waiting for it",
		Description: "Hands the program to the shell's start builtin and returns immediately. " +
			"Success means the launch request was accepted, not that the program is running.",
		ArgsUsage: "<program>",
		Action:    openCommand,
	}
}

func openCommand(_ context.Context, cmd *cli.Command) error {
	program := cmd.Args().First()
	if program == "" {
		return errors.ProgramNameRequired()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	automator := newAutomator(cfg)
	return writeResult(commandWriter(cmd), automator.StartProgram(program))
}
