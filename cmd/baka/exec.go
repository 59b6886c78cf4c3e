package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Pablo-Gaspar/baka/internal/command"
	"github.com/Pablo-Gaspar/baka/internal/errors"
)

// NewExecCommand creates the exec command definition
func NewExecCommand() *cli.Command {
	return &cli.Command{
		Name:        "exec",
		Usage:       "Run a command through a Windows shell",
		UsageText:   "baka exec [--shell cmd|powershell] [--timeout 30s] <command> [args...]",
		ArgsUsage:   "<command> [args...]",
		Description: "Wraps the command for the selected shell, runs it with a time limit, and prints the decoded output.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "shell",
				Aliases: []string{"s"},
				Usage:   "Shell to run the command in (cmd or powershell)",
				Value:   "cmd",
			},
			&cli.StringFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "Time limit for the command (Go duration syntax)",
			},
		},
		Action: execCommand,
	}
}

func execCommand(_ context.Context, cmd *cli.Command) error {
	raw := cmd.Args().Slice()
	if len(raw) == 0 {
		return errors.CommandRequired()
	}

	kind, err := command.ParseShellKind(cmd.String("shell"))
	if err != nil {
		return errors.UnknownShell(cmd.String("shell"))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var timeout time.Duration
	if v := cmd.String("timeout"); v != "" {
		timeout, err = time.ParseDuration(v)
		if err != nil || timeout <= 0 {
			return errors.InvalidTimeout(v)
		}
	}

	automator := newAutomator(cfg)
	return writeResult(commandWriter(cmd), automator.RunShell(kind, raw, timeout))
}
