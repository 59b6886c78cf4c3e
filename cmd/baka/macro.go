package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Pablo-Gaspar/baka/internal/command"
	"github.com/Pablo-Gaspar/baka/internal/config"
	"github.com/Pablo-Gaspar/baka/internal/macros"
)

// NewMacroCommand creates the macro command definition
func NewMacroCommand() *cli.Command {
	return &cli.Command{
		Name:        "macro",
		Usage:       "Run a named command sequence from the configuration",
		UsageText:   "baka macro <name>\n   baka macro --list",
		ArgsUsage:   "<name>",
		Description: "Runs the steps of a configured macro in order, stopping at the first failure.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List the configured macros instead of running one",
			},
		},
		Action: macroCommand,
	}
}

func macroCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := newMacroRunner(cfg)
	w := commandWriter(cmd)

	if cmd.Bool("list") {
		names := runner.Names()
		if len(names) == 0 {
			fmt.Fprintln(w, "No macros configured")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	output, err := runner.Run(cmd.Args().First())
	if output != "" {
		fmt.Fprintln(w, output)
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// newMacroRunner translates the configured macro table into runner steps.
func newMacroRunner(cfg *config.Config) *macros.Runner {
	table := make(map[string][]macros.Step, len(cfg.Macros))
	for name, steps := range cfg.Macros {
		converted := make([]macros.Step, len(steps))
		for i, step := range steps {
			kind := command.ShellCmd
			if step.Shell == "powershell" {
				kind = command.ShellPowerShell
			}
			converted[i] = macros.Step{Shell: kind, Command: step.Command}
		}
		table[name] = converted
	}

	return macros.NewRunner(
		newExecutor(),
		command.NewShell(command.ShellCmd, cfg.Shell.CmdBinary),
		command.NewShell(command.ShellPowerShell, cfg.Shell.PowerShellBinary),
		cfg.Shell.Timeout(),
		cfg.Shell.OutputCodepage,
		table,
	)
}
