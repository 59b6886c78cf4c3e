package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/Pablo-Gaspar/baka/internal/errors"
	"github.com/Pablo-Gaspar/baka/internal/vm"
)

// NewVMCommand creates the vm command definition with its subcommands
func NewVMCommand() *cli.Command {
	backendFlag := &cli.StringFlag{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "Virtualization backend (virtualbox or vmware); defaults to the configured one",
	}

	return &cli.Command{
		Name:        "vm",
		Usage:       "Control local virtual machines",
		Description: "Drives VirtualBox (VBoxManage) or VMware (vmrun) through their command-line tools.",
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List registered virtual machines",
				Flags:   []cli.Flag{backendFlag},
				Action:  vmListCommand,
			},
			{
				Name:      "start",
				Usage:     "Start a virtual machine",
				ArgsUsage: "<machine>",
				Flags: []cli.Flag{
					backendFlag,
					&cli.BoolFlag{
						Name:  "headless",
						Usage: "Start without a console window",
					},
				},
				Action: vmStartCommand,
			},
			{
				Name:      "stop",
				Usage:     "Stop a virtual machine",
				ArgsUsage: "<machine>",
				Flags: []cli.Flag{
					backendFlag,
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Cut power instead of requesting a clean shutdown",
					},
				},
				Action: vmStopCommand,
			},
			{
				Name:      "guest",
				Usage:     "Run a program inside a running guest (VMware only)",
				ArgsUsage: "<machine>",
				Flags: []cli.Flag{
					backendFlag,
					&cli.StringFlag{
						Name:    "user",
						Aliases: []string{"u"},
						Usage:   "Guest OS user name",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Guest OS password",
					},
					&cli.StringFlag{
						Name:  "program",
						Usage: "Program path inside the guest",
					},
				},
				Action: vmGuestCommand,
			},
		},
	}
}

func vmListCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manager, err := newVMManager(cfg, cmd.String("backend"))
	if err != nil {
		return err
	}
	return writeResult(commandWriter(cmd), manager.List())
}

func vmStartCommand(_ context.Context, cmd *cli.Command) error {
	machine := cmd.Args().First()
	if machine == "" {
		return errors.MachineRequired("start")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manager, err := newVMManager(cfg, cmd.String("backend"))
	if err != nil {
		return err
	}

	id := cfg.VM.ResolveMachine(machine)
	return writeResult(commandWriter(cmd), manager.Start(id, vm.StartOptions{
		Headless: cmd.Bool("headless"),
	}))
}

func vmStopCommand(_ context.Context, cmd *cli.Command) error {
	machine := cmd.Args().First()
	if machine == "" {
		return errors.MachineRequired("stop")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manager, err := newVMManager(cfg, cmd.String("backend"))
	if err != nil {
		return err
	}

	id := cfg.VM.ResolveMachine(machine)
	return writeResult(commandWriter(cmd), manager.Stop(id, vm.StopOptions{
		Force: cmd.Bool("force"),
	}))
}

func vmGuestCommand(_ context.Context, cmd *cli.Command) error {
	machine := cmd.Args().First()
	if machine == "" {
		return errors.MachineRequired("guest")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	user := cmd.String("user")
	if user == "" {
		user = cfg.VM.GuestUser
	}
	password := cmd.String("password")
	if password == "" {
		password = promptPassword(commandWriter(cmd))
	}
	if user == "" || password == "" {
		return errors.GuestCredentialsRequired()
	}
	program := cmd.String("program")
	if program == "" {
		return errors.GuestProgramRequired()
	}

	manager, err := newVMManager(cfg, cmd.String("backend"))
	if err != nil {
		return err
	}

	result, err := manager.RunInGuest(vm.GuestCommand{
		VMXPath:  cfg.VM.ResolveMachine(machine),
		User:     user,
		Password: password,
		Program:  program,
	})
	if err != nil {
		return err
	}
	return writeResult(commandWriter(cmd), result)
}

// promptPassword reads the guest password from the terminal without echo.
// Non-interactive sessions get an empty string and fail the credential check.
func promptPassword(w io.Writer) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ""
	}
	fmt.Fprint(w, "Guest password: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return ""
	}
	return string(secret)
}
