package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Pablo-Gaspar/baka/internal/agent"
	"github.com/Pablo-Gaspar/baka/internal/assistant"
	"github.com/Pablo-Gaspar/baka/internal/command"
	"github.com/Pablo-Gaspar/baka/internal/config"
	"github.com/Pablo-Gaspar/baka/internal/history"
	console "github.com/Pablo-Gaspar/baka/internal/io"
	"github.com/Pablo-Gaspar/baka/internal/logging"
	"github.com/Pablo-Gaspar/baka/internal/vm"
)

// NewChatCommand creates the chat command definition
func NewChatCommand() *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "Interactive assistant session",
		Description: "Reads plain requests line by line and maps them onto the assistant's " +
			"capabilities. Type 'exit' or 'quit' to leave.",
		Action: chatCommand,
	}
}

func chatCommand(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing useful to do with a close error on exit

	var recorder assistant.Recorder
	if !cfg.History.Disabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			// Chat stays usable without history; the session logs the gap.
			logger.Warn().Err(err).Msg("interaction history unavailable")
		} else {
			recorder = store
			defer store.Close()
		}
	}

	session := assistant.NewSession(agent.NewRuleAgent(), chatTools(cfg), recorder, logger)

	reader := cmd.Root().Reader
	if reader == nil {
		reader = os.Stdin
	}

	return runChatLoop(ctx, session, reader, commandWriter(cmd))
}

// chatTools builds the capability table the chat agent can choose from.
func chatTools(cfg *config.Config) []assistant.Tool {
	automator := newAutomator(cfg)

	tools := []assistant.Tool{
		{
			Capability: agent.Capability{
				Name:        agent.CapListDirectory,
				Description: "List files and folders in a directory",
			},
			Run: automator.ListDirectory,
		},
		{
			Capability: agent.Capability{
				Name:        agent.CapListProcesses,
				Description: "List running processes",
			},
			Run: func(string) command.Result { return automator.ListProcesses() },
		},
		{
			Capability: agent.Capability{
				Name:        agent.CapStartProgram,
				Description: "Open a program by name or path",
			},
			Run: automator.StartProgram,
		},
	}

	manager, err := newVMManager(cfg, "")
	if err != nil {
		// Misconfigured backend: the chat works without the VM capabilities.
		return tools
	}

	return append(tools,
		assistant.Tool{
			Capability: agent.Capability{
				Name:        agent.CapListVMs,
				Description: "List registered virtual machines",
			},
			Run: func(string) command.Result { return manager.List() },
		},
		assistant.Tool{
			Capability: agent.Capability{
				Name:        agent.CapStartVM,
				Description: "Start a virtual machine by name",
			},
			Run: func(machine string) command.Result {
				return manager.Start(cfg.VM.ResolveMachine(machine), vm.StartOptions{})
			},
		},
		assistant.Tool{
			Capability: agent.Capability{
				Name:        agent.CapStopVM,
				Description: "Stop a virtual machine by name",
			},
			Run: func(machine string) command.Result {
				return manager.Stop(cfg.VM.ResolveMachine(machine), vm.StopOptions{})
			},
		},
	)
}

// runChatLoop reads requests line by line until EOF or an exit word.
func runChatLoop(ctx context.Context, session *assistant.Session, r io.Reader, w io.Writer) error {
	out := console.NewConsole(w)
	if err := out.Say("baka is listening. Type 'exit' to leave."); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for {
		if err := out.Prompt("You: "); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if isExitWord(input) {
			break
		}

		response := session.HandleInput(ctx, input, "cli")
		if err := out.Say("baka: %s", response); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	return out.Say("Goodbye.")
}

func isExitWord(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit", "bye":
		return true
	}
	return false
}
