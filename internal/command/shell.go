package command

import (
	"fmt"
	"time"
)

// ShellKind selects which Windows shell wraps a raw command line.
type ShellKind int

const (
	// ShellCmd is the classic command interpreter (cmd.exe).
	ShellCmd ShellKind = iota
	// ShellPowerShell is the PowerShell scripting shell.
	ShellPowerShell
)

// Default shell binary names, resolved through PATH.
const (
	DefaultCmdBinary        = "cmd"
	DefaultPowerShellBinary = "powershell"
)

// ParseShellKind maps a configuration or flag value to a ShellKind. Unknown
// names are rejected here so that a Shell can never be constructed with an
// unsupported kind.
func ParseShellKind(name string) (ShellKind, error) {
	switch name {
	case "cmd":
		return ShellCmd, nil
	case "powershell":
		return ShellPowerShell, nil
	default:
		return 0, fmt.Errorf("unknown shell kind %q (supported: cmd, powershell)", name)
	}
}

func (k ShellKind) String() string {
	switch k {
	case ShellCmd:
		return "cmd"
	case ShellPowerShell:
		return "powershell"
	default:
		return fmt.Sprintf("ShellKind(%d)", int(k))
	}
}

// Shell wraps raw command lines in the argv form one shell variant expects.
// It is a pure value: Wrap has no side effects and is deterministic.
type Shell struct {
	kind   ShellKind
	binary string
}

// NewShell creates a Shell for the given kind. An empty binary selects the
// standard name for that kind.
func NewShell(kind ShellKind, binary string) Shell {
	if binary == "" {
		switch kind {
		case ShellPowerShell:
			binary = DefaultPowerShellBinary
		default:
			binary = DefaultCmdBinary
		}
	}
	return Shell{kind: kind, binary: binary}
}

// Kind reports the shell variant.
func (s Shell) Kind() ShellKind { return s.kind }

// Wrap builds the full argument vector that runs raw inside the shell:
// cmd gets "/c", powershell gets "-NoProfile -Command". The raw arguments
// pass through untouched.
func (s Shell) Wrap(raw []string) []string {
	switch s.kind {
	case ShellPowerShell:
		return append([]string{s.binary, "-NoProfile", "-Command"}, raw...)
	default:
		return append([]string{s.binary, "/c"}, raw...)
	}
}

// Command builds a ready-to-run Command from a raw command line.
func (s Shell) Command(raw []string, timeout time.Duration, encoding string) Command {
	return Command{
		Argv:     s.Wrap(raw),
		Timeout:  timeout,
		Encoding: encoding,
	}
}
