// Package winops performs local Windows operations (directory listings,
// process listings, program launches) through the execution gateway.
package winops

import (
	"time"

	"github.com/Pablo-Gaspar/baka/internal/command"
)

// Launcher abstracts fire-and-forget program launches for testing.
type Launcher interface {
	Launch(program string) command.Result
}

// Options configures how the automator reaches the shells.
type Options struct {
	CmdBinary        string
	PowerShellBinary string
	Timeout          time.Duration
	Encoding         string
}

const defaultTimeout = 30 * time.Second

// Automator wraps the day-to-day OS operations the assistant exposes.
// It owns no process state; every method is a single gateway call (or an
// ordered sequence of them).
type Automator struct {
	exec     command.Executor
	launcher Launcher
	cmdShell command.Shell
	psShell  command.Shell
	timeout  time.Duration
	encoding string
}

// NewAutomator creates an automator over the given executor and launcher.
func NewAutomator(exec command.Executor, launcher Launcher, opts Options) *Automator {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Automator{
		exec:     exec,
		launcher: launcher,
		cmdShell: command.NewShell(command.ShellCmd, opts.CmdBinary),
		psShell:  command.NewShell(command.ShellPowerShell, opts.PowerShellBinary),
		timeout:  timeout,
		encoding: opts.Encoding,
	}
}

// ListDirectory lists the contents of path via the cmd 'dir' builtin.
// An empty path means the current directory.
func (a *Automator) ListDirectory(path string) command.Result {
	if path == "" {
		path = "."
	}
	return a.exec.Invoke(a.cmdShell.Command([]string{"dir", path}, a.timeout, a.encoding))
}

// ListProcesses lists running processes. Get-Process is preferred for its
// richer output, with tasklist as the fallback when powershell is missing or
// failing. The attempts run in order; the first success wins and the last
// failure is returned otherwise.
func (a *Automator) ListProcesses() command.Result {
	attempts := []command.Command{
		a.psShell.Command([]string{"Get-Process"}, a.timeout, a.encoding),
		a.cmdShell.Command([]string{"tasklist"}, a.timeout, a.encoding),
	}

	var last command.Result
	for _, attempt := range attempts {
		last = a.exec.Invoke(attempt)
		if last.Succeeded {
			return last
		}
	}
	return last
}

// StartProgram launches a program detached, without waiting on it.
func (a *Automator) StartProgram(program string) command.Result {
	return a.launcher.Launch(program)
}

// RunShell runs an arbitrary raw command line in the selected shell.
func (a *Automator) RunShell(kind command.ShellKind, raw []string, timeout time.Duration) command.Result {
	if timeout <= 0 {
		timeout = a.timeout
	}
	shell := a.cmdShell
	if kind == command.ShellPowerShell {
		shell = a.psShell
	}
	return a.exec.Invoke(shell.Command(raw, timeout, a.encoding))
}
