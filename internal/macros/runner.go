// Package macros runs named sequences of console commands from the
// configuration file.
package macros

import (
	"sort"
	"time"

	"github.com/Pablo-Gaspar/baka/internal/command"
	"github.com/Pablo-Gaspar/baka/internal/errors"
)

// Step is one command of a macro, bound to the shell that wraps it.
type Step struct {
	Shell   command.ShellKind
	Command string
}

// Runner executes macros through the command gateway.
type Runner struct {
	exec     command.Executor
	cmdShell command.Shell
	psShell  command.Shell
	timeout  time.Duration
	encoding string
	macros   map[string][]Step
}

// NewRunner creates a runner over the given macro table. Both shells are
// provided so a macro can mix cmd and powershell steps.
func NewRunner(exec command.Executor, cmdShell, psShell command.Shell, timeout time.Duration, encoding string, macros map[string][]Step) *Runner {
	return &Runner{
		exec:     exec,
		cmdShell: cmdShell,
		psShell:  psShell,
		timeout:  timeout,
		encoding: encoding,
		macros:   macros,
	}
}

// Names returns the defined macro names, sorted.
func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.macros))
	for name := range r.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named macro step by step, stopping at the first failing
// step. The combined output of the executed steps is returned either way.
func (r *Runner) Run(name string) (string, error) {
	steps, ok := r.macros[name]
	if !ok {
		return "", errors.MacroNotFound(name, r.Names())
	}

	var output string
	for i, step := range steps {
		shell := r.cmdShell
		if step.Shell == command.ShellPowerShell {
			shell = r.psShell
		}

		result := r.exec.Invoke(shell.Command([]string{step.Command}, r.timeout, r.encoding))
		if output != "" && result.Output != "" {
			output += "\n"
		}
		output += result.Output

		if !result.Succeeded {
			return output, errors.MacroStepFailed(name, i+1, result.Output)
		}
	}
	return output, nil
}
