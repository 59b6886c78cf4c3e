package command

import (
	"errors"
	"fmt"
	"os/exec"
)

// Launcher starts detached, user-visible programs through the shell's
// "start" builtin and returns without waiting for them.
type Launcher struct {
	shellBinary string
}

// NewLauncher creates a launcher that wraps programs with the given command
// interpreter. An empty binary selects the standard cmd name.
func NewLauncher(shellBinary string) *Launcher {
	if shellBinary == "" {
		shellBinary = DefaultCmdBinary
	}
	return &Launcher{shellBinary: shellBinary}
}

// Launch asks the shell to start program in a new window and returns as soon
// as the shell process itself has spawned. Success means only that the
// operating system accepted the spawn request; it is not confirmation that
// the target program initialized. A caller that needs that confirmation must
// follow up with a process listing. No timeout applies because the call does
// not wait.
func (l *Launcher) Launch(program string) Result {
	// The empty "" argument is the window title slot of the start builtin;
	// without it, a quoted program path would be consumed as the title.
	cmd := exec.Command(l.shellBinary, "/c", "start", "", program)
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return Result{
				Failure: FailureToolNotFound,
				Output:  fmt.Sprintf("%q not found; check that it is installed and on PATH", l.shellBinary),
			}
		}
		return Result{
			Failure: FailureUnexpected,
			Output:  fmt.Sprintf("unexpected error launching %q: %v", program, err),
		}
	}

	// The shell process owns its own lifetime from here on.
	_ = cmd.Process.Release()

	return Result{Succeeded: true, Output: fmt.Sprintf("Launch request for %q sent.", program)}
}
