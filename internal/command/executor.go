package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Invoke waits for the output pipes to drain after
// the child has been killed on timeout.
const waitDelay = 5 * time.Second

// RealExecutor runs commands as child processes via os/exec. It holds no
// state and is safe for concurrent use.
type RealExecutor struct{}

// NewRealExecutor creates an executor that runs real child processes.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Invoke starts the command, waits up to its timeout, and classifies the
// outcome. Expected failures (missing tool, non-zero exit, timeout) come back
// in the Result; they are never raised as errors. The child process is
// terminated before Invoke returns on every path, so a timed-out invocation
// leaves nothing running.
//
// Calling Invoke with an empty argv or a non-positive timeout is a
// programming error and panics.
func (e *RealExecutor) Invoke(c Command) Result {
	if len(c.Argv) == 0 {
		panic("command: Invoke called with empty argv")
	}
	if c.Timeout <= 0 {
		panic(fmt.Sprintf("command: Invoke called with non-positive timeout %v", c.Timeout))
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	outText := decodeConsole(stdout.Bytes(), c.Encoding)
	errText := decodeConsole(stderr.Bytes(), c.Encoding)

	switch {
	case err == nil:
		return Result{Succeeded: true, Output: strings.TrimSpace(outText)}
	case ctx.Err() != nil:
		return Result{
			Failure: FailureTimedOut,
			Output:  fmt.Sprintf("command %q exceeded its time limit of %v", c.Argv[0], c.Timeout),
		}
	default:
		return classifyRunError(c.Argv[0], err, outText, errText)
	}
}

// classifyRunError maps a non-timeout run error onto the failure taxonomy.
// Some tools report their errors on stdout, so the non-zero-exit message
// carries both streams: stderr first, stdout appended when non-empty.
func classifyRunError(tool string, err error, outText, errText string) Result {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		msg := fmt.Sprintf("command %q failed (exit code %d):\n%s", tool, code, strings.TrimSpace(errText))
		if out := strings.TrimSpace(outText); out != "" {
			msg += fmt.Sprintf("\nOutput (stdout):\n%s", out)
		}
		return Result{Failure: FailureNonZeroExit, ExitCode: code, Output: msg}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return Result{
			Failure: FailureToolNotFound,
			Output:  fmt.Sprintf("%q not found; check that it is installed and on PATH", tool),
		}
	}
	return Result{
		Failure: FailureUnexpected,
		Output:  fmt.Sprintf("unexpected error running %q: %v", tool, err),
	}
}
