package command

import "time"

// Command represents a single external tool invocation: the full argument
// vector (program name first), how long to wait for it, and the console
// codepage its output is expected in. A Command is built fresh per invocation
// and never reused.
type Command struct {
	Argv     []string      // full argument vector, never empty
	Timeout  time.Duration // wall-clock deadline, strictly positive
	Encoding string        // console codepage (e.g. "cp850"); empty means UTF-8
}

// FailureKind classifies why an invocation failed.
type FailureKind int

const (
	// FailureNone marks a successful invocation.
	FailureNone FailureKind = iota
	// FailureToolNotFound means the executable could not be located.
	FailureToolNotFound
	// FailureTimedOut means the deadline elapsed and the child was killed.
	FailureTimedOut
	// FailureNonZeroExit means the tool ran and reported failure via its exit
	// code. The code is carried in Result.ExitCode.
	FailureNonZeroExit
	// FailureUnexpected covers spawn and I/O errors outside the taxonomy.
	FailureUnexpected
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureToolNotFound:
		return "tool not found"
	case FailureTimedOut:
		return "timed out"
	case FailureNonZeroExit:
		return "non-zero exit"
	case FailureUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Result is the classified outcome of a single invocation. Exactly one of
// "succeeded with output" or "failed with a failure kind" holds: on success
// Output is the trimmed standard output, on failure it is a diagnostic
// message that may embed the captured streams.
type Result struct {
	Succeeded bool
	Output    string
	Failure   FailureKind
	ExitCode  int // valid only when Failure is FailureNonZeroExit
}

// Executor runs a single Command to completion and classifies the outcome.
// Implementations must be safe for concurrent use; every call owns exactly
// one child process and tears it down before returning.
type Executor interface {
	Invoke(cmd Command) Result
}
