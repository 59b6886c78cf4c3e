package command

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestMain doubles as the fixture tool for executor tests. When the fixture
// environment variable is set, the binary behaves like an external command
// instead of running the test suite, so the real executor can be exercised
// without depending on any tool being installed.
func TestMain(m *testing.M) {
	switch os.Getenv("BAKA_FIXTURE") {
	case "":
		os.Exit(m.Run())
	case "print":
		fmt.Print(os.Getenv("BAKA_FIXTURE_STDOUT"))
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, os.Getenv("BAKA_FIXTURE_STDERR"))
		fmt.Print(os.Getenv("BAKA_FIXTURE_STDOUT"))
		os.Exit(1)
	case "hang":
		time.Sleep(time.Minute)
		os.Exit(0)
	}
}

// fixture builds a Command that re-runs this test binary as a fixture tool.
func fixture(t *testing.T, behavior string, timeout time.Duration) Command {
	t.Helper()
	t.Setenv("BAKA_FIXTURE", behavior)
	return Command{Argv: []string{os.Args[0]}, Timeout: timeout}
}

func TestRealExecutor_Invoke(t *testing.T) {
	t.Run("should return trimmed stdout on exit code zero", func(t *testing.T) {
		// Given: a fixture tool that prints a VirtualBox-style listing
		cmd := fixture(t, "print", 10*time.Second)
		t.Setenv("BAKA_FIXTURE_STDOUT", "\"MyVM\" {uuid}\n")

		// When: invoking it
		result := NewRealExecutor().Invoke(cmd)

		// Then: the result is a success carrying the trimmed output
		assert.True(t, result.Succeeded)
		assert.Equal(t, FailureNone, result.Failure)
		assert.Equal(t, "\"MyVM\" {uuid}", result.Output)
	})

	t.Run("should classify non-zero exit and keep both streams", func(t *testing.T) {
		// Given: a fixture tool that fails like vmrun with a missing .vmx
		cmd := fixture(t, "fail", 10*time.Second)
		t.Setenv("BAKA_FIXTURE_STDERR", "Error: file not found")
		t.Setenv("BAKA_FIXTURE_STDOUT", "partial progress")

		// When: invoking it
		result := NewRealExecutor().Invoke(cmd)

		// Then: the failure carries the exit code and stderr before stdout
		assert.False(t, result.Succeeded)
		assert.Equal(t, FailureNonZeroExit, result.Failure)
		assert.Equal(t, 1, result.ExitCode)
		assert.Contains(t, result.Output, "exit code 1")
		assert.Contains(t, result.Output, "Error: file not found")
		assert.Contains(t, result.Output, "partial progress")
		assert.Less(t,
			strings.Index(result.Output, "Error: file not found"),
			strings.Index(result.Output, "partial progress"),
			"stderr should come before stdout in the diagnostic")
	})

	t.Run("should classify missing executables as tool not found", func(t *testing.T) {
		cmd := Command{
			Argv:    []string{"baka-test-no-such-tool-1f2e3d"},
			Timeout: 10 * time.Second,
		}

		result := NewRealExecutor().Invoke(cmd)

		assert.False(t, result.Succeeded)
		assert.Equal(t, FailureToolNotFound, result.Failure)
		assert.Contains(t, result.Output, "baka-test-no-such-tool-1f2e3d")
	})

	t.Run("should kill the child and report timeout when the deadline passes", func(t *testing.T) {
		// Given: a fixture tool that sleeps far past the deadline
		cmd := fixture(t, "hang", 100*time.Millisecond)

		// When: invoking it
		start := time.Now()
		result := NewRealExecutor().Invoke(cmd)
		elapsed := time.Since(start)

		// Then: the call returns promptly with a timeout classification,
		// which implies the child was terminated rather than waited on
		assert.False(t, result.Succeeded)
		assert.Equal(t, FailureTimedOut, result.Failure)
		assert.Contains(t, result.Output, "time limit")
		assert.Less(t, elapsed, 10*time.Second, "invoke should not wait out the child's sleep")
	})

	t.Run("should panic on empty argv", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRealExecutor().Invoke(Command{Timeout: time.Second})
		})
	})

	t.Run("should panic on non-positive timeout", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRealExecutor().Invoke(Command{Argv: []string{"echo"}})
		})
	})
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "none", FailureNone.String())
	assert.Equal(t, "tool not found", FailureToolNotFound.String())
	assert.Equal(t, "timed out", FailureTimedOut.String())
	assert.Equal(t, "non-zero exit", FailureNonZeroExit.String())
	assert.Equal(t, "unexpected", FailureUnexpected.String())
}
