package winops

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pablo-Gaspar/baka/internal/command"
)

// scriptedExecutor returns one canned result per invocation, in order, and
// records every command it saw.
type scriptedExecutor struct {
	results  []command.Result
	commands []command.Command
}

func (s *scriptedExecutor) Invoke(c command.Command) command.Result {
	s.commands = append(s.commands, c)
	if len(s.results) == 0 {
		return command.Result{Succeeded: true}
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r
}

type fakeLauncher struct {
	lastProgram string
	result      command.Result
}

func (f *fakeLauncher) Launch(program string) command.Result {
	f.lastProgram = program
	return f.result
}

func TestAutomator_ListDirectory(t *testing.T) {
	t.Run("should run dir through cmd", func(t *testing.T) {
		exec := &scriptedExecutor{results: []command.Result{{Succeeded: true, Output: "listing"}}}
		a := NewAutomator(exec, &fakeLauncher{}, Options{Encoding: "cp850"})

		result := a.ListDirectory(`C:\Users`)

		assert.True(t, result.Succeeded)
		assert.Equal(t, []string{"cmd", "/c", "dir", `C:\Users`}, exec.commands[0].Argv)
		assert.Equal(t, "cp850", exec.commands[0].Encoding)
	})

	t.Run("should default to the current directory", func(t *testing.T) {
		exec := &scriptedExecutor{}
		a := NewAutomator(exec, &fakeLauncher{}, Options{})

		a.ListDirectory("")

		assert.Equal(t, []string{"cmd", "/c", "dir", "."}, exec.commands[0].Argv)
	})
}

func TestAutomator_ListProcesses(t *testing.T) {
	t.Run("should stop at Get-Process when it succeeds", func(t *testing.T) {
		// Given: powershell answers on the first attempt
		exec := &scriptedExecutor{results: []command.Result{{Succeeded: true, Output: "processes"}}}
		a := NewAutomator(exec, &fakeLauncher{}, Options{})

		// When: listing processes
		result := a.ListProcesses()

		// Then: only the powershell attempt ran
		assert.True(t, result.Succeeded)
		assert.Len(t, exec.commands, 1)
		assert.Equal(t, []string{"powershell", "-NoProfile", "-Command", "Get-Process"}, exec.commands[0].Argv)
	})

	t.Run("should fall back to tasklist when powershell fails", func(t *testing.T) {
		// Given: powershell is missing, tasklist works
		exec := &scriptedExecutor{results: []command.Result{
			{Failure: command.FailureToolNotFound, Output: "powershell not found"},
			{Succeeded: true, Output: "task listing"},
		}}
		a := NewAutomator(exec, &fakeLauncher{}, Options{})

		// When: listing processes
		result := a.ListProcesses()

		// Then: the fallback result is returned
		assert.True(t, result.Succeeded)
		assert.Equal(t, "task listing", result.Output)
		assert.Len(t, exec.commands, 2)
		assert.Equal(t, []string{"cmd", "/c", "tasklist"}, exec.commands[1].Argv)
	})

	t.Run("should return the last failure when every attempt fails", func(t *testing.T) {
		exec := &scriptedExecutor{results: []command.Result{
			{Failure: command.FailureToolNotFound, Output: "powershell not found"},
			{Failure: command.FailureNonZeroExit, ExitCode: 1, Output: "tasklist failed"},
		}}
		a := NewAutomator(exec, &fakeLauncher{}, Options{})

		result := a.ListProcesses()

		assert.False(t, result.Succeeded)
		assert.Equal(t, command.FailureNonZeroExit, result.Failure)
		assert.Equal(t, "tasklist failed", result.Output)
	})
}

func TestAutomator_StartProgram(t *testing.T) {
	launcher := &fakeLauncher{result: command.Result{Succeeded: true, Output: "sent"}}
	a := NewAutomator(&scriptedExecutor{}, launcher, Options{})

	result := a.StartProgram("notepad.exe")

	assert.True(t, result.Succeeded)
	assert.Equal(t, "notepad.exe", launcher.lastProgram)
}

func TestAutomator_RunShell(t *testing.T) {
	t.Run("should wrap for the requested shell", func(t *testing.T) {
		exec := &scriptedExecutor{}
		a := NewAutomator(exec, &fakeLauncher{}, Options{})

		a.RunShell(command.ShellPowerShell, []string{"Get-Date"}, 0)

		assert.Equal(t, []string{"powershell", "-NoProfile", "-Command", "Get-Date"}, exec.commands[0].Argv)
	})

	t.Run("should honor a per-call timeout", func(t *testing.T) {
		exec := &scriptedExecutor{}
		a := NewAutomator(exec, &fakeLauncher{}, Options{Timeout: 30 * time.Second})

		a.RunShell(command.ShellCmd, []string{"dir"}, 5*time.Second)

		assert.Equal(t, 5*time.Second, exec.commands[0].Timeout)
	})
}
