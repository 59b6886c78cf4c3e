package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pablo-Gaspar/baka/internal/command"
)

// mockExecutor records the command it was given and returns a canned result.
type mockExecutor struct {
	lastCommand command.Command
	result      command.Result
}

func (m *mockExecutor) Invoke(c command.Command) command.Result {
	m.lastCommand = c
	return m.result
}

func TestManager(t *testing.T) {
	t.Run("should stamp the configured encoding onto every command", func(t *testing.T) {
		// Given: a manager configured for a cp850 console
		mock := &mockExecutor{result: command.Result{Succeeded: true, Output: "ok"}}
		mgr := NewManager(VirtualBox, mock, "cp850")

		// When: listing machines
		result := mgr.List()

		// Then: the executor saw the listing argv with the encoding applied
		assert.True(t, result.Succeeded)
		assert.Equal(t, []string{"VBoxManage", "list", "vms"}, mock.lastCommand.Argv)
		assert.Equal(t, "cp850", mock.lastCommand.Encoding)
	})

	t.Run("should pass start and stop options through to the builders", func(t *testing.T) {
		mock := &mockExecutor{result: command.Result{Succeeded: true}}
		mgr := NewManager(VirtualBox, mock, "")

		mgr.Start("devbox", StartOptions{Headless: true})
		assert.Equal(t, []string{"VBoxManage", "startvm", "devbox", "--type", "headless"}, mock.lastCommand.Argv)

		mgr.Stop("devbox", StopOptions{Force: true})
		assert.Equal(t, []string{"VBoxManage", "controlvm", "devbox", "poweroff"}, mock.lastCommand.Argv)
	})

	t.Run("should surface tool failures unchanged", func(t *testing.T) {
		// Given: an executor that reports a non-zero exit
		mock := &mockExecutor{result: command.Result{
			Failure:  command.FailureNonZeroExit,
			ExitCode: 1,
			Output:   "Error: file not found",
		}}
		mgr := NewManager(VMware, mock, "")

		// When: starting a machine with a bad .vmx path
		result := mgr.Start(`C:\vms\missing.vmx`, StartOptions{})

		// Then: the classified result comes back as-is
		assert.False(t, result.Succeeded)
		assert.Equal(t, command.FailureNonZeroExit, result.Failure)
		assert.Contains(t, result.Output, "Error: file not found")
	})

	t.Run("should reject guest execution on virtualbox", func(t *testing.T) {
		mock := &mockExecutor{}
		mgr := NewManager(VirtualBox, mock, "")

		_, err := mgr.RunInGuest(GuestCommand{VMXPath: "x", User: "u", Password: "p", Program: "cmd"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "virtualbox")
	})

	t.Run("should run guest commands on vmware", func(t *testing.T) {
		mock := &mockExecutor{result: command.Result{Succeeded: true, Output: "done"}}
		mgr := NewManager(VMware, mock, "")

		result, err := mgr.RunInGuest(GuestCommand{
			VMXPath: `C:\vms\dev.vmx`, User: "dev", Password: "s", Program: "ipconfig",
		})

		assert.NoError(t, err)
		assert.True(t, result.Succeeded)
		assert.Equal(t, "runProgramInGuest", mock.lastCommand.Argv[6])
	})
}
