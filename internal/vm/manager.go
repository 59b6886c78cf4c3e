package vm

import (
	"github.com/Pablo-Gaspar/baka/internal/command"
	"github.com/Pablo-Gaspar/baka/internal/errors"
)

// Manager drives one virtualization backend through the execution gateway.
// It holds no machine state; every call maps to exactly one tool invocation.
type Manager struct {
	backend  Backend
	exec     command.Executor
	encoding string
}

// NewManager creates a manager for the given backend. The encoding is the
// console codepage the control tool emits its output in.
func NewManager(backend Backend, exec command.Executor, encoding string) *Manager {
	return &Manager{backend: backend, exec: exec, encoding: encoding}
}

// Backend reports which tool family the manager controls.
func (m *Manager) Backend() Backend { return m.backend }

// List returns the backend's machine listing.
func (m *Manager) List() command.Result {
	return m.invoke(List(m.backend))
}

// Start boots the identified machine.
func (m *Manager) Start(id string, opts StartOptions) command.Result {
	return m.invoke(Start(m.backend, id, opts))
}

// Stop shuts the identified machine down.
func (m *Manager) Stop(id string, opts StopOptions) command.Result {
	return m.invoke(Stop(m.backend, id, opts))
}

// RunInGuest executes a program inside a running guest. The operation only
// exists in the vmrun grammar, so VirtualBox managers reject it.
func (m *Manager) RunInGuest(gc GuestCommand) (command.Result, error) {
	if m.backend != VMware {
		return command.Result{}, errors.GuestExecUnsupported(m.backend.String())
	}
	return m.invoke(RunProgramInGuest(gc)), nil
}

func (m *Manager) invoke(c command.Command) command.Result {
	c.Encoding = m.encoding
	return m.exec.Invoke(c)
}
