package vm

import (
	"time"

	"github.com/Pablo-Gaspar/baka/internal/command"
)

// Per-operation default timeouts. Starting and stopping wait on the
// hypervisor and need more headroom than a plain listing.
const (
	listTimeout  = 60 * time.Second
	startTimeout = 120 * time.Second
	stopTimeout  = 90 * time.Second
	guestTimeout = 120 * time.Second
)

// StartOptions represents options for starting a machine.
type StartOptions struct {
	// Headless starts the machine without an attached graphical console.
	Headless bool
}

// StopOptions represents options for stopping a machine.
type StopOptions struct {
	// Force powers the machine off immediately instead of sending a
	// graceful ACPI shutdown signal to the guest.
	Force bool
}

// GuestCommand describes a program to run inside a running VMware guest.
// Requires VMware Tools in the guest and valid guest credentials.
type GuestCommand struct {
	VMXPath  string
	User     string
	Password string
	Program  string
}

// List builds the command that lists machines known to the backend.
// VirtualBox lists all registered machines; VMware lists running ones.
func List(b Backend) command.Command {
	args := []string{b.ToolName(), "list"}
	if b == VirtualBox {
		args = append(args, "vms")
	}
	return command.Command{Argv: args, Timeout: listTimeout}
}

// Start builds the command that boots the identified machine. The identifier
// is a name or UUID for VirtualBox and a .vmx path for VMware; it passes
// through unvalidated, the tool's own exit status is the only oracle.
func Start(b Backend, id string, opts StartOptions) command.Command {
	var args []string
	switch b {
	case VMware:
		targetType, ui := "ws", "gui"
		if opts.Headless {
			targetType, ui = "ws-nogui", "nogui"
		}
		args = []string{b.ToolName(), "-T", targetType, "start", id, ui}
	default:
		vmType := "gui"
		if opts.Headless {
			vmType = "headless"
		}
		args = []string{b.ToolName(), "startvm", id, "--type", vmType}
	}
	return command.Command{Argv: args, Timeout: startTimeout}
}

// Stop builds the command that shuts the identified machine down, gracefully
// unless forced.
func Stop(b Backend, id string, opts StopOptions) command.Command {
	var args []string
	switch b {
	case VMware:
		mode := "soft"
		if opts.Force {
			mode = "hard"
		}
		args = []string{b.ToolName(), "-T", "ws", "stop", id, mode}
	default:
		action := "acpipowerbutton"
		if opts.Force {
			action = "poweroff"
		}
		args = []string{b.ToolName(), "controlvm", id, action}
	}
	return command.Command{Argv: args, Timeout: stopTimeout}
}

// RunProgramInGuest builds the vmrun command that executes a program inside
// a running VMware guest. Only VMware exposes this operation.
func RunProgramInGuest(gc GuestCommand) command.Command {
	args := []string{
		VMware.ToolName(),
		"-T", "ws",
		"-gu", gc.User,
		"-gp", gc.Password,
		"runProgramInGuest",
		gc.VMXPath,
		"-activeWindow",
		gc.Program,
	}
	return command.Command{Argv: args, Timeout: guestTimeout}
}
