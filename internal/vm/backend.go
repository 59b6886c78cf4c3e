// Package vm translates virtual-machine lifecycle operations into
// invocations of the backend control tools (VBoxManage for VirtualBox,
// vmrun for VMware Workstation).
package vm

import "fmt"

// Backend identifies which virtualization tool family controls the machines.
type Backend int

const (
	// VirtualBox machines are controlled through VBoxManage and addressed
	// by name or UUID.
	VirtualBox Backend = iota
	// VMware machines are controlled through vmrun and addressed by the
	// path to their .vmx file.
	VMware
)

// ParseBackend maps a configuration or flag value to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "virtualbox", "vbox":
		return VirtualBox, nil
	case "vmware":
		return VMware, nil
	default:
		return 0, fmt.Errorf("unknown virtualization backend %q (supported: virtualbox, vmware)", name)
	}
}

func (b Backend) String() string {
	switch b {
	case VirtualBox:
		return "virtualbox"
	case VMware:
		return "vmware"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ToolName returns the control binary for the backend, resolved through PATH.
func (b Backend) ToolName() string {
	if b == VMware {
		return "vmrun"
	}
	return "VBoxManage"
}
