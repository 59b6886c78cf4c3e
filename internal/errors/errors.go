package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common error messages with helpful context and suggestions

// Configuration Errors

func ConfigLoadFailed(configPath string, parseError error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	parseErrorStr := parseError.Error()
	if strings.Contains(parseErrorStr, "yaml") || strings.Contains(parseErrorStr, "unmarshal") {
		msg += `

Cause: YAML syntax error in configuration file
Solutions:
  • Check YAML syntax and indentation
  • Run 'baka init' to recreate the configuration`
	} else if strings.Contains(parseErrorStr, "permission denied") {
		msg += `

Cause: Permission denied reading configuration file
Solution: Check file permissions on the configuration file`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", parseError)
	return errors.New(msg)
}

func ConfigAlreadyExists(configPath string) error {
	msg := fmt.Sprintf(`configuration file already exists: %s

Options:
  • Edit the existing file manually
  • Delete it and run 'baka init' again`, configPath)
	return errors.New(msg)
}

func InvalidTimeout(value string) error {
	msg := fmt.Sprintf(`invalid command timeout: '%s'

Timeouts use Go duration syntax, for example:
  • 30s
  • 2m
  • 1m30s`, value)
	return errors.New(msg)
}

func UnknownCodepage(name string) error {
	msg := fmt.Sprintf(`unknown console codepage: '%s'

Supported codepages:
  • cp437, cp850, cp852, cp866 (OEM console codepages)
  • cp1250, cp1251, cp1252 (Windows ANSI codepages)
  • utf-8 (no conversion)

Tip: Run 'chcp' in a cmd window to see which codepage your console uses`, name)
	return errors.New(msg)
}

// Shell Errors

func UnknownShell(name string) error {
	msg := fmt.Sprintf(`unknown shell: '%s'

Supported shells:
  • cmd
  • powershell`, name)
	return errors.New(msg)
}

func CommandRequired() error {
	msg := `a command to run is required

Usage: baka exec [--shell cmd|powershell] <command> [args...]

Examples:
  • baka exec dir C:\Users
  • baka exec --shell powershell Get-Date`
	return errors.New(msg)
}

// Program Launch Errors

func ProgramNameRequired() error {
	msg := `a program name or path is required

Usage: baka open <program>

Examples:
  • baka open notepad.exe
  • baka open "C:\Program Files\App\app.exe"`
	return errors.New(msg)
}

// Virtual Machine Errors

func UnknownBackend(name string) error {
	msg := fmt.Sprintf(`unknown virtualization backend: '%s'

Supported backends:
  • virtualbox (controlled through VBoxManage)
  • vmware (controlled through vmrun)

Tip: Set the default backend in the 'vm' section of the configuration`, name)
	return errors.New(msg)
}

func MachineRequired(operation string) error {
	msg := fmt.Sprintf(`a machine identifier is required

Usage: baka vm %s <machine>

The identifier is a VM name or UUID for VirtualBox, a .vmx path for VMware,
or an alias from the 'vm.machines' section of the configuration.

Tip: Run 'baka vm list' to see known machines`, operation)
	return errors.New(msg)
}

func GuestCredentialsRequired() error {
	msg := `guest credentials are required to run a command inside a VM

Usage: baka vm guest --user <user> --password <pass> --program <program> <machine>

Note: Guest execution requires VMware Tools running inside the guest`
	return errors.New(msg)
}

func GuestProgramRequired() error {
	msg := `a program to run inside the guest is required

Usage: baka vm guest --user <user> --password <pass> --program <program> <machine>

Example:
  • baka vm guest --user dev --password s3cret --program C:\Windows\System32\ipconfig.exe devbox`
	return errors.New(msg)
}

func GuestExecUnsupported(backend string) error {
	msg := fmt.Sprintf(`running commands inside a guest is not supported on the '%s' backend

Only the vmware backend exposes guest execution (vmrun runProgramInGuest).

Workarounds:
  • Switch the machine to VMware
  • Use a network channel into the guest (ssh, winrm) instead`, backend)
	return errors.New(msg)
}

// Macro Errors

func MacroNotFound(name string, available []string) error {
	msg := fmt.Sprintf("macro '%s' not found", name)

	if len(available) > 0 {
		msg += "\n\nAvailable macros:"
		for _, m := range available {
			msg += fmt.Sprintf("\n  • %s", m)
		}
	} else {
		msg += "\n\nNo macros are configured."
	}

	msg += "\n\nTip: Macros are defined in the 'macros' section of the configuration"
	return errors.New(msg)
}

func MacroStepFailed(name string, step int, detail string) error {
	msg := fmt.Sprintf("macro '%s' failed at step %d", name, step)

	cleanDetail := strings.TrimSpace(detail)
	if cleanDetail == "" {
		cleanDetail = "no additional details available"
	}
	msg += fmt.Sprintf("\n\nDetails: %s", cleanDetail)
	msg += "\n\nNote: Steps after the failing one were not run"
	return errors.New(msg)
}

// History Errors

func HistoryUnavailable(path string, originalError error) error {
	msg := fmt.Sprintf("failed to open the interaction history at '%s'", path)

	errorStr := originalError.Error()
	if strings.Contains(errorStr, "permission denied") {
		msg += `

Cause: Permission denied
Solution: Check file and directory permissions for the history database`
	}

	msg += `

Tip: Disable history in the configuration if you do not want interactions recorded`
	msg += fmt.Sprintf("\n\nOriginal error: %v", originalError)
	return errors.New(msg)
}
