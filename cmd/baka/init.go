package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/Pablo-Gaspar/baka/internal/config"
	"github.com/Pablo-Gaspar/baka/internal/errors"
)

const configFileMode = 0o600

// NewInitCommand creates the init command definition
func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize configuration file",
		Description: "Creates a .baka.yml configuration file in your home directory " +
			"with example machines and macros.",
		Action: initCommand,
	}
}

func initCommand(_ context.Context, cmd *cli.Command) error {
	dir, err := configDir()
	if err != nil {
		return errors.ConfigLoadFailed(config.ConfigFileName, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.ConfigAlreadyExists(configPath)
	}

	configContent := `# baka configuration
version: "1.0"

# Shell settings for console commands
shell:
  # Codepage the console tools emit output in (run 'chcp' to check yours)
  output_codepage: cp850
  # Time limit for shell commands
  command_timeout: 30s

# Virtual machine control
vm:
  # virtualbox (VBoxManage) or vmware (vmrun)
  backend: virtualbox
  # Aliases for machines; values are VM names/UUIDs or .vmx paths
  machines:
    # devbox: DevBox VM

# Interaction history
history:
  # disabled: true

# Named command sequences, runnable with 'baka macro <name>'
macros:
  # cleanup:
  #   - command: del /q %TEMP%\*
  #   - shell: powershell
  #     command: Clear-RecycleBin -Force
`

	if err := os.WriteFile(configPath, []byte(configContent), configFileMode); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	w := commandWriter(cmd)
	fmt.Fprintf(w, "Configuration file created: %s\n", configPath)
	fmt.Fprintln(w, "Edit this file to register machines and macros.")
	return nil
}
