package main

import (
	"os"

	"github.com/Pablo-Gaspar/baka/internal/command"
	"github.com/Pablo-Gaspar/baka/internal/config"
	"github.com/Pablo-Gaspar/baka/internal/errors"
	"github.com/Pablo-Gaspar/baka/internal/vm"
	"github.com/Pablo-Gaspar/baka/internal/winops"
)

// Variables to allow mocking in tests
var (
	configDir = func() (string, error) {
		return os.UserHomeDir()
	}
	newExecutor = func() command.Executor {
		return command.NewRealExecutor()
	}
	newLauncher = func(shellBinary string) winops.Launcher {
		return command.NewLauncher(shellBinary)
	}
)

// loadConfig reads .baka.yml from the user's home directory, falling back to
// defaults when no file exists. The codepage is checked here because the
// config package has no knowledge of which codepages the gateway can decode.
func loadConfig() (*config.Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, errors.ConfigLoadFailed(config.ConfigFileName, err)
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	if !command.KnownEncoding(cfg.Shell.OutputCodepage) {
		return nil, errors.UnknownCodepage(cfg.Shell.OutputCodepage)
	}
	return cfg, nil
}

// newAutomator builds the local-operations automator from the configuration.
func newAutomator(cfg *config.Config) *winops.Automator {
	return winops.NewAutomator(newExecutor(), newLauncher(cfg.Shell.CmdBinary), winops.Options{
		CmdBinary:        cfg.Shell.CmdBinary,
		PowerShellBinary: cfg.Shell.PowerShellBinary,
		Timeout:          cfg.Shell.Timeout(),
		Encoding:         cfg.Shell.OutputCodepage,
	})
}

// newVMManager builds the VM manager. An explicit backend name overrides the
// configured one; an empty name means use the configuration.
func newVMManager(cfg *config.Config, backendName string) (*vm.Manager, error) {
	if backendName == "" {
		backendName = cfg.VM.Backend
	}
	backend, err := vm.ParseBackend(backendName)
	if err != nil {
		return nil, errors.UnknownBackend(backendName)
	}
	return vm.NewManager(backend, newExecutor(), cfg.Shell.OutputCodepage), nil
}
