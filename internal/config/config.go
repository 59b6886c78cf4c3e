package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// Config represents the baka configuration
type Config struct {
	Version string             `yaml:"version"`
	Shell   Shell              `yaml:"shell,omitempty"`
	VM      VM                 `yaml:"vm,omitempty"`
	History History            `yaml:"history,omitempty"`
	Log     Log                `yaml:"log,omitempty"`
	Macros  map[string][]Macro `yaml:"macros,omitempty"`
}

// Shell configures how console commands are wrapped and decoded
type Shell struct {
	CmdBinary        string `yaml:"cmd_binary,omitempty"`
	PowerShellBinary string `yaml:"powershell_binary,omitempty"`
	OutputCodepage   string `yaml:"output_codepage,omitempty"`
	CommandTimeout   string `yaml:"command_timeout,omitempty"`
}

// Timeout returns the parsed command timeout. Validate guarantees it parses.
func (s Shell) Timeout() time.Duration {
	d, err := time.ParseDuration(s.CommandTimeout)
	if err != nil {
		return DefaultCommandTimeout
	}
	return d
}

// VM configures the virtualization backend and machine aliases
type VM struct {
	Backend   string            `yaml:"backend,omitempty"`
	Machines  map[string]string `yaml:"machines,omitempty"` // alias -> machine name, UUID, or .vmx path
	GuestUser string            `yaml:"guest_user,omitempty"`
}

// ResolveMachine maps an alias to its configured machine identifier,
// falling back to the name itself when no alias matches
func (v VM) ResolveMachine(name string) string {
	if id, ok := v.Machines[name]; ok {
		return id
	}
	return name
}

// History configures the interaction log
type History struct {
	Path     string `yaml:"path,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Log configures diagnostic logging
type Log struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Macro is a single step of a named command sequence
type Macro struct {
	Shell   string `yaml:"shell,omitempty"` // "cmd" (default) or "powershell"
	Command string `yaml:"command"`
}

const (
	ConfigFileName        = ".baka.yml"
	CurrentVersion        = "1.0"
	DefaultCodepage       = "cp850"
	DefaultBackend        = "virtualbox"
	DefaultCommandTimeout = 30 * time.Second
	configFilePermissions = 0o600
)

// DefaultHistoryPath returns the history database location under the user's
// home directory.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".baka", "history.db")
	}
	return filepath.Join(home, ".baka", "history.db")
}

// Default returns a configuration with every default applied
func Default() *Config {
	c := &Config{Version: CurrentVersion}
	c.applyDefaults()
	return c
}

// LoadConfig loads configuration from .baka.yml in dir. A missing file is not
// an error: defaults are returned so the assistant works unconfigured.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to .baka.yml in dir
func SaveConfig(dir string, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(configPath, data, configFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate fills defaults and rejects values the rest of the program cannot
// act on
func (c *Config) Validate() error {
	c.applyDefaults()

	if _, err := time.ParseDuration(c.Shell.CommandTimeout); err != nil {
		return fmt.Errorf("invalid command_timeout '%s': %w", c.Shell.CommandTimeout, err)
	}
	if d := c.Shell.Timeout(); d <= 0 {
		return fmt.Errorf("command_timeout must be positive, got '%s'", c.Shell.CommandTimeout)
	}

	switch c.VM.Backend {
	case "virtualbox", "vbox", "vmware":
	default:
		return fmt.Errorf("invalid vm backend '%s', must be 'virtualbox' or 'vmware'", c.VM.Backend)
	}

	for name, steps := range c.Macros {
		if len(steps) == 0 {
			return fmt.Errorf("macro '%s' has no steps", name)
		}
		for i, step := range steps {
			if step.Command == "" {
				return fmt.Errorf("macro '%s' step %d has no command", name, i+1)
			}
			switch step.Shell {
			case "", "cmd", "powershell":
			default:
				return fmt.Errorf("macro '%s' step %d has invalid shell '%s', must be 'cmd' or 'powershell'", name, i+1, step.Shell)
			}
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Shell.CmdBinary == "" {
		c.Shell.CmdBinary = "cmd"
	}
	if c.Shell.PowerShellBinary == "" {
		c.Shell.PowerShellBinary = "powershell"
	}
	if c.Shell.OutputCodepage == "" {
		c.Shell.OutputCodepage = DefaultCodepage
	}
	if c.Shell.CommandTimeout == "" {
		c.Shell.CommandTimeout = DefaultCommandTimeout.String()
	}
	if c.VM.Backend == "" {
		c.VM.Backend = DefaultBackend
	}
	if c.History.Path == "" {
		c.History.Path = DefaultHistoryPath()
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
