package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tread/internal/errors"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// VerbConfig is a verb as written in the configuration file
type VerbConfig struct {
	Invocation  string `yaml:"invocation" toml:"invocation"`                     // eg "mv {newpath}"
	Key         string `yaml:"key,omitempty" toml:"key,omitempty"`               // eg "ctrl-e"
	Shortcut    string `yaml:"shortcut,omitempty" toml:"shortcut,omitempty"`     // eg "e"
	Execution   string `yaml:"execution" toml:"execution"`                       // eg "mv {file} {newpath:path-from-parent}"
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	FromShell   bool   `yaml:"from_shell,omitempty" toml:"from_shell,omitempty"` // run by the shell function
	LeaveApp    *bool  `yaml:"leave_app" toml:"leave_app"`                     // defaults to true
	Confirm     bool   `yaml:"confirm,omitempty" toml:"confirm,omitempty"`
}

// LeavesApp tells whether tread quits when the verb runs
func (vc VerbConfig) LeavesApp() bool {
	return vc.LeaveApp == nil || *vc.LeaveApp
}

// Config represents the application configuration structure
type Config struct {
	Settings struct {
		ShowHidden bool `yaml:"show_hidden" toml:"show_hidden"`
	} `yaml:"settings" toml:"settings"`
	Verbs []VerbConfig `yaml:"verbs" toml:"verbs"`
}

// LaunchArgs is the launch-time context: where to start and where the shell
// function wrapping tread expects exported commands.
type LaunchArgs struct {
	Root           string
	CmdExportPath  string // whole commands, read by the shell function
	FileExportPath string // only the selected path, older shell functions
	ShowHidden     bool
}

// DefaultLocation is ~/.config/tread/conf.toml
func DefaultLocation() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tread", "conf.toml"), nil
}

// LoadConfig loads configuration from the default location
func LoadConfig() (*Config, error) {
	path, err := DefaultLocation()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a TOML or YAML file, chosen by
// extension. If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &Config{}
	switch format(path) {
	case "toml":
		err = toml.Unmarshal(data, cfg)
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, errors.NewConfigError("unsupported config format", path, errors.InvalidConfig, nil)
	}
	if err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// defaultConfig returns the configuration written on first launch
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Verbs = []VerbConfig{
		{
			Invocation: "edit",
			Key:        "F2",
			Shortcut:   "e",
			Execution:  "$EDITOR {file}",
		},
		{
			Invocation: "create {subpath}",
			Execution:  "$EDITOR {directory}/{subpath}",
		},
	}
	return cfg
}

// New creates a new configuration instance with default values
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	switch format(path) {
	case "toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	case "yaml":
		data, err = yaml.Marshal(cfg)
	default:
		return errors.NewConfigError("unsupported config format", path, errors.InvalidConfig, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefault writes the default configuration at path unless a file is
// already there. It reports whether a file was written.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("error accessing config file: %w", err)
	}
	if err := SaveConfig(defaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}

	for i, vc := range c.Verbs {
		if strings.TrimSpace(vc.Invocation) == "" {
			return errors.NewConfigError(fmt.Sprintf("verb %d: invocation is required", i), "", errors.InvalidConfig, nil)
		}
		if strings.TrimSpace(vc.Execution) == "" {
			return errors.NewConfigError(fmt.Sprintf("verb %d: execution is required", i), vc.Invocation, errors.InvalidConfig, nil)
		}
	}
	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	stay := false
	cfg := &Config{}
	cfg.Verbs = []VerbConfig{
		{Invocation: "touch {name}", Shortcut: "t", Execution: "touch {directory}/{name}", LeaveApp: &stay},
		{Invocation: "view", Key: "ctrl-v", Execution: "less {file}"},
	}
	return cfg
}
