package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "CJ_CONFIG"

// Config represents the CLI configuration
type Config struct {
	// Emit indented JSON unless --styled=false is given
	Styled bool `yaml:"styled,omitempty"`

	// Default output format (json, ndjson, yaml, table)
	Output string `yaml:"output,omitempty"`

	// Default color mode (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// Error output format (text, json)
	ErrorFormat string `yaml:"error_format,omitempty"`

	// Log handler format (text, json)
	LogFormat string `yaml:"log_format,omitempty"`
}

// configPathFunc is the function used to get the default config path
// It can be overridden for testing
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns $CJ_CONFIG or ~/.config/cj/config.yaml
func defaultConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cj", "config.yaml"), nil
}

// DefaultConfigPath returns the config file path in effect.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil // Return empty config if file doesn't exist
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks enum-valued keys. Empty values mean "use the default".
func (c *Config) Validate() error {
	checks := []struct {
		field   string
		value   string
		choices []string
	}{
		{"output", c.Output, []string{"json", "ndjson", "jsonl", "yaml", "table"}},
		{"color", c.Color, []string{"auto", "always", "never"}},
		{"error_format", c.ErrorFormat, []string{"text", "json"}},
		{"log_format", c.LogFormat, []string{"text", "json"}},
	}
	for _, chk := range checks {
		if chk.value == "" {
			continue
		}
		if !contains(chk.choices, strings.ToLower(chk.value)) {
			return clierrors.UnknownChoiceError(chk.field, chk.value, chk.choices...)
		}
	}
	return nil
}

// GetOutput returns the effective output format (config default or empty)
func (c *Config) GetOutput() string {
	return c.Output
}

// GetColor returns the effective color mode (config default or empty)
func (c *Config) GetColor() string {
	return c.Color
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
