package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/wrapcheck/internal/errors"
	"github.com/zhubert/wrapcheck/internal/wrap"
)

// Config holds the global (per-user) configuration
type Config struct {
	LineWrapping string `json:"line_wrapping"`   // Default wrapping for documents outside a configured project
	Theme        string `json:"theme,omitempty"` // UI theme name

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wrapcheck"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the global config from disk, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, returning defaults when the file is missing.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		LineWrapping: wrap.None,
		filePath:     path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills in defaults for fields an older or hand-written
// config file left empty. Only called from LoadFrom, before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.LineWrapping == "" {
		c.LineWrapping = wrap.None
	}
}

// Validate checks that the configured values are known.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := wrap.Validate(c.LineWrapping); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetLineWrapping returns the normalized global line wrapping style
func (c *Config) GetLineWrapping() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	style, ok := wrap.Normalize(c.LineWrapping)
	if !ok {
		return wrap.None
	}
	return style
}

// GetTheme returns the saved theme name, empty for the default
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the UI theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}
