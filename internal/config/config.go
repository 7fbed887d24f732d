package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Mode selected on startup
	Mode string `yaml:"mode"`

	Store       StoreConfig       `yaml:"store"`
	Translation TranslationConfig `yaml:"translation"`
	Log         LogConfig         `yaml:"log"`
}

type StoreConfig struct {
	// Backend is "memory" or "sqlite"
	Backend string `yaml:"backend"`
	// Path to the sqlite database, ignored for the memory backend
	Path string `yaml:"path,omitempty"`
}

type TranslationConfig struct {
	// Provider is "google", "azure", or "echo"
	Provider string `yaml:"provider"`
	// DefaultTarget is the language code used when none is specified
	DefaultTarget string `yaml:"default_target,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode: "travel",
		Store: StoreConfig{
			Backend: "memory",
		},
		Translation: TranslationConfig{
			Provider:      "google",
			DefaultTarget: "es",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aide"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// StorePath resolves the sqlite path, defaulting under the config dir.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sessions.db"), nil
}
