// Package config loads habitly's configuration from a YAML file in the user
// config dir, with environment variable overrides for every credential.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"habitly/internal/constants"
	apperrors "habitly/internal/errors"
)

type Config struct {
	// OAuth client credentials for the remote document store.
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	// RefreshToken is exchanged for short-lived access tokens.
	RefreshToken string `yaml:"refresh_token"`
	// AccessToken, when set, is used directly and never refreshed.
	AccessToken string `yaml:"access_token"`

	// RemoteFileName is the well-known document name in the remote scope.
	RemoteFileName string `yaml:"remote_file_name"`
	// DataDir holds the local working copy, logs and this config file.
	DataDir string `yaml:"data_dir"`
	Debug   bool   `yaml:"debug"`
}

// DefaultDir returns the per-user habitly directory, e.g.
// ~/.config/habitly on Linux.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config dir: %w", err)
	}
	return filepath.Join(base, constants.AppDirName), nil
}

// Load reads the config file at path if it exists, applies defaults and
// environment overrides. A missing file is not an error; local-only
// commands work without any configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{
		RemoteFileName: constants.RemoteFileName,
		DataDir:        filepath.Dir(path),
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.RemoteFileName == "" {
		cfg.RemoteFileName = constants.RemoteFileName
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Dir(path)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.ClientID = getenv("HABITLY_CLIENT_ID", cfg.ClientID)
	cfg.ClientSecret = getenv("HABITLY_CLIENT_SECRET", cfg.ClientSecret)
	cfg.RefreshToken = getenv("HABITLY_REFRESH_TOKEN", cfg.RefreshToken)
	cfg.AccessToken = getenv("HABITLY_ACCESS_TOKEN", cfg.AccessToken)
	cfg.DataDir = getenv("HABITLY_DATA_DIR", cfg.DataDir)
	if os.Getenv("HABITLY_DEBUG") != "" {
		cfg.Debug = true
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// SyncConfigured reports whether enough credentials are present to attempt
// remote sync: either a static access token, or a full refresh-token grant.
func (c *Config) SyncConfigured() bool {
	if c.AccessToken != "" {
		return true
	}
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// CheckSync returns ErrNotConfigured when sync credentials are missing.
func (c *Config) CheckSync() error {
	if !c.SyncConfigured() {
		return apperrors.ErrNotConfigured
	}
	return nil
}

// Write serializes the config to path, creating the directory as needed.
// Used by `habitly init` to lay down a starter file.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
