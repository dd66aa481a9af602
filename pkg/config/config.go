// Package config resolves the effective client configuration. A Config is
// built once per process entry point and passed explicitly to whatever
// needs it; precedence per field, highest wins:
// explicit option > environment > config file > built-in default.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Version identifies this client to the API via the User-Agent header.
const Version = "0.1.0"

const (
	defaultBaseURL = "https://api.axoden.com"
	defaultFormat  = "claude"

	envBaseURL = "AXODEN_API_URL"
	envAgentID = "AXODEN_AGENT_ID"
)

// Config holds the resolved settings.
type Config struct {
	BaseURL       string `json:"base_url"`
	AgentID       string `json:"agent_id"`
	DefaultFormat string `json:"default_format"`

	path string
}

// Option overrides a resolved field. Explicit options win over the
// environment and the config file.
type Option func(*Config)

func WithBaseURL(u string) Option {
	return func(c *Config) {
		if u != "" {
			c.BaseURL = u
		}
	}
}

func WithAgentID(id string) Option {
	return func(c *Config) {
		if id != "" {
			c.AgentID = id
		}
	}
}

func WithDefaultFormat(f string) Option {
	return func(c *Config) {
		if f != "" {
			c.DefaultFormat = f
		}
	}
}

// DefaultPath returns the per-user config file location,
// ~/.axoden/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".axoden", "config.json")
	}
	return filepath.Join(home, ".axoden", "config.json")
}

// Load resolves configuration from the default config file location.
func Load(opts ...Option) (*Config, error) {
	return LoadFrom(DefaultPath(), opts...)
}

// LoadFrom resolves configuration backed by the given config file. A
// missing or unparseable file is not an error; defaults apply. When no
// agent id survives resolution, a fresh one is generated and persisted
// immediately so the identity the service sees stays stable across runs.
func LoadFrom(path string, opts ...Option) (*Config, error) {
	cfg := &Config{
		BaseURL:       defaultBaseURL,
		DefaultFormat: defaultFormat,
		path:          path,
	}

	cfg.mergeFile()
	cfg.mergeEnv()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.AgentID == "" {
		cfg.AgentID = generateAgentID()
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not persist agent id: %v\n", err)
		}
	}

	return cfg, nil
}

func (c *Config) mergeFile() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}

	var file struct {
		BaseURL       string `json:"base_url"`
		AgentID       string `json:"agent_id"`
		DefaultFormat string `json:"default_format"`
	}
	// A corrupt config file falls back to defaults.
	if err := json.Unmarshal(data, &file); err != nil {
		return
	}

	if file.BaseURL != "" {
		c.BaseURL = file.BaseURL
	}
	if file.AgentID != "" {
		c.AgentID = file.AgentID
	}
	if file.DefaultFormat != "" {
		c.DefaultFormat = file.DefaultFormat
	}
}

func (c *Config) mergeEnv() {
	if v := os.Getenv(envBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(envAgentID); v != "" {
		c.AgentID = v
	}
}

// Path returns the config file backing this Config.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to its config file, creating the
// directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Reset removes the config file. A missing file is not an error.
func (c *Config) Reset() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove config file: %w", err)
	}
	return nil
}

// generateAgentID builds a stable-looking identity of the form
// axoden-go-<user>-<host>-<8 hex chars>.
func generateAgentID() string {
	user := os.Getenv("USER")
	if user == "" {
		user = "unknown"
	}
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	return fmt.Sprintf("axoden-go-%s-%s-%s", user, host, uuid.NewString()[:8])
}
