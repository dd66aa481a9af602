package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envBaseURL, "")
	t.Setenv(envAgentID, "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.axoden.com", cfg.BaseURL)
	assert.Equal(t, "claude", cfg.DefaultFormat)
	assert.NotEmpty(t, cfg.AgentID)
}

func TestAgentIDPersistedOnGeneration(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")

	first, err := LoadFrom(path)
	require.NoError(t, err)
	require.NotEmpty(t, first.AgentID)

	// The freshly generated identity must already be on disk.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, first.AgentID, onDisk["agent_id"])

	second, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, first.AgentID, second.AgentID)
}

func TestFileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	file := `{"base_url": "https://file.example.com", "agent_id": "file-agent", "default_format": "json"}`
	require.NoError(t, os.WriteFile(path, []byte(file), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.BaseURL)
	assert.Equal(t, "file-agent", cfg.AgentID)
	assert.Equal(t, "json", cfg.DefaultFormat)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	file := `{"base_url": "https://file.example.com", "agent_id": "file-agent"}`
	require.NoError(t, os.WriteFile(path, []byte(file), 0o600))

	t.Setenv(envBaseURL, "https://env.example.com")
	t.Setenv(envAgentID, "env-agent")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "env-agent", cfg.AgentID)
}

func TestOptionsOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv(envBaseURL, "https://env.example.com")
	t.Setenv(envAgentID, "env-agent")

	cfg, err := LoadFrom(path,
		WithBaseURL("https://explicit.example.com"),
		WithAgentID("explicit-agent"),
		WithDefaultFormat("yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "https://explicit.example.com", cfg.BaseURL)
	assert.Equal(t, "explicit-agent", cfg.AgentID)
	assert.Equal(t, "yaml", cfg.DefaultFormat)
}

func TestEmptyOptionsAreIgnored(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path, WithBaseURL(""), WithAgentID(""), WithDefaultFormat(""))
	require.NoError(t, err)
	assert.Equal(t, "https://api.axoden.com", cfg.BaseURL)
	assert.Equal(t, "claude", cfg.DefaultFormat)
}

func TestCorruptFileFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.axoden.com", cfg.BaseURL)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	cfg.BaseURL = "https://saved.example.com"
	cfg.DefaultFormat = "json"
	require.NoError(t, cfg.Save())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://saved.example.com", loaded.BaseURL)
	assert.Equal(t, "json", loaded.DefaultFormat)
	assert.Equal(t, cfg.AgentID, loaded.AgentID)
}

func TestResetRemovesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.FileExists(t, path)

	require.NoError(t, cfg.Reset())
	assert.NoFileExists(t, path)

	// Resetting again is fine.
	require.NoError(t, cfg.Reset())
}

func TestGenerateAgentIDShape(t *testing.T) {
	id := generateAgentID()
	assert.Contains(t, id, "axoden-go-")
	assert.NotEqual(t, id, generateAgentID())
}
