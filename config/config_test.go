package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model.Name)
	assert.Equal(t, "stdio://toolserver", cfg.Server.Endpoint)
	assert.Len(t, cfg.Demo.Queries, 4)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Model.Name, cfg.Model.Name)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[model]
name = "gemini-2.5-pro"
temperature = 0.1

[server]
endpoint = "https://mcp.example.com/mcp"

[demo]
queries = ["What's the weather like in Paris?"]
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model.Name)
	assert.InDelta(t, 0.1, cfg.Model.Temperature, 0.0001)
	assert.Equal(t, "https://mcp.example.com/mcp", cfg.Server.Endpoint)
	assert.Equal(t, []string{"What's the weather like in Paris?"}, cfg.Demo.Queries)
	// defaults survive for fields the file does not set
	assert.Equal(t, 8192, cfg.Model.MaxTokens)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[model]
name = ""

[server]
endpoint = ""
`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.Model.APIKey)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
