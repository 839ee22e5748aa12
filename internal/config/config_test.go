package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCreds(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCredentialsFile(t *testing.T) {
	t.Run("reads keys", func(t *testing.T) {
		path := writeCreds(t, "OPENAI_API_KEY: sk-file\nPOSTGRES_URL: postgres://u@h/db\n")
		creds, err := LoadCredentialsFile(path)
		require.NoError(t, err)
		assert.Equal(t, "sk-file", creds.OpenAIAPIKey)
		assert.Equal(t, "postgres://u@h/db", creds.PostgresURL)
		assert.Empty(t, creds.GeminiAPIKey)
	})

	t.Run("missing file is empty", func(t *testing.T) {
		creds, err := LoadCredentialsFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Credentials{}, creds)
	})

	t.Run("broken yaml fails", func(t *testing.T) {
		path := writeCreds(t, "OPENAI_API_KEY: [unterminated\n")
		_, err := LoadCredentialsFile(path)
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("env wins over file", func(t *testing.T) {
		path := writeCreds(t, "OPENAI_API_KEY: sk-file\nGEMINI_API_KEY: g-file\n")
		t.Setenv("CREDENTIALS_FILE", path)
		t.Setenv("OPENAI_API_KEY", "sk-env")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "sk-env", cfg.Credentials.OpenAIAPIKey)
		assert.Equal(t, "g-file", cfg.Credentials.GeminiAPIKey)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "csv", cfg.PlacesSource)
		assert.Equal(t, 500, cfg.LLMMaxTokens)
	})

	t.Run("rejects unknown places source", func(t *testing.T) {
		t.Setenv("CREDENTIALS_FILE", "")
		t.Setenv("PLACES_SOURCE", "mongo")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
