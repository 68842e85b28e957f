package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reads token from the environment", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "env-token")
		t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")

		cfg, err := Load(filepath.Join(t.TempDir(), ".env"))

		require.NoError(t, err)
		assert.Equal(t, "env-token", cfg.Token)
		assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.APIBaseURL)
	})

	t.Run("reads token from a .env file", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		os.Unsetenv("GITHUB_TOKEN")
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("GITHUB_TOKEN=file-token\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("GITHUB_TOKEN") })

		cfg, err := Load(envFile)

		require.NoError(t, err)
		assert.Equal(t, "file-token", cfg.Token)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")

		_, err := Load(filepath.Join(t.TempDir(), ".env"))

		assert.ErrorIs(t, err, ErrMissingToken)
	})
}

func TestLoadRepoURLs(t *testing.T) {
	dir := t.TempDir()

	t.Run("happy path", func(t *testing.T) {
		path := filepath.Join(dir, "repos.json")
		require.NoError(t, os.WriteFile(path, []byte(`["https://github.com/a/b", "not-a-url"]`), 0o600))

		urls, err := LoadRepoURLs(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://github.com/a/b", "not-a-url"}, urls)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRepoURLs(filepath.Join(dir, "absent.json"))
		assert.Error(t, err)
	})

	t.Run("not a JSON array", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"url": "x"}`), 0o600))

		_, err := LoadRepoURLs(path)

		assert.ErrorContains(t, err, "failed to parse repository list")
	})
}
