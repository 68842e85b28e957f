// Package config loads runtime settings from the environment and input files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingToken is returned when no GitHub token is configured.
var ErrMissingToken = errors.New("GITHUB_TOKEN environment variable is not set")

// Config holds the settings shared by every subcommand.
type Config struct {
	Token      string
	APIBaseURL string
}

// Load reads configuration from the process environment, after merging in a
// .env file from envFile when one exists.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s file: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()

	cfg := &Config{
		Token:      v.GetString("GITHUB_TOKEN"),
		APIBaseURL: v.GetString("GITHUB_API_URL"),
	}
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	return cfg, nil
}

// LoadRepoURLs reads a JSON array of repository URLs from path.
func LoadRepoURLs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository list: %w", err)
	}
	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, fmt.Errorf("failed to parse repository list %s: %w", path, err)
	}
	return urls, nil
}
