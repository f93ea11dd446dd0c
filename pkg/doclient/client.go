// Package doclient constructs API clients from configuration, environment
// variables, or a YAML config file.
package doclient

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bluewater-io/docean/v2/internal/client"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.digitalocean.com"

// Environment variables consulted by NewFromEnv, in order of precedence.
const (
	EnvToken       = "DIGITALOCEAN_TOKEN"
	EnvAccessToken = "DIGITALOCEAN_ACCESS_TOKEN"
	EnvTokenCompat = "DOCEAN_TOKEN"
	EnvBaseURL     = "DOCEAN_BASE_URL"
)

// New creates a client from the given configuration. A missing BaseURL
// defaults to the production endpoint; a URL without a scheme gets https.
func New(ctx context.Context, config *docean.Config) (docean.Client, error) {
	if config == nil {
		return nil, docean.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	c, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a client for the production API from just a personal
// access token.
func NewWithToken(ctx context.Context, token string) (docean.Client, error) {
	return New(ctx, &docean.Config{Token: token})
}

// NewFromEnv creates a client configured from environment variables:
// DIGITALOCEAN_TOKEN (or DIGITALOCEAN_ACCESS_TOKEN, or DOCEAN_TOKEN) for the
// credential and DOCEAN_BASE_URL for a non-production endpoint.
func NewFromEnv(ctx context.Context) (docean.Client, error) {
	token := os.Getenv(EnvToken)
	if token == "" {
		token = os.Getenv(EnvAccessToken)
	}

	if token == "" {
		token = os.Getenv(EnvTokenCompat)
	}

	return New(ctx, &docean.Config{
		Token:   token,
		BaseURL: os.Getenv(EnvBaseURL),
	})
}

// fileConfig is the YAML shape accepted by NewFromFile.
type fileConfig struct {
	Token     string `yaml:"token"`
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	RetryMax  int    `yaml:"retry_max"`
	Debug     bool   `yaml:"debug"`
}

// NewFromFile creates a client from a YAML config file.
func NewFromFile(ctx context.Context, path string) (docean.Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return New(ctx, &docean.Config{
		Token:     fc.Token,
		BaseURL:   fc.BaseURL,
		UserAgent: fc.UserAgent,
		RetryMax:  fc.RetryMax,
		Debug:     fc.Debug,
	})
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
