// Copyright (c) WorkflowAI. All rights reserved.

// Package config loads the settings needed to reach the WorkflowAI API.
//
// Values come from the environment (optionally seeded from a .env file):
//
//	WORKFLOWAI_API_KEY  bearer credential, required
//	WORKFLOWAI_API_URL  API base URL without /v1, required
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ckorhonen/WorkflowAI/integrations/go/workflowai"
)

// EnvPrefix is prepended to every key when it is looked up in the environment.
const EnvPrefix = "WORKFLOWAI"

const (
	keyAPIKey = "api_key"
	keyAPIURL = "api_url"
)

// requiredKeys are checked in this order; the first missing one is reported.
var requiredKeys = []string{keyAPIKey, keyAPIURL}

// Config holds the resolved API settings.
type Config struct {
	APIKey string `mapstructure:"api_key"`
	APIURL string `mapstructure:"api_url"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range requiredKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}
	return load(v)
}

// LoadFrom reads the configuration through lookup instead of the process
// environment. It exists so callers can substitute another source.
func LoadFrom(lookup func(string) (string, bool)) (*Config, error) {
	v := viper.New()
	for _, k := range requiredKeys {
		v.SetDefault(k, "")
		if val, ok := lookup(EnvName(k)); ok {
			v.Set(k, val)
		}
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	for _, k := range requiredKeys {
		if v.GetString(k) == "" {
			return nil, &workflowai.ConfigurationError{Key: EnvName(k)}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, &workflowai.ConfigurationError{Key: EnvPrefix, Reason: err.Error()}
	}
	return &c, nil
}

// EnvName returns the environment variable that backs key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// BaseURL returns the OpenAI-compatible endpoint root, APIURL followed by /v1.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.APIURL, "/") + "/v1"
}

// LogValue implements slog.LogValuer and keeps the API key out of logs.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_url", c.APIURL),
		slog.String("api_key", redact(c.APIKey)),
	)
}

func redact(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given). Variables already present in the environment are left alone and a
// missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &workflowai.ConfigurationError{Key: p, Reason: err.Error()}
		}
	}
	return nil
}
