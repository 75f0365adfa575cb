// Package config loads the fortune server settings from the environment,
// an optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fortune-cloud/fortune"
)

const (
	defaultPort      = "8080"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config is read once at startup and passed to whatever needs it.
type Config struct {
	OpenAIAPIKey       string `mapstructure:"openai_api_key"`
	OpenAIModel        string `mapstructure:"openai_model"`
	OpenAIMaxTokens    int    `mapstructure:"openai_max_tokens"`
	OpenAIBaseURL      string `mapstructure:"openai_base_url"`
	Port               string `mapstructure:"port"`
	LogLevel           string `mapstructure:"log_level"`
	LogFormat          string `mapstructure:"log_format"`
	ExposeErrorDetails bool   `mapstructure:"expose_error_details"`
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none are
// given) without overriding variables already set. A missing file is not an
// error; the bool reports whether anything was loaded.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Load resolves the configuration. Environment variables win over configFile,
// which wins over defaults. An empty configFile skips the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model", fortune.DefaultModel)
	v.SetDefault("openai_max_tokens", fortune.DefaultMaxTokens)
	v.SetDefault("openai_base_url", "")
	v.SetDefault("port", defaultPort)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)
	v.SetDefault("expose_error_details", true)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		return nil, errors.New("port is required")
	}
	if cfg.OpenAIMaxTokens <= 0 {
		return nil, fmt.Errorf("openai_max_tokens must be positive, got %d", cfg.OpenAIMaxTokens)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Fortune returns the generation settings for fortune.NewService.
func (c *Config) Fortune() fortune.Config {
	return fortune.Config{
		APIKey:    c.OpenAIAPIKey,
		Model:     c.OpenAIModel,
		MaxTokens: c.OpenAIMaxTokens,
		BaseURL:   c.OpenAIBaseURL,
	}
}

func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
