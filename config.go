// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix read by LoadConfig
const EnvPrefix = "NEBULA"

// Config holds client settings loaded from a file or the environment
//
// Environment variables (with LoadConfig):
//
//	NEBULA_API_KEY      API key (required)
//	NEBULA_BASE_URL     API base URL
//	NEBULA_TIMEOUT      request timeout, e.g. "30s"
//	NEBULA_RATE_LIMIT   requests per second, 0 disables throttling
//	NEBULA_RATE_BURST   rate limit burst
//	NEBULA_LOG_LEVEL    debug, info, warn, error or none
type Config struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	RateBurst int           `mapstructure:"rate_burst"`
	LogLevel  string        `mapstructure:"log_level"`
}

// configKeys are bound to NEBULA_* environment variables
var configKeys = []string{"api_key", "base_url", "timeout", "rate_limit", "rate_burst", "log_level"}

// LoadConfig reads a Config from v
//
// Defaults are applied first, then the config file configured on v, then
// NEBULA_* environment variables. The file is either named with
// SetConfigFile, in which case it must exist, or searched for with
// SetConfigName and AddConfigPath, in which case it may be absent. A nil v
// uses a fresh viper instance.
//
// Example:
//
//	v := viper.New()
//	v.SetConfigFile("nebula.yaml")
//	cfg, err := nebula.LoadConfig(v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := nebula.NewClientFromConfig(cfg)
func LoadConfig(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("rate_limit", 0.0)
	v.SetDefault("rate_burst", 1)
	v.SetDefault("log_level", "none")

	v.SetEnvPrefix(EnvPrefix)
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// A file named with SetConfigFile must exist; one searched for with
	// SetConfigName/AddConfigPath is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// NewClientFromConfig creates a client from cfg. opts are applied after the
// settings derived from cfg and can override them.
func NewClientFromConfig(cfg Config, opts ...func(*Client)) (*Client, error) {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	base := []func(*Client){}
	if cfg.BaseURL != "" {
		base = append(base, BaseURL(cfg.BaseURL))
	}
	if cfg.Timeout != 0 {
		base = append(base, RequestTimeout(cfg.Timeout))
	}
	if cfg.RateLimit != 0 {
		base = append(base, RateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	if level != LogLevelNone {
		base = append(base, WithLogger(NewDefaultLogger(level)))
	}

	return NewClient(cfg.APIKey, append(base, opts...)...)
}
