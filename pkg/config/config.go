// Package config loads engine configuration from config.yaml with
// environment variable overrides.
package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for sqlchat-engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values. The
// engine holds no database or model credentials of its own; those
// arrive per request.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// CORSOriginsStr is a comma-separated list of allowed origins.
	// "*" allows any origin.
	CORSOriginsStr string `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"*"`

	// CORSOrigins is the parsed list from CORSOriginsStr (not from config file).
	CORSOrigins []string `yaml:"-"`

	// QueryTimeoutSeconds bounds connecting to a datasource and running
	// one statement.
	QueryTimeoutSeconds int `yaml:"query_timeout_seconds" env:"QUERY_TIMEOUT_SECONDS" env-default:"30"`

	// LLMTimeoutSeconds bounds each individual model call.
	LLMTimeoutSeconds int `yaml:"llm_timeout_seconds" env:"LLM_TIMEOUT_SECONDS" env-default:"60"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on
// the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	cfg.CORSOrigins = parseOrigins(cfg.CORSOriginsStr)

	if cfg.QueryTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("query_timeout_seconds must be positive, got %d", cfg.QueryTimeoutSeconds)
	}
	if cfg.LLMTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("llm_timeout_seconds must be positive, got %d", cfg.LLMTimeoutSeconds)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.BindAddr, c.Port)
}

// QueryTimeout returns the datasource timeout as a duration.
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

// LLMTimeout returns the per-model-call timeout as a duration.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// parseOrigins splits the comma-separated origins string, trimming
// whitespace and dropping empty entries.
func parseOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
