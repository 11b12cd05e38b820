// Package config loads runtime settings from EFACTURA_* environment variables.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable
const EnvPrefix = "EFACTURA"

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Validation ValidationConfig `mapstructure:"validation"`
	Advisor    AdvisorConfig    `mapstructure:"advisor"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	Debug        bool          `mapstructure:"debug"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ValidationConfig holds batch validation settings
type ValidationConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// AdvisorConfig holds settings of the optional remediation advisor
type AdvisorConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Enabled reports whether an API key was configured
func (a AdvisorConfig) Enabled() bool {
	return a.APIKey != ""
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.max_body_bytes", 10<<20)
	v.SetDefault("server.debug", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("validation.concurrency", 4)

	v.SetDefault("advisor.api_key", "")
	v.SetDefault("advisor.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("advisor.model", "openai/gpt-4o-mini")
	v.SetDefault("advisor.timeout", "60s")
}

// New returns a viper instance wired to the environment with defaults set.
// Callers may bind command-line flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load resolves the configuration: flags bound on v, then environment, then defaults
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Validation.Concurrency < 1 {
		cfg.Validation.Concurrency = 1
	}
	return cfg, nil
}
