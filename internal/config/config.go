package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/haytac/readme-emoji-fix/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. READMEFIX_TARGET.
const EnvPrefix = "READMEFIX"

// PairConfig is an extra literal substitution supplied by the user.
// Emoji shortcodes in Replacement are expanded before use.
type PairConfig struct {
	Name        string `mapstructure:"name"`
	Pattern     string `mapstructure:"pattern"`
	Replacement string `mapstructure:"replacement"`
}

// AppConfig holds the application configuration.
type AppConfig struct {
	Target          string         `mapstructure:"target"`
	Encoding        string         `mapstructure:"encoding"`
	Log             logging.Config `mapstructure:"log"`
	MetricsTextfile string         `mapstructure:"metrics_textfile"`
	ExtraPairs      []PairConfig   `mapstructure:"extra_pairs"`
	DryRun          bool           // Not from config file, set by flag
}

// Default returns the configuration used when nothing is overridden.
func Default() *AppConfig {
	return &AppConfig{
		Target:   "README.md",
		Encoding: "utf-8",
		Log: logging.Config{
			Level:      "info",
			Console:    true,
			TimeFormat: time.RFC3339,
		},
	}
}

// LoadConfig loads configuration from file and environment variables.
// A missing config file is not an error.
func LoadConfig(configPath string) (*AppConfig, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("target", def.Target)
	v.SetDefault("encoding", def.Encoding)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.console", def.Log.Console)
	v.SetDefault("log.file", "")
	v.SetDefault("log.time_format", def.Log.TimeFormat)
	v.SetDefault("metrics_textfile", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".readme-emoji-fix")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the repair run depends on.
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Target) == "" {
		return errors.New("target is not configured")
	}
	if strings.TrimSpace(c.Encoding) == "" {
		return errors.New("encoding is not configured")
	}
	for i, p := range c.ExtraPairs {
		if p.Pattern == "" {
			return fmt.Errorf("extra_pairs[%d] (%q): pattern is empty", i, p.Name)
		}
	}
	return nil
}
