package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration, loaded from an optional
// config.yaml and WAFFY_-prefixed environment variables.
type Config struct {
	Addr   string `mapstructure:"addr"`
	Source struct {
		// Mode selects the record source: "http" (upstream REST API),
		// "postgres" (shared database) or "memory" (local development).
		Mode string `mapstructure:"mode"`
	} `mapstructure:"source"`
	Backend struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"backend"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Redis struct {
		Addr        string        `mapstructure:"addr"`
		SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`
	} `mapstructure:"redis"`
	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
}

// Load reads configuration with defaults suitable for local development.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WAFFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("source.mode", "http")
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.snapshot_ttl", 2*time.Minute)
	v.SetDefault("auth.jwt_secret", "")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults carry it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.Source.Mode {
	case "http", "postgres", "memory":
	default:
		return Config{}, fmt.Errorf("unknown source mode %q", cfg.Source.Mode)
	}

	return cfg, nil
}
