package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type StoreConfig struct {
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
	Profile string `mapstructure:"profile"`
}

type Config struct {
	Environment    domain.Environment `mapstructure:"environment"`
	ReleaseVersion string             `mapstructure:"release_version"`
	LogLevel       string             `mapstructure:"log_level"`
	Currency       string             `mapstructure:"currency"`
	Server         ServerConfig       `mapstructure:"server"`
	Store          StoreConfig        `mapstructure:"store"`
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", string(domain.EnvironmentDevelopment))
	v.SetDefault("release_version", "1.0")
	v.SetDefault("log_level", "info")
	v.SetDefault("currency", "USD")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.driver", "duckdb")
	v.SetDefault("store.dsn", "commerce-atlas.db")
	v.SetDefault("store.profile", "")
}

// Load reads the optional YAML file at path and overlays environment
// variables, e.g. SERVER_PORT for server.port. DATABASE_URL also sets store.dsn.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("store.dsn", "STORE_DSN", "DATABASE_URL"); err != nil {
		return Config{}, fmt.Errorf("failed to bind store dsn: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Environment {
	case domain.EnvironmentDevelopment, domain.EnvironmentProduction, domain.EnvironmentTest:
	default:
		return Config{}, fmt.Errorf("unknown environment %q", cfg.Environment)
	}
	return cfg, nil
}

// ApplyProfile replaces the store settings with the selected profile, if any.
func (c Config) ApplyProfile(registry Registry) (Config, error) {
	if c.Store.Profile == "" {
		return c, nil
	}
	if registry == nil {
		return c, fmt.Errorf("store profile %q requested but no profiles file is loaded", c.Store.Profile)
	}

	profile, err := registry.GetProfile(c.Store.Profile)
	if err != nil {
		return c, err
	}
	c.Store.Driver = profile.Driver
	c.Store.DSN = profile.DSN
	return c, nil
}
