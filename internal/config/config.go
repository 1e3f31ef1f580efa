// Package config loads PrepTrack configuration from file, environment
// and defaults, in that order of increasing precedence for env vars.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/avinash/preptrack/internal/store"
)

// Config is the full application configuration.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
}

// AppConfig holds the application-level knobs.
type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

// StorageConfig holds the persistence settings.
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// LeaderboardConfig holds leaderboard paging defaults.
type LeaderboardConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// Load reads configuration from the given file (optional), the
// environment (PREPTRACK_ prefix) and built-in defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("preptrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/preptrack")
		}
	}

	v.SetEnvPrefix("PREPTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Storage.DBPath == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.Storage.DBPath = path
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "preptrack")
	v.SetDefault("app.log_level", "warn")
	v.SetDefault("storage.db_path", "")
	v.SetDefault("leaderboard.page_size", 10)
}

// SetupLogger installs the default slog logger at the configured level.
func SetupLogger(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
