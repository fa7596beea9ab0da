package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Systemet SystemetConfig
	Database DatabaseConfig
	Sync     SyncConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type SystemetConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SyncConfig struct {
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

var ErrMissingAPIKey = errors.New("SYSTEMET_API_KEY is required")

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SYSTEMET_BASE_URL", "https://api-extern.systembolaget.se")
	v.SetDefault("SYSTEMET_TIMEOUT", "30s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "systemet")
	v.SetDefault("DB_PASSWORD", "secret")
	v.SetDefault("DB_NAME", "catalog")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("SYNC_TIMEOUT", "2m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	apiKey := v.GetString("SYSTEMET_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	systemetTimeout, err := time.ParseDuration(v.GetString("SYSTEMET_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	syncTimeout, err := time.ParseDuration(v.GetString("SYNC_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
		},
		Systemet: SystemetConfig{
			APIKey:  apiKey,
			BaseURL: v.GetString("SYSTEMET_BASE_URL"),
			Timeout: systemetTimeout,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Sync: SyncConfig{
			Timeout: syncTimeout,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	return cfg, nil
}
