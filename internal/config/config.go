package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from the
// environment (with .env support for local development).
type Config struct {
	Port      string `mapstructure:"PORT"`
	GinMode   string `mapstructure:"GIN_MODE"`
	ClientURL string `mapstructure:"CLIENT_URL"`

	// DataPath is the SQLite record database location. Empty means
	// ~/.namaa.db.
	DataPath string `mapstructure:"DATA_PATH"`

	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`

	// SnapshotEncryptionKey, when set (base64, 32 bytes), encrypts the
	// cloud snapshot blob at rest.
	SnapshotEncryptionKey string `mapstructure:"SNAPSHOT_ENCRYPTION_KEY"`

	AutoSyncIntervalSeconds int `mapstructure:"AUTO_SYNC_INTERVAL_SECONDS"`
	SyncTimeoutSeconds      int `mapstructure:"SYNC_TIMEOUT_SECONDS"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	PrayerTimesBaseURL string `mapstructure:"PRAYER_TIMES_BASE_URL"`
	ChatEndpoint       string `mapstructure:"CHAT_ENDPOINT"`
	ChatAPIKey         string `mapstructure:"CHAT_API_KEY"`
}

// Load reads configuration from the environment using Viper. A .env file in
// the working directory is loaded first when present.
func Load() (*Config, error) {
	// Best effort; absence of a .env file is the normal production case.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("AUTO_SYNC_INTERVAL_SECONDS", 60)
	viper.SetDefault("SYNC_TIMEOUT_SECONDS", 30)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	for _, key := range []string{
		"PORT", "GIN_MODE", "CLIENT_URL", "DATA_PATH",
		"FIREBASE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS",
		"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "SNAPSHOT_ENCRYPTION_KEY",
		"AUTO_SYNC_INTERVAL_SECONDS", "SYNC_TIMEOUT_SECONDS",
		"LOG_LEVEL", "LOG_FORMAT",
		"PRAYER_TIMES_BASE_URL", "CHAT_ENDPOINT", "CHAT_API_KEY",
	} {
		_ = viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}
	if cfg.AutoSyncIntervalSeconds <= 0 {
		return nil, errors.New("AUTO_SYNC_INTERVAL_SECONDS must be positive")
	}
	if cfg.SyncTimeoutSeconds <= 0 {
		return nil, errors.New("SYNC_TIMEOUT_SECONDS must be positive")
	}
	return &cfg, nil
}

// CloudEnabled reports whether any Firebase configuration is present. When
// false the service runs local-only and sync endpoints are unavailable.
func (c *Config) CloudEnabled() bool {
	return c.FirebaseProjectID != "" ||
		c.GoogleApplicationCredentials != "" ||
		c.FirebaseServiceAccountJSONBase64 != ""
}

// AutoSyncInterval returns the scheduler tick as a duration.
func (c *Config) AutoSyncInterval() time.Duration {
	return time.Duration(c.AutoSyncIntervalSeconds) * time.Second
}

// SyncTimeout returns the per-call remote timeout as a duration.
func (c *Config) SyncTimeout() time.Duration {
	return time.Duration(c.SyncTimeoutSeconds) * time.Second
}
