// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// bot identity, conversation timing, weather, and service mode settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Bot identity
	BotName  string // Name the bot answers to (activation phrase)
	UserName string // Display name for the person talking to the bot

	// Server Configuration (service mode)
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir string // Directory holding the schedule SQLite database

	// Conversation Configuration
	ConversationDuration time.Duration // Maximum session length before forced farewell
	PollInterval         time.Duration // Listening loop poll interval
	PausedListenTimeout  time.Duration // Bounded listen timeout while paused

	// Weather Configuration
	OpenWeatherAPIKey string // Empty = mock payload
	CityName          string
	CountryCode       string
	WeatherTimeout    time.Duration

	// Better Stack log shipping (optional)
	BetterStackToken    string
	BetterStackEndpoint string

	// Sentry error reporting (optional)
	SentryDSN         string
	SentryEnvironment string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		BotName:  getEnv(EnvBotName, "Pudim"),
		UserName: getEnv(EnvUserName, "Usuário"),

		Port:            getEnv(EnvPort, "8080"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 30*time.Second),

		DataDir: getEnv(EnvDataDir, "./data"),

		ConversationDuration: getDurationEnv(EnvConversationDuration, 10*time.Minute),
		PollInterval:         getDurationEnv(EnvPollInterval, 500*time.Millisecond),
		PausedListenTimeout:  getDurationEnv(EnvPausedListenTimeout, 5*time.Second),

		OpenWeatherAPIKey: getEnv(EnvOpenWeatherAPIKey, ""),
		CityName:          getEnv(EnvCityName, "Rio de Janeiro"),
		CountryCode:       getEnv(EnvCountryCode, "BR"),
		WeatherTimeout:    getDurationEnv(EnvWeatherTimeout, 10*time.Second),

		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.BotName == "" {
		errs = append(errs, errors.New(EnvBotName+" must not be empty"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if c.ConversationDuration <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvConversationDuration, c.ConversationDuration))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvPollInterval, c.PollInterval))
	}
	if c.PausedListenTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvPausedListenTimeout, c.PausedListenTimeout))
	}
	if c.WeatherTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvWeatherTimeout, c.WeatherTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SQLitePath returns the full path to the schedule SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "schedule.db")
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
