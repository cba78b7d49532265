package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.BotName != "Pudim" {
		t.Errorf("BotName = %q, want Pudim", cfg.BotName)
	}
	if cfg.ConversationDuration != 10*time.Minute {
		t.Errorf("ConversationDuration = %v, want 10m", cfg.ConversationDuration)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Errorf("PollInterval = %v, want 500ms", cfg.PollInterval)
	}
	if cfg.PausedListenTimeout != 5*time.Second {
		t.Errorf("PausedListenTimeout = %v, want 5s", cfg.PausedListenTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvBotName, "Brigadeiro")
	t.Setenv(EnvConversationDuration, "2m")
	t.Setenv(EnvCityName, "São Paulo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.BotName != "Brigadeiro" {
		t.Errorf("BotName = %q, want Brigadeiro", cfg.BotName)
	}
	if cfg.ConversationDuration != 2*time.Minute {
		t.Errorf("ConversationDuration = %v, want 2m", cfg.ConversationDuration)
	}
	if cfg.CityName != "São Paulo" {
		t.Errorf("CityName = %q, want São Paulo", cfg.CityName)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty bot name", func(c *Config) { c.BotName = "" }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"zero poll interval", func(c *Config) { c.PollInterval = 0 }, true},
		{"negative duration", func(c *Config) { c.ConversationDuration = -time.Minute }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				BotName:              "Pudim",
				UserName:             "Usuário",
				Port:                 "8080",
				DataDir:              "./data",
				ConversationDuration: 10 * time.Minute,
				PollInterval:         500 * time.Millisecond,
				PausedListenTimeout:  5 * time.Second,
				WeatherTimeout:       10 * time.Second,
				ShutdownTimeout:      30 * time.Second,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSQLitePath(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	if got := cfg.SQLitePath(); got != "/data/schedule.db" {
		t.Errorf("SQLitePath() = %q", got)
	}
}
