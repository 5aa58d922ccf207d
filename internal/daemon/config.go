// Package daemon manages the trophy server lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all server configuration.
type Config struct {
	API           APIConfig           `toml:"api"`
	Storage       StorageConfig       `toml:"storage"`
	Notifications NotificationsConfig `toml:"notifications"`
	Telemetry     TelemetryConfig     `toml:"telemetry"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig controls where the SQLite database lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// NotificationsConfig controls toast queueing policy.
type NotificationsConfig struct {
	MaxPerDay  int    `toml:"max_per_day"`
	QuietStart string `toml:"quiet_start"` // "22:00", empty = no quiet hours
	QuietEnd   string `toml:"quiet_end"`
}

// TelemetryConfig controls observability endpoints.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8750,
		},
		Storage: StorageConfig{
			Dir: trophyHome(),
		},
		Notifications: NotificationsConfig{
			MaxPerDay: 50,
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
	}
}

// LoadConfig reads config from ~/.trophy/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(trophyHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.trophy/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(trophyHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// trophyHome returns the trophy data directory.
func trophyHome() string {
	if env := os.Getenv("TROPHY_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".trophy")
}
