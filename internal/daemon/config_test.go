package daemon

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8750 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8750)
	}
	if cfg.Notifications.MaxPerDay != 50 {
		t.Errorf("Notifications.MaxPerDay = %d, want 50", cfg.Notifications.MaxPerDay)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus should default to true")
	}
}

func TestConfig_SaveLoadRoundtrip(t *testing.T) {
	t.Setenv("TROPHY_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 9999
	cfg.Notifications.QuietStart = "22:00"
	cfg.Notifications.QuietEnd = "08:00"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.API.Port != 9999 {
		t.Errorf("Port = %d, want 9999", loaded.API.Port)
	}
	if loaded.Notifications.QuietStart != "22:00" {
		t.Errorf("QuietStart = %q, want 22:00", loaded.Notifications.QuietStart)
	}
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("TROPHY_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 8750 {
		t.Errorf("Port = %d, want default 8750", cfg.API.Port)
	}
}
