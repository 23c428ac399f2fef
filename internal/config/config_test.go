package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Backend.Mode != ModeFixture {
		t.Errorf("Mode = %q, want fixture", cfg.Backend.Mode)
	}
	if cfg.Backend.Delay != 0 {
		t.Errorf("Delay = %v, want 0", cfg.Backend.Delay)
	}
	if cfg.Recordd.Port != "8090" {
		t.Errorf("Recordd.Port = %q, want 8090", cfg.Recordd.Port)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_MODE", ModeRemote)
	t.Setenv("PF_PROJECT_ID", "proj-123")
	t.Setenv("PF_PUBLIC_KEY", "key-abc")
	t.Setenv("SERVICE_DELAY_MS", "250")
	t.Setenv("RECORDD_SEED", "true")

	cfg := Load()
	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Backend.Mode != ModeRemote {
		t.Errorf("Mode = %q", cfg.Backend.Mode)
	}
	if cfg.Backend.ProjectID != "proj-123" || cfg.Backend.PublicKey != "key-abc" {
		t.Errorf("credentials = %q / %q", cfg.Backend.ProjectID, cfg.Backend.PublicKey)
	}
	if cfg.Backend.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v", cfg.Backend.Delay)
	}
	if !cfg.Recordd.Seed {
		t.Error("Seed not set")
	}
}

func TestMalformedEnvFallsBack(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-number")
	t.Setenv("DEV", "not-a-bool")

	cfg := Load()
	if cfg.Server.ReadTimeout != 15 {
		t.Errorf("ReadTimeout = %d, want default 15", cfg.Server.ReadTimeout)
	}
	if !cfg.App.Dev {
		t.Error("Dev fell away from default")
	}
}
