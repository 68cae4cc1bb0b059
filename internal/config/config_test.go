package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGIN", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("FIRM_PROFILE_FILE", "")

	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("AllowedOrigin = %q, want *", cfg.AllowedOrigin)
	}
	if cfg.DatabaseURL != "" || cfg.DatabaseName != "" {
		t.Errorf("database settings should default empty, got %q / %q", cfg.DatabaseURL, cfg.DatabaseName)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DATABASE_URL", "postgres://localhost/lexora")
	t.Setenv("DATABASE_NAME", "lexora")

	cfg := Load()
	if cfg.Port != "9100" {
		t.Errorf("Port = %q, want 9100", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/lexora" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "lexora" {
		t.Errorf("DatabaseName = %q", cfg.DatabaseName)
	}
}
