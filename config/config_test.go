package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "4000" {
		t.Errorf("port = %q, want 4000", cfg.Server.Port)
	}
	if cfg.JWT.TTLHours != 4 {
		t.Errorf("ttl = %d, want 4", cfg.JWT.TTLHours)
	}
	if cfg.Production() {
		t.Error("default env should not be production")
	}
}

func TestLoadProductionGuards(t *testing.T) {
	t.Run("default secret refused", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("ADMIN_PASS", "real-password")
		if _, err := Load(); err == nil {
			t.Fatal("Load accepted default JWT_SECRET in production")
		}
	})

	t.Run("default admin password refused", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "real-secret")
		if _, err := Load(); err == nil {
			t.Fatal("Load accepted default ADMIN_PASS in production")
		}
	})

	t.Run("fully configured production accepted", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "real-secret")
		t.Setenv("ADMIN_PASS", "real-password")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !cfg.Production() {
			t.Error("Production() = false")
		}
	})
}
