package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host: got %q, want 0.0.0.0", cfg.Host)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want 8080", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("IsDev should be false for testing env")
	}
}

func TestLoadProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for default password in production")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with password set: %v", err)
	}
	if cfg.DBPassword != "s3cret" {
		t.Errorf("DBPassword: got %q", cfg.DBPassword)
	}
}

func TestDSNAndAddr(t *testing.T) {
	cfg := &Config{
		Host: "127.0.0.1", Port: "9090",
		DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "blog",
	}

	wantDSN := "postgres://u:p@db:5433/blog?sslmode=disable"
	if got := cfg.DSN(); got != wantDSN {
		t.Errorf("DSN: got %q, want %q", got, wantDSN)
	}
	if got := cfg.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr: got %q, want 127.0.0.1:9090", got)
	}
}
