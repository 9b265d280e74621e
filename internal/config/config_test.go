package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"projectconnect-go/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("AUTH_VERIFY_USER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load(logger.NewNop())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPPort != "5000" {
		t.Fatalf("expected port 5000, got %q", cfg.HTTPPort)
	}
	if cfg.Auth.JWTSecret != DevJWTSecret {
		t.Fatalf("expected dev secret, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTL != 0 {
		t.Fatalf("expected tokens without expiry by default, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.VerifyUser {
		t.Fatalf("expected user re-check disabled by default")
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard origin, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadDotEnvDoesNotOverrideEnv(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	contents := "JWT_SECRET=from-file\nJWT_TTL=24h\n# comment\nHTTP_PORT=\"6000\"\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(contents), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	chdir(t, nested)
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TTL", "")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("JWT_TTL")

	cfg, err := Load(logger.NewNop())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Auth.JWTSecret != "from-file" {
		t.Fatalf("expected secret from .env, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("expected ttl 24h, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.HTTPPort != "7000" {
		t.Fatalf("expected env to win over .env, got %q", cfg.HTTPPort)
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	got := getEnvList("CORS_ALLOWED_ORIGINS", nil)
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", got)
	}
}

func TestMigrateURL(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: "5432", User: "app", Password: "p@ss", Name: "projectconnect", SSLMode: "disable"}
	want := "postgres://app:p%40ss@db:5432/projectconnect?sslmode=disable"
	if got := cfg.MigrateURL(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	cfg.DSN = "postgres://x:y@h:1/d"
	if got := cfg.MigrateURL(); got != cfg.DSN {
		t.Fatalf("expected DSN passthrough, got %q", got)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
