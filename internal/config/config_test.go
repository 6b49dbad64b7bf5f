package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var configKeys = []string{
	"ENV", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"HOST", "PORT", "FLASH_SECURE_COOKIE", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "CORS_ALLOWED_ORIGINS",
}

// clearEnv blanks every key Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://fyyur@localhost:5432/fyyur")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.IsDevelopment() {
		t.Error("expected development by default")
	}
	if got := cfg.Server.Addr(); got != "127.0.0.1:5000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:5000", got)
	}
	if cfg.Logging.Format != "text" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Logging.File != "error.log" {
		t.Errorf("File = %q, want error.log", cfg.Logging.File)
	}
	if cfg.Server.SecureCookie {
		t.Error("secure cookie should default off in development")
	}
	if len(cfg.CORS.AllowedOrigins) != 0 {
		t.Errorf("expected CORS disabled, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadProductionDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://fyyur@db/fyyur")
	t.Setenv("ENV", "production")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.IsDevelopment() {
		t.Error("expected non-development")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Logging.Format)
	}
	if !cfg.Server.SecureCookie {
		t.Error("secure cookie should default on outside development")
	}
}

func TestLoadBuildsURLFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_USER", "fyyur")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "fyyur")
	t.Setenv("DB_HOST", "db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := "postgresql://fyyur:secret@db:5432/fyyur?sslmode=disable"
	if cfg.Database.URL != want {
		t.Errorf("URL = %q, want %q", cfg.Database.URL, want)
	}
}

func TestLoadEscapesCredentials(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
	}{
		{name: "delimiters in password", user: "fyyur", password: "p@ss/w#rd"},
		{name: "colon in password", user: "fyyur", password: "a:b?c"},
		{name: "at sign in user", user: "ops@fyyur", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DB_USER", tt.user)
			t.Setenv("DB_PASSWORD", tt.password)
			t.Setenv("DB_NAME", "fyyur")

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			pgCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
			if err != nil {
				t.Fatalf("ParseConfig(%q) error = %v", cfg.Database.URL, err)
			}
			conn := pgCfg.ConnConfig
			if conn.Host != "localhost" || conn.Port != 5432 {
				t.Errorf("host = %s:%d, want localhost:5432", conn.Host, conn.Port)
			}
			if conn.User != tt.user || conn.Password != tt.password {
				t.Errorf("credentials = %q/%q, want %q/%q", conn.User, conn.Password, tt.user, tt.password)
			}
			if conn.Database != "fyyur" {
				t.Errorf("database = %q, want fyyur", conn.Database)
			}
		})
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_URL=postgres://fyyur@localhost/fyyur\nPORT=8081\nCORS_ALLOWED_ORIGINS= http://a.test , http://b.test ,\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("Port = %d, want 8081", cfg.Server.Port)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://fyyur@localhost/fyyur")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr string
	}{
		{
			name:    "missing database",
			setup:   func(t *testing.T) {},
			wantErr: "DATABASE_URL is required",
		},
		{
			name: "bad log level",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_URL", "postgres://x")
				t.Setenv("LOG_LEVEL", "verbose")
			},
			wantErr: "LOG_LEVEL",
		},
		{
			name: "port out of range",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_URL", "postgres://x")
				t.Setenv("PORT", "70000")
			},
			wantErr: "PORT must be between",
		},
		{
			name: "non-numeric port",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_URL", "postgres://x")
				t.Setenv("PORT", "http")
			},
			wantErr: "invalid PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			tt.setup(t)

			_, err := Load("")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
