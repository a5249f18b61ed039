package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
server:
  host: "127.0.0.1"
  port: 8080
  cors:
    allowed_origins:
      - "https://app.example.com"
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
logging:
  level: "debug"
  format: "text"
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if len(cfg.Server.CORS.AllowedOrigins) != 1 || cfg.Server.CORS.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("CORS.AllowedOrigins = %v, want [https://app.example.com]", cfg.Server.CORS.AllowedOrigins)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test.db")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	// A minimal file should leave unstated sections at their defaults.
	cfg, err := Load(writeConfig(t, `database: {path: "/tmp/t.db"}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want default 3000", cfg.Server.Port)
	}
	if cfg.Server.Timeouts.Read != 30 {
		t.Errorf("Timeouts.Read = %d, want default 30", cfg.Server.Timeouts.Read)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want default %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want default 3000", cfg.Server.Port)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: [yaml: content"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	_, err := Load(writeConfig(t, `
server:
  port: 99999
database:
  path: "/tmp/test.db"
`))
	if err == nil {
		t.Error("Load() expected validation error for out-of-range port, got nil")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRACKPOINT_SERVER_PORT", "9090")
	t.Setenv("TRACKPOINT_DATABASE_PATH", "/tmp/override.db")
	t.Setenv("TRACKPOINT_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load(writeConfig(t, `database: {path: "/tmp/file.db"}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("Database.Path = %q, want env override", cfg.Database.Path)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.Server.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.Server.CORS.AllowedOrigins, want)
	}
	for i, origin := range want {
		if cfg.Server.CORS.AllowedOrigins[i] != origin {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.Server.CORS.AllowedOrigins[i], origin)
		}
	}
}

func TestEnvOverrides_PortCompatibility(t *testing.T) {
	t.Setenv("PORT", "4500")

	cfg, err := Load(writeConfig(t, `database: {path: "/tmp/file.db"}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 4500 {
		t.Errorf("Server.Port = %d, want PORT override 4500", cfg.Server.Port)
	}
}
