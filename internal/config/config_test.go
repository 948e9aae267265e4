package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `server:
  address: 127.0.0.1
  port: 8080
  mode: debug
database:
  path: test.db
jwt:
  secret: test-secret
  issuer: finance-planner
log:
  level: info
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := load(writeConfigFile(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "test-secret" {
		t.Errorf("jwt.secret = %q, want test-secret", cfg.JWT.Secret)
	}

	// keys absent from the file fall back to the built-in defaults
	if cfg.JWT.ExpireHours != 24 {
		t.Errorf("jwt.expire_hours = %d, want default 24", cfg.JWT.ExpireHours)
	}
	if cfg.Import.MaxRows != 5000 {
		t.Errorf("import.max_rows = %d, want default 5000", cfg.Import.MaxRows)
	}
	if cfg.Import.StoreTimeoutSeconds != 10 {
		t.Errorf("import.store_timeout_seconds = %d, want default 10", cfg.Import.StoreTimeoutSeconds)
	}
	if cfg.App.PageSize != 20 {
		t.Errorf("app.page_size = %d, want default 20", cfg.App.PageSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FP_SERVER_PORT", "9999")
	t.Setenv("FP_LOG_LEVEL", "debug")
	// a key not present in the file at all
	t.Setenv("FP_IMPORT_MAX_ROWS", "100")

	cfg, err := load(writeConfigFile(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want env override 9999", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want env override debug", cfg.Log.Level)
	}
	if cfg.Import.MaxRows != 100 {
		t.Errorf("import.max_rows = %d, want env override 100", cfg.Import.MaxRows)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "no-such.yaml")); err == nil {
		t.Fatal("load of a missing file returned nil error")
	}
}

func TestLoad_CachesError(t *testing.T) {
	// Load latches its first result; a failed first call must keep
	// returning the error instead of a nil config.
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err == nil || cfg != nil {
		t.Fatalf("first Load = (%v, %v), want (nil, error)", cfg, err)
	}

	cfg, err = Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err == nil || cfg != nil {
		t.Fatalf("second Load = (%v, %v), want the cached error", cfg, err)
	}
}
