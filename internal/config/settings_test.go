package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromPathMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadFromPath error: %v", err)
	}
	if cfg.BaseURL() != defaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.BaseURL())
	}
	if cfg.PageSize() != defaultPageSize {
		t.Fatalf("expected default page size, got %d", cfg.PageSize())
	}
}

func TestLoadFromPathReadsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nbase_url = \"http://example.test/api\"\npage_size = 25\ntimeout_seconds = 3\n\n[logging]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath error: %v", err)
	}
	if cfg.BaseURL() != "http://example.test/api" {
		t.Fatalf("unexpected base url: %q", cfg.BaseURL())
	}
	if cfg.PageSize() != 25 {
		t.Fatalf("unexpected page size: %d", cfg.PageSize())
	}
	if cfg.Timeout() != 3*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadFromPathMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\nbase_url ="), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadFromPath(path); err == nil {
		t.Fatalf("expected error for malformed TOML")
	}
}

func TestZeroValuesFallBack(t *testing.T) {
	var cfg Config
	if cfg.BaseURL() != defaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.BaseURL())
	}
	if cfg.PageSize() != defaultPageSize {
		t.Fatalf("expected default page size, got %d", cfg.PageSize())
	}
	if cfg.Timeout() != defaultTimeoutSeconds*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout())
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	encoded, err := Default().Encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("round trip mismatch: %#v", cfg)
	}
}
