package config

import (
	"reflect"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"SOURCE_DIR", "HTTP_ADDR", "MAP_BASE_URL", "MAP_URL_ENCODE", "DEPOSIT_STEP", "CORS_ORIGINS", "CACHE_TTL"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()

	if cfg.SourceDir != "source" {
		t.Errorf("SourceDir: got %q, want %q", cfg.SourceDir, "source")
	}
	if cfg.MapBaseURL != DefaultMapBaseURL {
		t.Errorf("MapBaseURL: got %q", cfg.MapBaseURL)
	}
	if !cfg.MapURLEncode {
		t.Error("MapURLEncode should default to true")
	}
	if cfg.DepositStep != 10_000_000 {
		t.Errorf("DepositStep: got %d, want 10000000", cfg.DepositStep)
	}
	if cfg.CORSOrigins != nil {
		t.Errorf("CORSOrigins: got %v, want none", cfg.CORSOrigins)
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("CacheTTL: got %v, want 0", cfg.CacheTTL)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SOURCE_DIR", "/data/announcements")
	t.Setenv("MAP_URL_ENCODE", "false")
	t.Setenv("DEPOSIT_STEP", "5000000")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:3001,")
	t.Setenv("CACHE_TTL", "90s")

	cfg := FromEnv()

	if cfg.SourceDir != "/data/announcements" {
		t.Errorf("SourceDir: got %q", cfg.SourceDir)
	}
	if cfg.MapURLEncode {
		t.Error("MapURLEncode: got true, want false")
	}
	if cfg.DepositStep != 5_000_000 {
		t.Errorf("DepositStep: got %d", cfg.DepositStep)
	}
	want := []string{"http://localhost:3000", "http://localhost:3001"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins: got %v, want %v", cfg.CORSOrigins, want)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL: got %v", cfg.CacheTTL)
	}
}

func TestFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("DEPOSIT_STEP", "-3")
	t.Setenv("MAP_URL_ENCODE", "maybe")
	t.Setenv("CACHE_TTL", "soon")

	cfg := FromEnv()
	if cfg.DepositStep != 10_000_000 {
		t.Errorf("DepositStep: got %d, want fallback", cfg.DepositStep)
	}
	if !cfg.MapURLEncode {
		t.Error("MapURLEncode: invalid value should keep the default")
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("CacheTTL: got %v, want fallback", cfg.CacheTTL)
	}
}
