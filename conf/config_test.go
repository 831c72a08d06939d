package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imagepress.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}
	return path
}

func TestReadOptions(t *testing.T) {
	path := writeConfig(t, `
include:
  - "**/*.png"
  - "/\\.webp$/"
exclude:
  - "sprites/**"
jpeg:
  quality: 85
gif: {}
log-stats: false
cache-dir: .imagepress-cache
cache-ttl: 24h
cache-max-size: 64 MB
`)

	opts, err := ReadOptions(path)
	if err != nil {
		t.Fatalf("ReadOptions failed: %v", err)
	}

	if len(opts.Include) != 2 {
		t.Fatalf("Expected 2 include patterns, got %d", len(opts.Include))
	}
	if !opts.Include[0].Matches("assets/logo.png") {
		t.Error("Expected glob include to match a png path")
	}
	if !opts.Include[1].Matches("assets/hero.webp") {
		t.Error("Expected regex include to match a webp path")
	}
	if opts.Include[1].Matches("assets/hero.png") {
		t.Error("Expected regex include not to match a png path")
	}
	if len(opts.Exclude) != 1 || !opts.Exclude[0].Matches("sprites/atlas.png") {
		t.Error("Expected exclude glob to match sprites paths")
	}

	if q := opts.JPEG.Int("quality", -1); q != 85 {
		t.Errorf("Expected jpeg quality 85, got %d", q)
	}
	// `gif: {}` is an explicit empty record...
	if opts.GIF == nil || len(opts.GIF) != 0 {
		t.Errorf("Expected explicitly empty gif record, got %v", opts.GIF)
	}
	// ...while absent kinds stay nil so defaults apply on merge.
	if opts.PNG != nil {
		t.Errorf("Expected absent png record to be nil, got %v", opts.PNG)
	}

	if opts.LogStats == nil || *opts.LogStats {
		t.Error("Expected log-stats false")
	}
	if opts.CacheDir != ".imagepress-cache" {
		t.Errorf("Expected cache-dir .imagepress-cache, got %q", opts.CacheDir)
	}
	if opts.CacheTTL != 24*time.Hour {
		t.Errorf("Expected cache-ttl 24h, got %v", opts.CacheTTL)
	}
	if opts.CacheMaxSize != 64_000_000 {
		t.Errorf("Expected cache-max-size 64000000, got %d", opts.CacheMaxSize)
	}
}

func TestReadOptions_BadCacheTTL(t *testing.T) {
	path := writeConfig(t, "cache-ttl: soon\n")
	if _, err := ReadOptions(path); err == nil {
		t.Error("Expected an error for an invalid cache-ttl")
	}
}

func TestReadOptions_BadCacheMaxSize(t *testing.T) {
	path := writeConfig(t, "cache-max-size: plenty\n")
	if _, err := ReadOptions(path); err == nil {
		t.Error("Expected an error for an invalid cache-max-size")
	}
}

func TestReadOptions_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	opts, err := ReadOptions(path)
	if err != nil {
		t.Fatalf("ReadOptions failed: %v", err)
	}
	if opts.Include != nil || opts.Exclude != nil {
		t.Error("Expected nil patterns for an empty config")
	}
	if opts.JPEG != nil || opts.PNG != nil || opts.WebP != nil || opts.GIF != nil || opts.AVIF != nil {
		t.Error("Expected all per-kind records to stay nil")
	}
	if opts.LogStats != nil {
		t.Error("Expected log-stats to stay nil so the default applies")
	}
}

func TestReadOptions_MissingFile(t *testing.T) {
	_, err := ReadOptions(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestReadOptions_BadRegex(t *testing.T) {
	path := writeConfig(t, `
include:
  - "/[unclosed/"
`)
	if _, err := ReadOptions(path); err == nil {
		t.Error("Expected an error for an invalid regex pattern")
	}
}

func TestReadOptions_BadYaml(t *testing.T) {
	path := writeConfig(t, "include: [unterminated")
	if _, err := ReadOptions(path); err == nil {
		t.Error("Expected an error for malformed yaml")
	}
}
