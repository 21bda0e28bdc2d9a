package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_BuiltInDefaults(t *testing.T) {
	cfg, err := NewManager().Load("")
	if err != nil {
		t.Fatalf("Expected defaults to load, got: %v", err)
	}

	if cfg.Site.BaseURL != "https://dapsiwow.com" {
		t.Errorf("Unexpected base URL: %q", cfg.Site.BaseURL)
	}
	if cfg.Fallback != "main" {
		t.Errorf("Unexpected fallback: %q", cfg.Fallback)
	}
	if cfg.Defaults.ChangeFreq != "weekly" || cfg.Defaults.Priority != 0.8 {
		t.Errorf("Unexpected entry defaults: %+v", cfg.Defaults)
	}
	if len(cfg.Categories) == 0 {
		t.Error("Expected default categories")
	}
	if cfg.Categories[0].Name != "main" {
		t.Errorf("Expected main declared first, got %q", cfg.Categories[0].Name)
	}
	if len(cfg.StaticPages) == 0 {
		t.Error("Expected default static pages")
	}
}

func TestGetConfig_ReturnsLoadedConfig(t *testing.T) {
	manager := NewManager()
	loaded, err := manager.Load("")
	if err != nil {
		t.Fatalf("Expected defaults to load, got: %v", err)
	}

	got := manager.GetConfig()
	if got != loaded {
		t.Error("Expected GetConfig to return the loaded config")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewManager().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected missing config file to be tolerated, got: %v", err)
	}
	if cfg.Site.BaseURL == "" {
		t.Error("Expected defaults when config file is missing")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.yaml")
	content := `site:
  base_url: https://example.org/
output:
  dir: out
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := NewManager().Load(path)
	if err != nil {
		t.Fatalf("Expected config to load, got: %v", err)
	}

	if cfg.Site.BaseURL != "https://example.org" {
		t.Errorf("Expected trailing slash trimmed from base URL, got %q", cfg.Site.BaseURL)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("Expected output dir override, got %q", cfg.Output.Dir)
	}
	// Untouched sections keep their defaults.
	if len(cfg.Categories) == 0 {
		t.Error("Expected default categories to survive a partial config file")
	}
}

func TestLoad_EnvOverridesScalarKeys(t *testing.T) {
	t.Setenv("SITEMAP_OUTPUT_INDEX_FILE", "sitemap-index.xml")
	t.Setenv("SITEMAP_DEFAULTS_CHANGEFREQ", "daily")
	t.Setenv("SITEMAP_FALLBACK", "main")

	cfg, err := NewManager().Load("")
	if err != nil {
		t.Fatalf("Expected config to load, got: %v", err)
	}

	if cfg.Output.IndexFile != "sitemap-index.xml" {
		t.Errorf("Expected env to override index file, got %q", cfg.Output.IndexFile)
	}
	if cfg.Defaults.ChangeFreq != "daily" {
		t.Errorf("Expected env to override default changefreq, got %q", cfg.Defaults.ChangeFreq)
	}
}

func TestLoad_RejectsInvalidPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.yaml")
	content := `fallback: main
categories:
  - name: main
    patterns: ["/$"]
  - name: broken
    patterns: ["[unclosed"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := NewManager().Load(path); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}

func TestLoad_RejectsUndeclaredFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.yaml")
	content := `fallback: other
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := NewManager().Load(path); err == nil {
		t.Error("Expected error for fallback not present in categories")
	}
}
