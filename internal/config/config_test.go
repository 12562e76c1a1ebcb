package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".lsifnavrc"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(t.TempDir())
	if cfg.Index.Path != "" || cfg.EffectiveLogLevel() != "info" {
		t.Errorf("defaults: %+v", cfg)
	}
}

func TestLoadFullFile(t *testing.T) {
	dir := writeRC(t, `
index:
  path: ./dump.lsif
log:
  level: debug
uris:
  editor_prefix: file:///home/dev/src
  index_prefix: file:///index
`)
	cfg := Load(dir)
	if cfg.Index.Path != "./dump.lsif" {
		t.Errorf("index path: %q", cfg.Index.Path)
	}
	if cfg.EffectiveLogLevel() != "debug" {
		t.Errorf("log level: %q", cfg.EffectiveLogLevel())
	}
	if cfg.URIs.EditorPrefix != "file:///home/dev/src" || cfg.URIs.IndexPrefix != "file:///index" {
		t.Errorf("uris: %+v", cfg.URIs)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := writeRC(t, "log:\n  level: warn\n")
	cfg := Load(dir)
	if cfg.EffectiveLogLevel() != "warn" {
		t.Errorf("log level: %q", cfg.EffectiveLogLevel())
	}
	if cfg.Index.Path != "" {
		t.Errorf("index path should default empty, got %q", cfg.Index.Path)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := writeRC(t, "log: [unclosed")
	cfg := Load(dir)
	if cfg.EffectiveLogLevel() != "info" {
		t.Errorf("invalid YAML should fall back to defaults, got %+v", cfg)
	}
}
