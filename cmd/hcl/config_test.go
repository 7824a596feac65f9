package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "hcl.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadToolConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[output]
format = "json"
max_diagnostics = 7

[cache]
enabled = true
dir = "/tmp/hcl-cache"
`)

	cfg, ok, err := loadToolConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected the config to be found")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q", cfg.Output.Format)
	}
	if cfg.Output.MaxDiagnostics != 7 {
		t.Errorf("MaxDiagnostics = %d", cfg.Output.MaxDiagnostics)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != "/tmp/hcl-cache" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestFindToolConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[output]\nformat = \"pretty\"\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findToolConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected to find the config above the start directory")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want a file in %q", path, root)
	}
}

func TestLoadToolConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "not toml at all = = =")

	if _, _, err := loadToolConfig(dir); err == nil {
		t.Fatalf("expected a parse error")
	}
}
