package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testThemeYAML = `name: cli-test
appearance: dark
color:
  neutral: "#20242b"
  red: "#f85149"
  orange: "#db6d28"
  yellow: "#d29922"
  green: "#3fb950"
  cyan: "#39c5cf"
  blue: "#58a6ff"
  violet: "#bc8cff"
  magenta: "#db61a2"
`

func TestResolveThemeConfigByPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cli-test.yaml")
	if err := os.WriteFile(path, []byte(testThemeYAML), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := resolveThemeConfig(path)
	if err != nil {
		t.Fatalf("resolveThemeConfig: %v", err)
	}
	if cfg.Name != "cli-test" {
		t.Fatalf("expected cli-test, got %q", cfg.Name)
	}
}

func TestResolveThemeConfigByBuiltinName(t *testing.T) {
	flagProject = t.TempDir()
	defer func() { flagProject = "" }()

	cfg, err := resolveThemeConfig("glaze-dark")
	if err != nil {
		t.Fatalf("resolveThemeConfig: %v", err)
	}
	if cfg.Source != "builtin" {
		t.Fatalf("expected builtin source, got %q", cfg.Source)
	}
}

func TestResolveThemeConfigUnknownName(t *testing.T) {
	flagProject = t.TempDir()
	defer func() { flagProject = "" }()

	_, err := resolveThemeConfig("no-such-theme")
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		t.Fatalf("expected PreflightError, got %v", err)
	}
	if preflight.Hint == "" {
		t.Fatal("preflight error should carry a hint")
	}
}
