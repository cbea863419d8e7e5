package projectconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	assertEqualInt(t, "Defaults.MaxK", 0, cfg.Defaults.MaxK)
	assertEqual(t, "Defaults.Format", "table", cfg.Defaults.Format)
	assertEqualFloat(t, "Confidence.Level", 0.95, cfg.Confidence.Level)
	assertEqualInt(t, "Confidence.Bootstrap", 10000, cfg.Confidence.Bootstrap)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".passcurve.yaml", `
defaults:
  maxK: 25
  format: json
confidence:
  level: 0.99
  bootstrap: 2000
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqualInt(t, "Defaults.MaxK", 25, cfg.Defaults.MaxK)
	assertEqual(t, "Defaults.Format", "json", cfg.Defaults.Format)
	assertEqualFloat(t, "Confidence.Level", 0.99, cfg.Confidence.Level)
	assertEqualInt(t, "Confidence.Bootstrap", 2000, cfg.Confidence.Bootstrap)
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".passcurve.yaml", `
defaults:
  format: json
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Overridden
	assertEqual(t, "Defaults.Format", "json", cfg.Defaults.Format)

	// Defaults preserved
	assertEqualInt(t, "Defaults.MaxK", 0, cfg.Defaults.MaxK)
	assertEqualFloat(t, "Confidence.Level", 0.95, cfg.Confidence.Level)
	assertEqualInt(t, "Confidence.Bootstrap", 10000, cfg.Confidence.Bootstrap)
}

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	defaults := New()
	assertEqual(t, "Defaults.Format", defaults.Defaults.Format, cfg.Defaults.Format)
	assertEqualFloat(t, "Confidence.Level", defaults.Confidence.Level, cfg.Confidence.Level)
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".passcurve.yaml", `
defaults:
  format: [not valid yaml
    this is broken
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() should return error for invalid YAML")
	}
}

func TestLoad_WalksUpDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".passcurve.yaml", `
defaults:
  format: json
`)

	child := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(child)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Defaults.Format", "json", cfg.Defaults.Format)
	// Other defaults still populated
	assertEqualInt(t, "Confidence.Bootstrap", 10000, cfg.Confidence.Bootstrap)
}

// --- helpers ---

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertEqual(t *testing.T, field, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", field, got, want)
	}
}

func assertEqualInt(t *testing.T, field string, want, got int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", field, got, want)
	}
}

func assertEqualFloat(t *testing.T, field string, want, got float64) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}
