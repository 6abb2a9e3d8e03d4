package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"floroz/pkg/parser"
)

var envKeys = []string{"FLOROZ_OUTPUT", "FLOROZ_MAX_DEPTH", "FLOROZ_NO_COLOR", "FLOROZ_PROMPT"}

// isolate runs the test in an empty directory with no FLOROZ_* variables set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output != OutputText {
		t.Errorf("Output wrong. expected=%q, got=%q", OutputText, cfg.Output)
	}
	if cfg.MaxDepth != parser.DefaultMaxDepth {
		t.Errorf("MaxDepth wrong. expected=%d, got=%d", parser.DefaultMaxDepth, cfg.MaxDepth)
	}
	if !cfg.Color {
		t.Errorf("Color should default to true")
	}
	if cfg.Prompt != "floroz> " {
		t.Errorf("Prompt wrong. got=%q", cfg.Prompt)
	}
	if cfg.Source != "" {
		t.Errorf("Source should be empty without a config file. got=%q", cfg.Source)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	writeFile(t, DefaultPath, `
output = "json"
max_depth = 64
color = false
prompt = ">> "
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output != OutputJSON || cfg.MaxDepth != 64 || cfg.Color || cfg.Prompt != ">> " {
		t.Errorf("config not read from file. got=%+v", cfg)
	}
	if cfg.Source != DefaultPath {
		t.Errorf("Source wrong. expected=%q, got=%q", DefaultPath, cfg.Source)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `output = "yaml"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output != OutputYAML {
		t.Errorf("Output wrong. expected=%q, got=%q", OutputYAML, cfg.Output)
	}
	if cfg.MaxDepth != parser.DefaultMaxDepth || !cfg.Color {
		t.Errorf("unset fields lost their defaults. got=%+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	writeFile(t, "broken.toml", `output = `)
	writeFile(t, "bad_output.toml", `output = "xml"`)
	writeFile(t, "bad_depth.toml", `max_depth = 0`)

	tests := []struct {
		path        string
		expectedErr string
	}{
		{"missing.toml", "config file not found"},
		{"broken.toml", "failed to parse config"},
		{"bad_output.toml", "invalid output format"},
		{"bad_depth.toml", "max_depth must be positive"},
	}

	for _, tt := range tests {
		_, err := Load(tt.path)
		if err == nil {
			t.Errorf("%s - expected error", tt.path)
			continue
		}
		if !strings.Contains(err.Error(), tt.expectedErr) {
			t.Errorf("%s - error wrong. expected to contain %q, got=%q", tt.path, tt.expectedErr, err)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	writeFile(t, DefaultPath, `output = "json"`)

	t.Setenv("FLOROZ_OUTPUT", "YAML")
	t.Setenv("FLOROZ_MAX_DEPTH", "10")
	t.Setenv("FLOROZ_NO_COLOR", "1")
	t.Setenv("FLOROZ_PROMPT", "$ ")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output != OutputYAML {
		t.Errorf("Output wrong. expected=%q, got=%q", OutputYAML, cfg.Output)
	}
	if cfg.MaxDepth != 10 {
		t.Errorf("MaxDepth wrong. expected=10, got=%d", cfg.MaxDepth)
	}
	if cfg.Color {
		t.Errorf("Color should be disabled by FLOROZ_NO_COLOR")
	}
	if cfg.Prompt != "$ " {
		t.Errorf("Prompt wrong. got=%q", cfg.Prompt)
	}
}

func TestInvalidMaxDepthEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FLOROZ_MAX_DEPTH", "deep")

	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "FLOROZ_MAX_DEPTH") {
		t.Fatalf("expected FLOROZ_MAX_DEPTH error. got=%v", err)
	}
}

func TestDotEnv(t *testing.T) {
	isolate(t)
	writeFile(t, DefaultEnvFile, "FLOROZ_PROMPT=\"env> \"\nFLOROZ_OUTPUT=yaml\n")

	// The process environment wins over .env.
	t.Setenv("FLOROZ_OUTPUT", "json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Prompt != "env> " {
		t.Errorf("Prompt not read from .env. got=%q", cfg.Prompt)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output wrong. expected=%q, got=%q", OutputJSON, cfg.Output)
	}
}

func TestParserOptions(t *testing.T) {
	cfg := Default()
	cfg.MaxDepth = 3

	_, err := parser.Parse("((((1))))", cfg.ParserOptions()...)
	if err == nil {
		t.Fatalf("expected depth error with MaxDepth=3")
	}
}
