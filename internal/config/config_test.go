package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("Load = %+v, want %+v", cfg, want)
	}
	if !filepath.IsAbs(cfg.DataDir) {
		t.Errorf("data dir %q should be absolute", cfg.DataDir)
	}
}

func TestLoadReadsValues(t *testing.T) {
	dataDir := t.TempDir()
	path := writeConfig(t, `
data_dir = "`+filepath.ToSlash(dataDir)+`"
start_count = 12
capacity = 80
near_capacity = 70
fps = 30
resume_from_log = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != dataDir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dataDir)
	}
	if cfg.StartCount != 12 || cfg.Capacity != 80 || cfg.NearCapacity != 70 || cfg.FPS != 30 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.ResumeFromLog {
		t.Error("ResumeFromLog = true, want false")
	}
	if cfg.LogPath() != filepath.Join(dataDir, LogFileName) {
		t.Errorf("LogPath = %q", cfg.LogPath())
	}
	if cfg.ChartPath() != filepath.Join(dataDir, ChartFileName) {
		t.Errorf("ChartPath = %q", cfg.ChartPath())
	}
}

func TestLoadFallsBackOnInvalidValues(t *testing.T) {
	path := writeConfig(t, `
data_dir = "   "
start_count = -3
capacity = 0
fps = 1000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadClampsNearCapacity(t *testing.T) {
	path := writeConfig(t, "capacity = 50\nnear_capacity = 90\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NearCapacity != 50 {
		t.Errorf("NearCapacity = %d, want 50", cfg.NearCapacity)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "capacity = [\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error = %v, want parse config error", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got, err := expandPath("~/counter")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != filepath.Join(home, "counter") {
		t.Errorf("expandPath = %q, want %q", got, filepath.Join(home, "counter"))
	}

	if _, err := expandPath("  "); err == nil {
		t.Error("expected error for empty path")
	}
}
