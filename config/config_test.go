package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultValues verifies the stock tuning
func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Game.Count != 3 {
		t.Errorf("Expected count 3, got %d", cfg.Game.Count)
	}
	if cfg.Physics.Gravity != 0.5 || cfg.Physics.Bounce != 0.7 {
		t.Errorf("Unexpected physics defaults: %+v", cfg.Physics)
	}
	if !cfg.Game.ClickToAdd || !cfg.Game.EyeBlink {
		t.Error("Expected click_to_add and eye_blink enabled")
	}
	if len(cfg.Groups.Sad) != 2 || cfg.Groups.Sad[0] != 9 {
		t.Errorf("Unexpected sad group: %v", cfg.Groups.Sad)
	}
}

// TestDefaultIsolation verifies each call returns independent slices
func TestDefaultIsolation(t *testing.T) {
	a := Default()
	b := Default()
	a.Groups.Idle[0] = 99
	if b.Groups.Idle[0] == 99 {
		t.Fatal("Default() shares group slices between calls")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "speaki.toml")
	data := `
[game]
speaki_count = 7

[physics]
gravity = 1.25

[merge]
enabled = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Count != 7 {
		t.Errorf("Expected count 7, got %d", cfg.Game.Count)
	}
	if cfg.Physics.Gravity != 1.25 {
		t.Errorf("Expected gravity 1.25, got %f", cfg.Physics.Gravity)
	}
	if cfg.Merge.Enabled {
		t.Error("Expected merge disabled")
	}
	// Untouched keys keep defaults
	if cfg.Physics.Bounce != 0.7 {
		t.Errorf("Expected default bounce 0.7, got %f", cfg.Physics.Bounce)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("Expected read error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[game\nspeaki_count = "), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SPEAKI_COUNT", "12")
	t.Setenv("SPEAKI_TRANSPARENT", "true")
	t.Setenv("SPEAKI_MASTER_VOLUME", "0.9")

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Game.Count != 12 {
		t.Errorf("Expected count 12, got %d", cfg.Game.Count)
	}
	if !cfg.Game.Transparent {
		t.Error("Expected transparent true")
	}
	if cfg.Audio.Master != 0.9 {
		t.Errorf("Expected master 0.9, got %f", cfg.Audio.Master)
	}
	// Unset variables leave values alone
	if cfg.Game.Size != 200 {
		t.Errorf("Expected size 200, got %f", cfg.Game.Size)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("SPEAKI_COUNT", "many")
	err := ApplyEnv(Default())
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("Expected parse env error, got %v", err)
	}
}

func TestLoadAutoFallsBackToDefaults(t *testing.T) {
	chdirForTest(t, t.TempDir())
	cfg, err := LoadAuto("")
	if err != nil {
		t.Fatalf("LoadAuto failed: %v", err)
	}
	if cfg.Game.Count != 3 {
		t.Errorf("Expected default count, got %d", cfg.Game.Count)
	}
}

func TestLoadAutoPrefersWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	if err := os.WriteFile(DefaultPath, []byte("[game]\nspeaki_count = 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadAuto("")
	if err != nil {
		t.Fatalf("LoadAuto failed: %v", err)
	}
	if cfg.Game.Count != 5 {
		t.Errorf("Expected count 5, got %d", cfg.Game.Count)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(Default(), &buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(buf.String(), "speaki_count = 3") {
		t.Errorf("Expected speaki_count in output:\n%s", buf.String())
	}
}

func TestEffectiveMaxSize(t *testing.T) {
	cfg := Default()
	if cfg.EffectiveMaxSize() != 400 {
		t.Errorf("Expected 400, got %f", cfg.EffectiveMaxSize())
	}
	cfg.Merge.MaxSize = 0
	if cfg.EffectiveMaxSize() != cfg.Game.Size {
		t.Errorf("Expected spawn size fallback, got %f", cfg.EffectiveMaxSize())
	}
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
