package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets the overrides for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAddr, EnvClientOrigin, EnvLogLevel, EnvDefaultSize} {
		t.Setenv(k, "")
	}
	// keep a stray .env in the package directory out of the picture
	t.Chdir(t.TempDir())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nope.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.path = path
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_size": 4, "beginner_mode": false}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultSize != 4 {
		t.Errorf("DefaultSize = %d, want 4", cfg.DefaultSize)
	}
	if cfg.BeginnerMode {
		t.Error("BeginnerMode should be false")
	}
	if cfg.ScrambleLength != 20 {
		t.Errorf("unset fields should keep defaults, ScrambleLength = %d", cfg.ScrambleLength)
	}
}

func TestLoadBadJSON(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	_ = os.WriteFile(path, []byte(`{`), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAddr, ":9000")
	t.Setenv(EnvClientOrigin, "http://example.test")
	t.Setenv(EnvDefaultSize, "2")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" || cfg.ClientOrigin != "http://example.test" || cfg.DefaultSize != 2 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}

	t.Setenv(EnvDefaultSize, "big")
	if _, err := Load(filepath.Join(t.TempDir(), "config.json")); err == nil {
		t.Error("non-numeric size should fail")
	}
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvLogLevel)
	if err := os.WriteFile(".env", []byte(EnvLogLevel+"=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvLogLevel) })

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from .env", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DefaultSize = 1
	if cfg.Validate() == nil {
		t.Error("size 1 should be rejected")
	}
	cfg = Default()
	cfg.ScrambleLength = 0
	if cfg.Validate() == nil {
		t.Error("length 0 should be rejected")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg, _ := Load(path)
	cfg.DefaultSize = 2
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.DefaultSize != 2 {
		t.Errorf("DefaultSize = %d after save, want 2", again.DefaultSize)
	}
}
