package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadFrom_Defaults(t *testing.T) {
	for _, key := range []string{"ORGCOUNT_SEED_FILE", "ORGCOUNT_NO_SEED", "ORGCOUNT_LOG_LEVEL", "ORGCOUNT_LOG_FORMAT", "ORGCOUNT_PROMPT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadFrom(nil)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.SeedFile != "" || cfg.NoSeed {
		t.Errorf("unexpected seed settings: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log settings: %+v", cfg)
	}
	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "> ")
	}
	if cfg.LogrusLevel() != logrus.WarnLevel {
		t.Errorf("LogrusLevel() = %v, want warn", cfg.LogrusLevel())
	}
}

func TestLoadFrom_Environment(t *testing.T) {
	t.Setenv("ORGCOUNT_SEED_FILE", "/tmp/org.yaml")
	t.Setenv("ORGCOUNT_LOG_LEVEL", " DEBUG ")
	t.Setenv("ORGCOUNT_LOG_FORMAT", "json")
	t.Setenv("ORGCOUNT_PROMPT", "org> ")

	cfg, err := LoadFrom(nil)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.SeedFile != "/tmp/org.yaml" {
		t.Errorf("SeedFile = %q", cfg.SeedFile)
	}
	if cfg.LogLevel != "debug" || cfg.LogrusLevel() != logrus.DebugLevel {
		t.Errorf("LogLevel = %q (%v)", cfg.LogLevel, cfg.LogrusLevel())
	}
	if cfg.LogFormat != "json" || cfg.Prompt != "org> " {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadFrom_EnvFile(t *testing.T) {
	t.Setenv("ORGCOUNT_LOG_LEVEL", "")
	os.Unsetenv("ORGCOUNT_LOG_LEVEL")
	t.Setenv("ORGCOUNT_PROMPT", "shell> ")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "ORGCOUNT_LOG_LEVEL=info\nORGCOUNT_PROMPT=file> \n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("ORGCOUNT_LOG_LEVEL") })

	n, err := LoadEnv([]string{envFile, filepath.Join(dir, ".env.local")})
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if n != 1 {
		t.Errorf("LoadEnv read %d files, want 1", n)
	}

	cfg, err := LoadFrom(nil)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want value from env file", cfg.LogLevel)
	}
	if cfg.Prompt != "shell> " {
		t.Errorf("Prompt = %q, process environment should win over env file", cfg.Prompt)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{LogLevel: "warn", LogFormat: "text"}, false},
		{"silent json", Config{LogLevel: "silent", LogFormat: "JSON"}, false},
		{"unknown level", Config{LogLevel: "verbose", LogFormat: "text"}, true},
		{"unknown format", Config{LogLevel: "warn", LogFormat: "xml"}, true},
		{"seed conflict", Config{LogLevel: "warn", LogFormat: "text", NoSeed: true, SeedFile: "x.yaml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}
