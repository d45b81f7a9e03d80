package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

log:
  level: "debug"
  format: "text"

learning:
  review_ratio: 0.4
  due_sample_size: 30
  wrong_option_count: 3
  session_size: 15
  typo_tolerance: 2
`

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("dsn: got %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 || cfg.Database.MinConns != 2 {
		t.Errorf("pool sizes: got %d/%d, want 10/2", cfg.Database.MaxConns, cfg.Database.MinConns)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log: got %+v", cfg.Log)
	}
	if cfg.Learning.ReviewRatio != 0.4 {
		t.Errorf("review ratio: got %v, want 0.4", cfg.Learning.ReviewRatio)
	}
	if cfg.Learning.WrongOptionCount != 3 {
		t.Errorf("wrong option count: got %d, want 3", cfg.Learning.WrongOptionCount)
	}
	// Fields absent from the YAML fall back to env-defaults.
	if cfg.Learning.FallbackSampleSize != 20 {
		t.Errorf("fallback sample size default: got %d, want 20", cfg.Learning.FallbackSampleSize)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/envdb")
	t.Setenv("LEARNING_SESSION_SIZE", "25")

	// Run from a directory without config.yaml.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/envdb" {
		t.Errorf("dsn: got %q", cfg.Database.DSN)
	}
	if cfg.Learning.SessionSize != 25 {
		t.Errorf("session size: got %d, want 25", cfg.Learning.SessionSize)
	}
	if cfg.Learning.ReviewRatio != 0.3 {
		t.Errorf("review ratio default: got %v, want 0.3", cfg.Learning.ReviewRatio)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{
			Database: DatabaseConfig{DSN: "postgres://localhost", MaxConns: 10, MinConns: 2},
			Learning: LearningConfig{
				ReviewRatio:        0.3,
				DueSampleSize:      20,
				FallbackSampleSize: 20,
				WrongOptionCount:   2,
				SessionSize:        10,
				TypoTolerance:      1,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"max conns below min", func(c *Config) { c.Database.MaxConns = 1 }, true},
		{"ratio above one", func(c *Config) { c.Learning.ReviewRatio = 1.5 }, true},
		{"negative ratio", func(c *Config) { c.Learning.ReviewRatio = -0.1 }, true},
		{"zero session size", func(c *Config) { c.Learning.SessionSize = 0 }, true},
		{"zero wrong options", func(c *Config) { c.Learning.WrongOptionCount = 0 }, true},
		{"negative tolerance", func(c *Config) { c.Learning.TypoTolerance = -1 }, true},
		{"zero tolerance ok", func(c *Config) { c.Learning.TypoTolerance = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLearningConfig_ToDomain(t *testing.T) {
	t.Parallel()

	cfg := LearningConfig{
		ReviewRatio:        0.5,
		DueSampleSize:      15,
		FallbackSampleSize: 25,
		WrongOptionCount:   4,
		SessionSize:        8,
		CaseSensitive:      true,
		TypoTolerance:      2,
	}

	d := cfg.ToDomain()
	if d.ReviewRatio != 0.5 || d.DueSampleSize != 15 || d.FallbackSampleSize != 25 {
		t.Errorf("ToDomain sampling fields: got %+v", d)
	}
	if d.WrongOptionCount != 4 || d.SessionSize != 8 || !d.CaseSensitive || d.TypoTolerance != 2 {
		t.Errorf("ToDomain checker fields: got %+v", d)
	}
}
