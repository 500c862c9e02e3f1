// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Groups != 20 || cfg.Households != 5 || cfg.Buildings != 3 {
		t.Errorf("unexpected generation defaults: %+v", cfg)
	}
	if cfg.Seed != 1 {
		t.Errorf("expected seed 1, got %d", cfg.Seed)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %q", cfg.DatabaseType)
	}
	if cfg.DefaultOrder != nil {
		t.Errorf("expected no default order, got %v", cfg.DefaultOrder)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.Level())
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("BALLOT_GROUPS", "9")
	t.Setenv("BALLOT_DATABASE_URL", "file:env.db")
	t.Setenv("BALLOT_ORDER", "Building 2, Building 1")
	t.Setenv("BALLOT_LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Groups != 9 {
		t.Errorf("expected groups 9, got %d", cfg.Groups)
	}
	if cfg.DatabaseURL != "file:env.db" {
		t.Errorf("expected env database URL, got %q", cfg.DatabaseURL)
	}
	if diff := cmp.Diff([]string{"Building 2", "Building 1"}, cfg.DefaultOrder); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Level())
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("BALLOT_GROUPS", "9")
	t.Setenv("BALLOT_ORDER", "A,B")

	cfg, err := ParseFlags([]string{"-g", "4", "--order", "B", "--order", "A", "-t", "postgres"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Groups != 4 {
		t.Errorf("CLI should override env: expected 4, got %d", cfg.Groups)
	}
	if diff := cmp.Diff([]string{"B", "A"}, cfg.DefaultOrder); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero groups", []string{"-g", "0"}},
		{"negative households", []string{"-n", "-2"}},
		{"zero buildings", []string{"-b", "0"}},
		{"unknown database", []string{"-t", "mysql"}},
		{"unknown log level", []string{"--log-level", "loud"}},
		{"unknown flag", []string{"--splitting-allowed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}
