// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. BALLOT_GROUPS.
const EnvPrefix = "BALLOT"

type Config struct {
	// Sample generation
	Groups     int
	Households int
	Buildings  int
	Seed       uint64

	InstancePath string
	OutputPath   string
	UnplacedPath string
	DefaultOrder []string

	DatabaseURL  string
	DatabaseType string

	LogLevel string
}

// BindFlags registers every configuration flag on flags.
func BindFlags(flags *pflag.FlagSet) {
	flags.IntP("groups", "g", 20, "Number of sample groups to generate")
	flags.IntP("households", "n", 5, "Number of sample households to generate")
	flags.IntP("buildings", "b", 3, "Number of sample buildings to generate")
	flags.Uint64("seed", 1, "Seed for sample generation")

	flags.StringP("instance", "i", "", "Instance YAML file (generated when empty)")
	flags.StringP("output", "o", "", "Output file (stdout when empty)")
	flags.StringP("unplaced", "u", "", "CSV file for unplaced groups")
	flags.StringSlice("order", nil, "Default building order (defaults to the instance's order)")

	flags.StringP("database-url", "d", "", "Database URL for run records")
	flags.StringP("database-type", "t", "sqlite", "Database type (sqlite or postgres)")

	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
}

// Load resolves the configuration from parsed flags, then BALLOT_* environment
// variables, then defaults. A .env file in the working directory is read first
// and never overrides variables that are already set.
func Load(flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("ignoring unreadable .env file", "error", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := Config{
		Groups:       v.GetInt("groups"),
		Households:   v.GetInt("households"),
		Buildings:    v.GetInt("buildings"),
		Seed:         v.GetUint64("seed"),
		InstancePath: v.GetString("instance"),
		OutputPath:   v.GetString("output"),
		UnplacedPath: v.GetString("unplaced"),
		DatabaseURL:  v.GetString("database-url"),
		DatabaseType: v.GetString("database-type"),
		LogLevel:     v.GetString("log-level"),
	}

	// Building names contain spaces, so the env form is comma separated
	if flags.Changed("order") {
		order, err := flags.GetStringSlice("order")
		if err != nil {
			return Config{}, err
		}
		cfg.DefaultOrder = order
	} else if env := os.Getenv(EnvPrefix + "_ORDER"); env != "" {
		cfg.DefaultOrder = splitList(env)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseFlags parses args on a fresh flag set and resolves the configuration.
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("room-ballot", pflag.ContinueOnError)
	BindFlags(fs)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Load(fs)
}

// Level maps LogLevel onto a slog level.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c Config) validate() error {
	if c.Groups < 1 {
		return errors.New("groups must be at least 1")
	}
	if c.Households < 1 {
		return errors.New("households must be at least 1")
	}
	if c.Buildings < 1 {
		return errors.New("buildings must be at least 1")
	}
	if c.DatabaseType != "sqlite" && c.DatabaseType != "postgres" {
		return fmt.Errorf("invalid database type %q (use sqlite or postgres)", c.DatabaseType)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
