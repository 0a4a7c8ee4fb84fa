package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/rpncalc"
)

const defaultConfigName = "rpncalc.toml"

type config struct {
	Mode           rpncalc.Mode `toml:"mode"`
	DivisionDigits int32        `toml:"division_digits"`
	PowPrecision   uint         `toml:"pow_precision"`
	Workers        int          `toml:"workers"`
	LogLevel       string       `toml:"log_level"`
}

// loadConfig reads the configuration file, if any, and applies flags that
// were set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (config, error) {
	cfg := config{Mode: rpncalc.ModeInteger, LogLevel: "warn"}
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return cfg, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		if _, err := os.Stat(defaultConfigName); err == nil {
			path = defaultConfigName
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to stat %q: %w", defaultConfigName, err)
		}
	}
	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if extra := meta.Undecoded(); len(extra) > 0 {
			keys := make([]string, len(extra))
			for i, k := range extra {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	if flags.Changed("mode") {
		s, _ := flags.GetString("mode")
		if cfg.Mode, err = rpncalc.ParseMode(s); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("digits") {
		cfg.DivisionDigits, _ = flags.GetInt32("digits")
	}
	if flags.Changed("pow-prec") {
		cfg.PowPrecision, _ = flags.GetUint("pow-prec")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if f := flags.Lookup("workers"); f != nil && f.Changed {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	return cfg, nil
}

// calculator creates the calculator described by the configuration.
func (cfg config) calculator() rpncalc.Calculator {
	var opts []rpncalc.Option
	if cfg.DivisionDigits > 0 {
		opts = append(opts, rpncalc.DivisionDigits(cfg.DivisionDigits))
	}
	if cfg.PowPrecision > 0 {
		opts = append(opts, rpncalc.PowPrecision(cfg.PowPrecision))
	}
	return rpncalc.New(cfg.Mode, opts...)
}

// logger creates a development logger at the configured level.
func (cfg config) logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("bad log level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = level
	return zc.Build()
}
