// SPDX-License-Identifier: MIT
// Config loading for fockctl.
// Precedence: flags > FOCKCTL_* environment > config file > defaults.
// Keys use underscores (show_annotations); the matching flags use dashes
// (--show-annotations) and env vars upper case (FOCKCTL_SHOW_ANNOTATIONS).

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "FOCKCTL"

	cfgKeyShowAnnotations = "show_annotations"
	cfgKeyLogLevel        = "log_level"
	cfgKeyLimit           = "limit"

	defaultLogLevel = "warn"
)

// loadConfig builds the viper instance for one invocation. An explicit
// config file must exist; without one only env and flags apply.
func loadConfig(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyShowAnnotations, true)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLimit, 0)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{cfgKeyShowAnnotations, cfgKeyLogLevel, cfgKeyLimit} {
			f := flags.Lookup(flagName(key))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// flagName maps a config key to its command-line flag.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// newLogger returns a text slog logger at the named level (debug, info,
// warn, error).
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
