// SPDX-License-Identifier: MIT

// Package config holds the process configuration of the lvstat server and
// CLI. Values start from Default, are overridden by environment variables
// (FromEnv) and then by command-line flags bound onto the same struct.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvPrefix is the default environment variable prefix.
const EnvPrefix = "LVSTAT_"

// Defaults.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultMaxBodyBytes    = 4 << 20
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
)

var (
	// ErrInvalidAddr is returned for an empty listen address.
	ErrInvalidAddr = errors.New("config: invalid listen address")

	// ErrInvalidTimeout is returned for a non-positive timeout.
	ErrInvalidTimeout = errors.New("config: timeout must be positive")

	// ErrInvalidBodyLimit is returned for a non-positive body limit.
	ErrInvalidBodyLimit = errors.New("config: max body bytes must be positive")

	// ErrInvalidLogLevel is returned for a level zap does not know.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidLogFormat is returned for a format other than json or console.
	ErrInvalidLogFormat = errors.New("config: invalid log format")

	// ErrInvalidEnv is returned when an environment value does not parse.
	ErrInvalidEnv = errors.New("config: invalid environment value")
)

// Config is the server and logging configuration.
type Config struct {
	Addr            string        `json:"addr"`
	ReadTimeout     time.Duration `json:"readTimeout"`
	WriteTimeout    time.Duration `json:"writeTimeout"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout"`
	MaxBodyBytes    int64         `json:"maxBodyBytes"`
	LogLevel        string        `json:"logLevel"`
	LogFormat       string        `json:"logFormat"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Addr:            DefaultAddr,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxBodyBytes:    DefaultMaxBodyBytes,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
	}
}

// FromEnv applies prefix+NAME overrides to c using os.LookupEnv. Recognised
// names: ADDR, READ_TIMEOUT, WRITE_TIMEOUT, SHUTDOWN_TIMEOUT (Go durations),
// MAX_BODY_BYTES, LOG_LEVEL, LOG_FORMAT. Unset variables leave c unchanged.
//
// Errors: ErrInvalidEnv wrapping the parse failure.
func (c *Config) FromEnv(prefix string) error {
	return c.fromLookup(prefix, os.LookupEnv)
}

func (c *Config) fromLookup(prefix string, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(prefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) error {
		v, ok := lookup(prefix + name)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w: %v", prefix, name, v, ErrInvalidEnv, err)
		}
		*dst = d

		return nil
	}

	str("ADDR", &c.Addr)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	if err := dur("READ_TIMEOUT", &c.ReadTimeout); err != nil {
		return err
	}
	if err := dur("WRITE_TIMEOUT", &c.WriteTimeout); err != nil {
		return err
	}
	if err := dur("SHUTDOWN_TIMEOUT", &c.ShutdownTimeout); err != nil {
		return err
	}
	if v, ok := lookup(prefix + "MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_BODY_BYTES=%q: %w: %v", prefix, v, ErrInvalidEnv, err)
		}
		c.MaxBodyBytes = n
	}

	return nil
}

// Validate checks every field and returns the first failure.
func (c Config) Validate() error {
	if c.Addr == "" {
		return ErrInvalidAddr
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodyBytes <= 0 {
		return ErrInvalidBodyLimit
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%q: %w", c.LogLevel, ErrInvalidLogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%q: %w", c.LogFormat, ErrInvalidLogFormat)
	}

	return nil
}
