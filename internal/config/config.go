// Package config handles loading and validation of cfdns configuration
// from environment variables and an optional config file.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Configuration defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultTimeout   = 10 * time.Second
	DefaultResolver  = "1.1.1.1:53"
	DefaultSSHPort   = 22
)

// EnvPrefix is the prefix of every environment variable read by this package.
const EnvPrefix = "CFDNS_"

// Config holds the resolved application configuration. Precedence is
// defaults, then config file, then environment variables.
type Config struct {
	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// API client
	Endpoint string        // empty means the client default
	Email    string        // account email credential
	APIKey   string        // API key credential
	Timeout  time.Duration // per-request timeout
	MaxPages int           // pagination bound, 0 means the client default

	// Resolver address (host:port) for propagation checks
	Resolver string

	// SSH holds the remote zone export destination settings.
	SSH SSHConfig
}

// SSHConfig holds settings for exporting zone files over SFTP.
type SSHConfig struct {
	Host     string
	Port     int
	User     string
	KeyFile  string // path to a private key file
	Password string
}

// Load resolves the configuration from the optional config file at path
// (empty means no file) and the CFDNS_* environment variables. All
// validation problems are collected and reported together.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Timeout:   DefaultTimeout,
		Resolver:  DefaultResolver,
		SSH:       SSHConfig{Port: DefaultSSHPort},
	}

	var errs []string

	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			errs = append(errs, "config file: "+err.Error())
		} else {
			fileCfg.apply(cfg)
		}
	}

	errs = append(errs, applyEnv(cfg)...)
	errs = append(errs, cfg.validate()...)

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return cfg, nil
}

// applyEnv overlays CFDNS_* environment variables onto cfg, returning any
// parse errors.
func applyEnv(cfg *Config) []string {
	var errs []string

	if v := getEnv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getEnv(EnvPrefix + "LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := getEnv(EnvPrefix + "ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := getEnvOrFile(EnvPrefix+"EMAIL", EnvPrefix+"EMAIL_FILE"); v != "" {
		cfg.Email = v
	}
	if v := getEnvOrFile(EnvPrefix+"API_KEY", EnvPrefix+"API_KEY_FILE"); v != "" {
		cfg.APIKey = v
	}
	if v := getEnv(EnvPrefix + "TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%sTIMEOUT: invalid duration %q (use format like 10s, 1m)", EnvPrefix, v))
		} else {
			cfg.Timeout = d
		}
	}
	if v := getEnv(EnvPrefix + "MAX_PAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%sMAX_PAGES: invalid integer %q", EnvPrefix, v))
		} else {
			cfg.MaxPages = n
		}
	}
	if v := getEnv(EnvPrefix + "RESOLVER"); v != "" {
		cfg.Resolver = v
	}

	if v := getEnv(EnvPrefix + "SSH_HOST"); v != "" {
		cfg.SSH.Host = v
	}
	if v := getEnv(EnvPrefix + "SSH_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%sSSH_PORT: invalid integer %q", EnvPrefix, v))
		} else {
			cfg.SSH.Port = n
		}
	}
	if v := getEnv(EnvPrefix + "SSH_USER"); v != "" {
		cfg.SSH.User = v
	}
	if v := getEnv(EnvPrefix + "SSH_KEY_FILE"); v != "" {
		cfg.SSH.KeyFile = v
	}
	if v := getEnvOrFile(EnvPrefix+"SSH_PASSWORD", EnvPrefix+"SSH_PASSWORD_FILE"); v != "" {
		cfg.SSH.Password = v
	}

	return errs
}

// validate checks the resolved configuration, returning all problems found.
func (c *Config) validate() []string {
	var errs []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log level: invalid value %q (must be debug, info, warn, or error)", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log format: invalid value %q (must be json or text)", c.LogFormat))
	}

	if c.Email == "" {
		errs = append(errs, "email: required but not set (CFDNS_EMAIL or the config file)")
	}
	if c.APIKey == "" {
		errs = append(errs, "api key: required but not set (CFDNS_API_KEY or the config file)")
	}

	if c.Timeout <= 0 {
		errs = append(errs, "timeout: must be positive")
	}
	if c.MaxPages < 0 {
		errs = append(errs, "max pages: must not be negative")
	}

	if c.SSH.Port < 1 || c.SSH.Port > 65535 {
		errs = append(errs, fmt.Sprintf("ssh port: must be between 1 and 65535, got %d", c.SSH.Port))
	}

	return errs
}
