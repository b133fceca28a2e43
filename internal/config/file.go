package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileConfig is the configuration file structure. Files may be written in
// YAML (.yaml/.yml) or TOML (.toml); the extension selects the parser.
type FileConfig struct {
	Logging *FileLoggingConfig `yaml:"logging,omitempty" toml:"logging"`
	API     *FileAPIConfig     `yaml:"api,omitempty" toml:"api"`
	SSH     *FileSSHConfig     `yaml:"ssh,omitempty" toml:"ssh"`

	// Resolver is the host:port of the resolver used for propagation checks.
	Resolver string `yaml:"resolver,omitempty" toml:"resolver"`
}

// FileLoggingConfig holds logging settings.
type FileLoggingConfig struct {
	Level  string `yaml:"level,omitempty" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format,omitempty" toml:"format"` // json, text
}

// FileAPIConfig holds API client settings.
type FileAPIConfig struct {
	Endpoint string `yaml:"endpoint,omitempty" toml:"endpoint"`
	Email    string `yaml:"email,omitempty" toml:"email"`
	Key      string `yaml:"key,omitempty" toml:"key"`
	Timeout  string `yaml:"timeout,omitempty" toml:"timeout"` // Go duration format
	MaxPages int    `yaml:"max_pages,omitempty" toml:"max_pages"`
}

// FileSSHConfig holds the remote zone export destination.
type FileSSHConfig struct {
	Host     string `yaml:"host,omitempty" toml:"host"`
	Port     int    `yaml:"port,omitempty" toml:"port"`
	User     string `yaml:"user,omitempty" toml:"user"`
	KeyFile  string `yaml:"key_file,omitempty" toml:"key_file"`
	Password string `yaml:"password,omitempty" toml:"password"`
}

// envVarPattern matches ${VAR} or ${VAR:-default} syntax.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// InterpolateEnvVars replaces ${VAR} patterns with environment variable
// values. Supports ${VAR:-default} syntax for default values.
func InterpolateEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		varName := groups[1]
		defaultValue := ""
		if len(groups) >= 3 {
			defaultValue = groups[2]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}

// interpolateEnvVars interpolates environment variables in all string
// fields of the file config.
func (c *FileConfig) interpolateEnvVars() {
	if c.Logging != nil {
		c.Logging.Level = InterpolateEnvVars(c.Logging.Level)
		c.Logging.Format = InterpolateEnvVars(c.Logging.Format)
	}
	if c.API != nil {
		c.API.Endpoint = InterpolateEnvVars(c.API.Endpoint)
		c.API.Email = InterpolateEnvVars(c.API.Email)
		c.API.Key = InterpolateEnvVars(c.API.Key)
		c.API.Timeout = InterpolateEnvVars(c.API.Timeout)
	}
	if c.SSH != nil {
		c.SSH.Host = InterpolateEnvVars(c.SSH.Host)
		c.SSH.User = InterpolateEnvVars(c.SSH.User)
		c.SSH.KeyFile = InterpolateEnvVars(c.SSH.KeyFile)
		c.SSH.Password = InterpolateEnvVars(c.SSH.Password)
	}
	c.Resolver = InterpolateEnvVars(c.Resolver)
}

// LoadFile reads and parses a configuration file. Environment variables in
// ${VAR} format are interpolated after parsing.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (use .yaml, .yml, or .toml)", filepath.Ext(path))
	}

	cfg.interpolateEnvVars()

	return &cfg, nil
}

// apply overlays the file values onto cfg. Unset file values leave cfg
// untouched; environment variables are applied afterwards by the caller.
func (c *FileConfig) apply(cfg *Config) {
	if c.Logging != nil {
		if c.Logging.Level != "" {
			cfg.LogLevel = strings.ToLower(c.Logging.Level)
		}
		if c.Logging.Format != "" {
			cfg.LogFormat = strings.ToLower(c.Logging.Format)
		}
	}

	if c.API != nil {
		if c.API.Endpoint != "" {
			cfg.Endpoint = c.API.Endpoint
		}
		if c.API.Email != "" {
			cfg.Email = c.API.Email
		}
		if c.API.Key != "" {
			cfg.APIKey = c.API.Key
		}
		if c.API.Timeout != "" {
			if d, err := time.ParseDuration(c.API.Timeout); err == nil && d > 0 {
				cfg.Timeout = d
			}
		}
		if c.API.MaxPages > 0 {
			cfg.MaxPages = c.API.MaxPages
		}
	}

	if c.SSH != nil {
		if c.SSH.Host != "" {
			cfg.SSH.Host = c.SSH.Host
		}
		if c.SSH.Port > 0 {
			cfg.SSH.Port = c.SSH.Port
		}
		if c.SSH.User != "" {
			cfg.SSH.User = c.SSH.User
		}
		if c.SSH.KeyFile != "" {
			cfg.SSH.KeyFile = c.SSH.KeyFile
		}
		if c.SSH.Password != "" {
			cfg.SSH.Password = c.SSH.Password
		}
	}

	if c.Resolver != "" {
		cfg.Resolver = c.Resolver
	}
}

// GetConfigFilePath returns the config file path from the environment.
// Returns empty string if no config file is specified.
func GetConfigFilePath() string {
	return os.Getenv(EnvPrefix + "CONFIG")
}
