// Package sshutil provides a minimal SSH/SFTP client for writing exported
// zone files to a remote host.
package sshutil

import (
	"fmt"
	"time"
)

// DefaultPort is the SSH port used when none is configured.
const DefaultPort = 22

// DefaultTimeout is the connection timeout used when none is configured.
const DefaultTimeout = 15 * time.Second

// Config holds SSH connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string // password authentication, used when KeyFile is empty
	KeyFile  string // path to a private key file

	// Timeout bounds the connection attempt. Zero means DefaultTimeout.
	Timeout time.Duration

	// InsecureIgnoreHostKey disables host key verification. Only intended
	// for test environments.
	InsecureIgnoreHostKey bool

	// KnownHostsFile is the known_hosts file used for host key
	// verification when InsecureIgnoreHostKey is false.
	KnownHostsFile string
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.Password == "" && c.KeyFile == "" {
		return fmt.Errorf("either password or key file is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if !c.InsecureIgnoreHostKey && c.KnownHostsFile == "" {
		return fmt.Errorf("known hosts file is required unless host key verification is disabled")
	}
	return nil
}

// GetPort returns the configured port or the default.
func (c *Config) GetPort() int {
	if c.Port > 0 {
		return c.Port
	}
	return DefaultPort
}

// GetTimeout returns the configured timeout or the default.
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// Address returns the host:port dial address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GetPort())
}
