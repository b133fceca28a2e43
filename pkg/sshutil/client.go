package sshutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path"
	"sync"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Sentinel errors for SSH operations.
var (
	// ErrNotConnected is returned when an operation is attempted on a
	// disconnected client.
	ErrNotConnected = errors.New("ssh client is not connected")

	// ErrAlreadyConnected is returned when Connect is called twice.
	ErrAlreadyConnected = errors.New("ssh client is already connected")
)

// Client manages one SSH connection and an SFTP session on top of it.
type Client struct {
	config *Config
	logger *slog.Logger

	mu   sync.Mutex
	conn *ssh.Client
	sftp *sftp.Client
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithLogger sets a custom logger for the SSH client.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new SSH client with the given configuration.
// The client is not connected until Connect is called.
func NewClient(config *Config, opts ...ClientOption) (*Client, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{
		config: config,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Connect establishes the SSH connection and opens the SFTP session.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return ErrAlreadyConnected
	}

	sshConfig, err := c.buildSSHConfig()
	if err != nil {
		return fmt.Errorf("building SSH config: %w", err)
	}

	c.logger.Debug("connecting to SSH server",
		slog.String("host", c.config.Host),
		slog.Int("port", c.config.GetPort()),
		slog.String("user", c.config.User),
	)

	dialer := &net.Dialer{Timeout: c.config.GetTimeout()}
	netConn, err := dialer.DialContext(ctx, "tcp", c.config.Address())
	if err != nil {
		return fmt.Errorf("dialing %s: %w", c.config.Address(), err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(netConn, c.config.Address(), sshConfig)
	if err != nil {
		_ = netConn.Close()
		return fmt.Errorf("SSH handshake failed: %w", err)
	}
	c.conn = ssh.NewClient(sshConn, chans, reqs)

	sftpClient, err := sftp.NewClient(c.conn)
	if err != nil {
		_ = c.conn.Close()
		c.conn = nil
		return fmt.Errorf("opening SFTP session: %w", err)
	}
	c.sftp = sftpClient

	c.logger.Info("SSH connection established",
		slog.String("host", c.config.Host),
		slog.String("user", c.config.User),
	)

	return nil
}

// Close tears down the SFTP session and the SSH connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	if c.sftp != nil {
		_ = c.sftp.Close()
		c.sftp = nil
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}

// WriteFile writes data to remotePath over SFTP, creating parent
// directories as needed.
func (c *Client) WriteFile(remotePath string, data []byte, perm os.FileMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sftp == nil {
		return ErrNotConnected
	}

	if dir := path.Dir(remotePath); dir != "." && dir != "/" {
		if err := c.sftp.MkdirAll(dir); err != nil {
			return fmt.Errorf("creating remote directory %s: %w", dir, err)
		}
	}

	f, err := c.sftp.Create(remotePath)
	if err != nil {
		return fmt.Errorf("creating remote file %s: %w", remotePath, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing remote file %s: %w", remotePath, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing remote file %s: %w", remotePath, err)
	}

	if err := c.sftp.Chmod(remotePath, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", remotePath, err)
	}

	c.logger.Debug("wrote remote file",
		slog.String("path", remotePath),
		slog.Int("bytes", len(data)),
	)

	return nil
}

// buildSSHConfig assembles the ssh.ClientConfig from the Config.
func (c *Client) buildSSHConfig() (*ssh.ClientConfig, error) {
	var auth []ssh.AuthMethod

	if c.config.KeyFile != "" {
		keyData, err := os.ReadFile(c.config.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			return nil, fmt.Errorf("parsing private key: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}

	if c.config.Password != "" {
		auth = append(auth, ssh.Password(c.config.Password))
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey() //nolint:gosec // opt-in via config
	if !c.config.InsecureIgnoreHostKey {
		cb, err := knownhosts.New(c.config.KnownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("loading known hosts: %w", err)
		}
		hostKeyCallback = cb
	}

	return &ssh.ClientConfig{
		User:            c.config.User,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         c.config.GetTimeout(),
	}, nil
}
