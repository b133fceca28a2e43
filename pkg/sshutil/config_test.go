package sshutil

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			"valid with password",
			Config{Host: "backup.example.net", User: "zonesync", Password: "secret", InsecureIgnoreHostKey: true},
			false,
		},
		{
			"valid with key file",
			Config{Host: "backup.example.net", User: "zonesync", KeyFile: "/keys/id_ed25519", KnownHostsFile: "/known_hosts"},
			false,
		},
		{
			"missing host",
			Config{User: "zonesync", Password: "secret", InsecureIgnoreHostKey: true},
			true,
		},
		{
			"missing user",
			Config{Host: "backup.example.net", Password: "secret", InsecureIgnoreHostKey: true},
			true,
		},
		{
			"no auth method",
			Config{Host: "backup.example.net", User: "zonesync", InsecureIgnoreHostKey: true},
			true,
		},
		{
			"invalid port",
			Config{Host: "backup.example.net", User: "zonesync", Password: "secret", Port: 70000, InsecureIgnoreHostKey: true},
			true,
		},
		{
			"no host key verification source",
			Config{Host: "backup.example.net", User: "zonesync", Password: "secret"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{Host: "backup.example.net"}

	if got := cfg.GetPort(); got != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, got)
	}
	if got := cfg.GetTimeout(); got != DefaultTimeout {
		t.Errorf("expected default timeout %s, got %s", DefaultTimeout, got)
	}
	if got := cfg.Address(); got != "backup.example.net:22" {
		t.Errorf("expected address with default port, got %s", got)
	}

	cfg.Port = 2222
	cfg.Timeout = 5 * time.Second
	if got := cfg.Address(); got != "backup.example.net:2222" {
		t.Errorf("expected address with explicit port, got %s", got)
	}
	if got := cfg.GetTimeout(); got != 5*time.Second {
		t.Errorf("expected explicit timeout, got %s", got)
	}
}
