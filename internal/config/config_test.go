package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Counter.Backend != "sqlite" {
		t.Errorf("backend = %q, want sqlite", cfg.Counter.Backend)
	}
	if cfg.Counter.RemotePath != "/simulations/love_simulator/count.json" {
		t.Errorf("remote path = %q", cfg.Counter.RemotePath)
	}
	if got := cfg.ListenAddr(); got != "127.0.0.1:37778" {
		t.Errorf("ListenAddr = %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9000

[counter]
backend = "remote"
remote_url = "https://example-default-rtdb.firebaseio.com"
timeout = "2s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Server.Bind != "127.0.0.1" {
		t.Errorf("bind = %q, want default kept", cfg.Server.Bind)
	}
	if cfg.Counter.Backend != "remote" {
		t.Errorf("backend = %q, want remote", cfg.Counter.Backend)
	}
	if cfg.Counter.Timeout != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", cfg.Counter.Timeout)
	}
	if cfg.Counter.RemotePath != "/simulations/love_simulator/count.json" {
		t.Errorf("remote path = %q, want default kept", cfg.Counter.RemotePath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "[counter]\nbackend = \"sqlite\"\n")
	t.Setenv("LOVESIM_COUNTER_BACKEND", "memory")
	t.Setenv("LOVESIM_SERVER_PORT", "8123")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Counter.Backend != "memory" {
		t.Errorf("backend = %q, want env override memory", cfg.Counter.Backend)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("port = %d, want 8123", cfg.Server.Port)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Counter.Backend != "sqlite" {
		t.Errorf("backend = %q, want default", cfg.Counter.Backend)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"bolt", func(c *Config) { c.Counter.Backend = "bolt" }, false},
		{"unknown backend", func(c *Config) { c.Counter.Backend = "redis" }, true},
		{"remote without url", func(c *Config) { c.Counter.Backend = "remote" }, true},
		{"remote with url", func(c *Config) {
			c.Counter.Backend = "remote"
			c.Counter.RemoteURL = "https://x.firebaseio.com"
		}, false},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
