package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all lovesim configuration.
type Config struct {
	Server   ServerConfig   `toml:"server" mapstructure:"server"`
	Database DatabaseConfig `toml:"database" mapstructure:"database"`
	Counter  CounterConfig  `toml:"counter" mapstructure:"counter"`
}

type ServerConfig struct {
	Bind string `toml:"bind" mapstructure:"bind"`
	Port int    `toml:"port" mapstructure:"port"`
}

type DatabaseConfig struct {
	Path string `toml:"path" mapstructure:"path"`
}

type CounterConfig struct {
	Backend    string        `toml:"backend" mapstructure:"backend"`         // "sqlite", "bolt", "remote", "memory"
	Name       string        `toml:"name" mapstructure:"name"`               // counter key for sqlite/bolt
	BoltPath   string        `toml:"bolt_path" mapstructure:"bolt_path"`     // defaults next to the sqlite db
	RemoteURL  string        `toml:"remote_url" mapstructure:"remote_url"`   // e.g. https://<project>-default-rtdb.firebaseio.com
	RemotePath string        `toml:"remote_path" mapstructure:"remote_path"` // must end in .json
	AuthToken  string        `toml:"auth_token" mapstructure:"auth_token"`
	Timeout    time.Duration `toml:"timeout" mapstructure:"timeout"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 37778,
		},
		Database: DatabaseConfig{
			Path: "", // resolved at runtime via store.DefaultDBPath()
		},
		Counter: CounterConfig{
			Backend:    "sqlite",
			Name:       "simulations",
			RemotePath: "/simulations/love_simulator/count.json",
			Timeout:    5 * time.Second,
		},
	}
}

// DefaultPath returns ~/.lovesim/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".lovesim", "config.toml"), nil
}

// Load reads the TOML file at path over the defaults and applies LOVESIM_*
// environment overrides (LOVESIM_COUNTER_BACKEND sets counter.backend).
// An empty path tries DefaultPath and tolerates its absence.
func Load(path string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("server.bind", def.Server.Bind)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("counter.backend", def.Counter.Backend)
	v.SetDefault("counter.name", def.Counter.Name)
	v.SetDefault("counter.bolt_path", def.Counter.BoltPath)
	v.SetDefault("counter.remote_url", def.Counter.RemoteURL)
	v.SetDefault("counter.remote_path", def.Counter.RemotePath)
	v.SetDefault("counter.auth_token", def.Counter.AuthToken)
	v.SetDefault("counter.timeout", def.Counter.Timeout)

	v.SetEnvPrefix("LOVESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Counter.Backend {
	case "sqlite", "bolt", "memory":
	case "remote":
		if c.Counter.RemoteURL == "" {
			return errors.New("config: counter.remote_url is required for the remote backend")
		}
	default:
		return fmt.Errorf("config: unknown counter.backend %q", c.Counter.Backend)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	return nil
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
