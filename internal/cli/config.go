package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mgn/pkg/checkpoint"
)

// Config holds the CLI configuration, loaded from a TOML file. Every
// field has a working default, so running without a config file is fine.
type Config struct {
	Checkpoint CheckpointConfig `toml:"checkpoint"`
	Redis      RedisConfig      `toml:"redis"`
	Compute    ComputeConfig    `toml:"compute"`
}

// CheckpointConfig selects the snapshot backend.
type CheckpointConfig struct {
	// Backend is "file", "memory" or "redis". Default "file".
	Backend string `toml:"backend"`
	// Dir is the snapshot directory for the file backend; empty means
	// ~/.config/mgn/checkpoints/.
	Dir string `toml:"dir"`
}

// RedisConfig configures the redis checkpoint backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// TTLHours expires idle snapshots; zero keeps them forever.
	TTLHours int `toml:"ttl_hours"`
}

// ComputeConfig tunes the homology computation.
type ComputeConfig struct {
	// Workers bounds concurrent rank computations; zero means one per
	// CPU.
	Workers int `toml:"workers"`
}

func defaultConfig() *Config {
	return &Config{
		Checkpoint: CheckpointConfig{Backend: "file"},
		Redis:      RedisConfig{Addr: "localhost:6379"},
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mgn", "config.toml")
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file yields the defaults; a malformed file is
// an error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// openStore opens the checkpoint backend named by the config.
func (c *Config) openStore(ctx context.Context) (checkpoint.Store, error) {
	switch c.Checkpoint.Backend {
	case "", "file":
		return checkpoint.NewFileStore(c.Checkpoint.Dir)
	case "memory":
		return checkpoint.NewMemoryStore(), nil
	case "redis":
		return checkpoint.NewRedisStore(ctx, checkpoint.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			TTL:      time.Duration(c.Redis.TTLHours) * time.Hour,
		})
	default:
		return nil, fmt.Errorf("unknown checkpoint backend %q", c.Checkpoint.Backend)
	}
}
