package counter

import (
	"fmt"
	"path/filepath"

	"github.com/lazypower/lovesim/internal/config"
	"github.com/lazypower/lovesim/internal/store"
)

// Open builds the Store selected by cfg.Counter.Backend. The sqlite and bolt
// backends live next to cfg.Database.Path, or under ~/.lovesim when unset.
func Open(cfg config.Config) (Store, error) {
	c := cfg.Counter
	switch c.Backend {
	case BackendSQLite, "":
		path, err := dbPath(cfg)
		if err != nil {
			return nil, err
		}
		return OpenSQLite(path, c.Name)
	case BackendBolt:
		path := c.BoltPath
		if path == "" {
			db, err := dbPath(cfg)
			if err != nil {
				return nil, err
			}
			path = filepath.Join(filepath.Dir(db), "counter.bolt")
		}
		return OpenBolt(path, c.Name)
	case BackendRemote:
		return NewRemote(c.RemoteURL, c.RemotePath, c.AuthToken, c.Timeout)
	case BackendMemory:
		return NewMemory(0), nil
	default:
		return nil, fmt.Errorf("unknown counter backend %q", c.Backend)
	}
}

func dbPath(cfg config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return cfg.Database.Path, nil
	}
	path, err := store.DefaultDBPath()
	if err != nil {
		return "", fmt.Errorf("resolve db path: %w", err)
	}
	return path, nil
}
