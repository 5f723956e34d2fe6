// Package store persists chrono documents (the category registry and the
// schedule lists) as JSON blobs behind a small key/value contract.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Backends selectable through the "backend" config key.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrNotFound is returned by Read when no document is stored under a key.
var ErrNotFound = errors.New("store: key not found")

// Persistence defines the storage contract shared by every backend.
type Persistence interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Load opens the backend named by cfg. A nil cfg is read from the
// environment and config file.
func Load(cfg Config, logger *log.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Backend())) {
	case "", BackendDiskv:
		return newDiskv(cfg.BasePath(), logger)
	case BackendSQLite:
		return newSQLite(cfg.BasePath(), logger)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	if strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}
