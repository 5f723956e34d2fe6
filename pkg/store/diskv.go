package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"
)

const tempDir = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *log.Logger
}

func newDiskv(basePath string, logger *log.Logger) (*persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	tmp := filepath.Join(basePath, tempDir)
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		TempDir:           tmp,
		// No read cache: a second chrono process (watch) writes the same files.
		CacheSizeMax: 0,
	}), basePath: basePath, log: logger}, nil
}

func (p *persistence) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	if !p.d.Has(key) {
		return nil, ErrNotFound
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) Write(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := p.d.WriteStream(key, bytes.NewReader(data), true); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	return watchDir(ctx, p.basePath, p.keyForPath, p.log)
}

func (p *persistence) Close() error {
	return nil
}

// keyForPath maps a changed file back to its document key.
func (p *persistence) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	if filepath.Dir(rel) != "." {
		return ""
	}
	if validKey(rel) != nil {
		return ""
	}
	return rel
}

// Documents live flat under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

// Files in subdirectories (the temp dir) are not documents.
func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) > 0 {
		return ""
	}
	return pathKey.FileName
}
