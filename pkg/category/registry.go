// Package category maps category names to display colors. The registry is
// seeded with a fixed set on first run, grows through Add, and never shrinks.
package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/chrono/pkg/logging"
	"tableflip.dev/chrono/pkg/palette"
	"tableflip.dev/chrono/pkg/store"
)

// Key is the persistence key of the registry document.
const Key = "categories"

var (
	// ErrInvalidInput reports an empty name or a missing color.
	ErrInvalidInput = errors.New("category: invalid input")
	// ErrDuplicateCategory reports an Add for a name already registered.
	ErrDuplicateCategory = errors.New("category: already exists")
)

// Registry owns the name to color mapping. Safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	p      store.Persistence
	log    *log.Logger
	colors map[string]palette.Color
}

// NewRegistry loads the registry from p, falling back to the default seed
// when nothing usable is stored. A nil p keeps everything in memory.
func NewRegistry(p store.Persistence, logger *log.Logger) *Registry {
	if p == nil {
		p = store.NewMemory()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	r := &Registry{p: p, log: logger}
	r.colors = r.load()
	return r
}

func (r *Registry) load() map[string]palette.Color {
	data, err := r.p.Read(Key)
	if errors.Is(err, store.ErrNotFound) {
		return Defaults()
	}
	if err != nil {
		r.log.Warn("category: read registry, using defaults", "err", err)
		return Defaults()
	}
	colors := make(map[string]palette.Color)
	if err := json.Unmarshal(data, &colors); err != nil {
		r.log.Warn("category: decode registry, using defaults", "err", err)
		return Defaults()
	}
	return colors
}

// Reload replaces the in-memory mapping with the stored one.
func (r *Registry) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colors = r.load()
}

// Get returns the color registered for name, or palette.Unassigned.
func (r *Registry) Get(name string) palette.Color {
	c, ok := r.Lookup(name)
	if !ok {
		return palette.Unassigned
	}
	return c
}

// Lookup returns the color registered for name and whether it exists.
func (r *Registry) Lookup(name string) (palette.Color, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.colors[strings.TrimSpace(name)]
	return c, ok
}

// Add registers a new category and persists the registry. Persistence
// failures are logged; the category stays registered for the session.
func (r *Registry) Add(name string, color *palette.Color) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is empty", ErrInvalidInput)
	}
	if color == nil {
		return fmt.Errorf("%w: no color for category %q", ErrInvalidInput, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.colors[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	r.colors[name] = *color
	r.persistLocked()
	return nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.colors))
	for name := range r.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colors returns a copy of the whole mapping.
func (r *Registry) Colors() map[string]palette.Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]palette.Color, len(r.colors))
	for k, v := range r.colors {
		out[k] = v
	}
	return out
}

func (r *Registry) persistLocked() {
	data, err := json.Marshal(r.colors)
	if err != nil {
		r.log.Warn("category: encode registry", "err", err)
		return
	}
	if err := r.p.Write(Key, data); err != nil {
		r.log.Warn("category: persist registry", "err", err)
	}
}
