package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tableflip.dev/chrono/pkg/logging"
	"tableflip.dev/chrono/pkg/store"
)

// ErrInvalidInput reports a failed field validation on Create.
var ErrInvalidInput = errors.New("schedule: invalid input")

// List names one of the two sequences. The value doubles as its
// persistence key.
type List string

const (
	ListPending List = "pending"
	ListDone    List = "done"
)

// ParseList accepts "pending" (alias "todo") or "done".
func ParseList(s string) (List, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pending", "todo":
		return ListPending, nil
	case "done", "completed":
		return ListDone, nil
	default:
		return "", fmt.Errorf("schedule: unknown list %q", s)
	}
}

// Store owns the pending and done lists. Every mutation is written through
// to persistence before it returns. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	p       store.Persistence
	log     *log.Logger
	newID   func() string
	pending []Item
	done    []Item
}

// Option customises a Store.
type Option func(*Store)

// WithIDs replaces the uuid generator.
func WithIDs(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewStore loads both lists from p. A nil p keeps everything in memory.
func NewStore(p store.Persistence, logger *log.Logger, opts ...Option) *Store {
	if p == nil {
		p = store.NewMemory()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Store{p: p, log: logger, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	s.pending = s.load(ListPending)
	s.done = s.load(ListDone)
	return s
}

// Reload replaces both lists with their stored versions.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = s.load(ListPending)
	s.done = s.load(ListDone)
}

func (s *Store) load(l List) []Item {
	data, err := s.p.Read(string(l))
	if errors.Is(err, store.ErrNotFound) {
		return []Item{}
	}
	if err != nil {
		s.log.Warn("schedule: read list", "list", l, "err", err)
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("schedule: decode list", "list", l, "err", err)
		return []Item{}
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.normalized())
	}
	return out
}

// Create builds a new item with a fresh id and inserts it at the head of
// the pending list.
func (s *Store) Create(f Fields) (Item, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return Item{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	kind := strings.TrimSpace(f.Type)
	if kind == "" {
		kind = KindSchedule
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:          s.uniqueIDLocked(),
		Type:        kind,
		Title:       title,
		Tag:         strings.TrimSpace(f.Tag),
		Time:        f.Time,
		SubTag:      f.SubTag,
		SubTagColor: f.SubTagColor,
		OtherTags:   f.OtherTags,
		Note:        f.Note,
	}.normalized()

	s.pending = append([]Item{item}, s.pending...)
	s.persistLocked(ListPending, s.pending)
	return item.clone(), nil
}

// uniqueIDLocked draws ids until one is unused in both lists.
func (s *Store) uniqueIDLocked() string {
	for {
		id := s.newID()
		if id == "" {
			continue
		}
		if _, _, found := s.findLocked(id); !found {
			return id
		}
		s.log.Debug("schedule: id collision, drawing again", "id", id)
	}
}

// MarkDone moves the pending item with id to the tail of the done list.
// An unknown id is a no-op and reports false.
func (s *Store) MarkDone(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.pending {
		if s.pending[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.Debug("schedule: mark done for unknown id", "id", id)
		return Item{}, false
	}

	item := s.pending[idx]
	s.pending = append(s.pending[:idx:idx], s.pending[idx+1:]...)
	s.done = append(s.done, item)

	s.persistLocked(ListPending, s.pending)
	s.persistLocked(ListDone, s.done)
	return item.clone(), true
}

// Pending returns a snapshot of the pending list.
func (s *Store) Pending() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.pending)
}

// Done returns a snapshot of the done list.
func (s *Store) Done() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.done)
}

// Items returns a snapshot of the named list.
func (s *Store) Items(l List) []Item {
	if l == ListDone {
		return s.Done()
	}
	return s.Pending()
}

// Find looks id up in both lists.
func (s *Store) Find(id string) (Item, List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, l, ok := s.findLocked(id)
	if !ok {
		return Item{}, "", false
	}
	return item.clone(), l, true
}

func (s *Store) findLocked(id string) (Item, List, bool) {
	for _, it := range s.pending {
		if it.ID == id {
			return it, ListPending, true
		}
	}
	for _, it := range s.done {
		if it.ID == id {
			return it, ListDone, true
		}
	}
	return Item{}, "", false
}

// persistLocked writes the full list. Failures are logged and swallowed;
// the in-memory list stays authoritative and the next mutation rewrites it.
func (s *Store) persistLocked(l List, items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		s.log.Warn("schedule: encode list", "list", l, "err", err)
		return
	}
	if err := s.p.Write(string(l), data); err != nil {
		s.log.Warn("schedule: persist list", "list", l, "err", err)
	}
}
