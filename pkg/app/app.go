package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"tableflip.dev/chrono/pkg/category"
	"tableflip.dev/chrono/pkg/logging"
	"tableflip.dev/chrono/pkg/palette"
	"tableflip.dev/chrono/pkg/schedule"
	"tableflip.dev/chrono/pkg/store"
	"tableflip.dev/chrono/pkg/timeline"
	"tableflip.dev/chrono/pkg/timeutil"
)

// Service provides high-level operations over categories and schedule items.
// It wraps persistence and the two stores so every command shares one logic.
type Service struct {
	Persistence store.Persistence
	Categories  *category.Registry
	Schedule    *schedule.Store
}

// Draft is the raw, user-provided description of a new item.
type Draft struct {
	Type        string
	Title       string
	Tag         string
	At          string
	Until       string
	For         string
	With        []string
	Note        string
	SubTag      string
	SubTagColor string
}

// Open loads the configured backend and builds a Service on top of it. The
// caller owns the returned Service and must Close it.
func Open(cfg store.Config, logger *log.Logger) (*Service, error) {
	p, err := store.Load(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app: open store: %w", err)
	}
	return New(p, logger), nil
}

// New builds a Service on p. A nil p keeps everything in memory.
func New(p store.Persistence, logger *log.Logger, opts ...schedule.Option) *Service {
	if p == nil {
		p = store.NewMemory()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		Persistence: p,
		Categories:  category.NewRegistry(p, logger),
		Schedule:    schedule.NewStore(p, logger, opts...),
	}
}

// Close releases the underlying persistence.
func (s *Service) Close() error {
	if s.Persistence == nil {
		return nil
	}
	return s.Persistence.Close()
}

// Add validates d and creates the item at the head of the pending list.
func (s *Service) Add(d Draft) (schedule.Item, error) {
	tm, err := composeTime(d.At, d.Until, d.For)
	if err != nil {
		return schedule.Item{}, err
	}

	tag := strings.TrimSpace(d.Tag)
	if tag == "" {
		tag = category.DefaultCategory
	}

	f := schedule.Fields{
		Type:      d.Type,
		Title:     d.Title,
		Tag:       tag,
		Time:      tm,
		OtherTags: trimAll(d.With),
		Note:      schedule.StringPtr(d.Note),
		SubTag:    schedule.StringPtr(d.SubTag),
	}
	if strings.TrimSpace(d.SubTagColor) != "" {
		c, err := palette.Lookup(d.SubTagColor)
		if err != nil {
			return schedule.Item{}, fmt.Errorf("%w: sub tag color: %v", schedule.ErrInvalidInput, err)
		}
		f.SubTagColor = &c
	}
	return s.Schedule.Create(f)
}

// Complete moves the pending item id to the done list. The bool is false
// when no pending item has that id.
func (s *Service) Complete(id string) (schedule.Item, bool) {
	return s.Schedule.MarkDone(strings.TrimSpace(id))
}

// AddCategory registers name with a color given as a hex value, a palette
// index, or a palette name.
func (s *Service) AddCategory(name, color string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(color) == "" {
		return s.Categories.Add(name, nil)
	}
	c, err := palette.Lookup(color)
	if err != nil {
		return fmt.Errorf("%w: %v", category.ErrInvalidInput, err)
	}
	return s.Categories.Add(name, &c)
}

// Timeline groups the items of list l for display.
func (s *Service) Timeline(l schedule.List) timeline.Timeline {
	return timeline.Group(s.Schedule.Items(l))
}

// Reload re-reads categories and both lists from persistence.
func (s *Service) Reload() {
	s.Categories.Reload()
	s.Schedule.Reload()
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// composeTime builds the stored time string. No start means all-day. A start
// without an end lasts timeutil.DefaultDuration.
func composeTime(at, until, dur string) (*string, error) {
	at, until, dur = strings.TrimSpace(at), strings.TrimSpace(until), strings.TrimSpace(dur)
	if at == "" {
		if until != "" || dur != "" {
			return nil, fmt.Errorf("%w: an end needs a start time", schedule.ErrInvalidInput)
		}
		return nil, nil
	}
	if until != "" && dur != "" {
		return nil, fmt.Errorf("%w: give either an end time or a duration", schedule.ErrInvalidInput)
	}

	start, err := schedule.ParseClock(at)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schedule.ErrInvalidInput, err)
	}
	if until != "" {
		end, err := schedule.ParseClock(until)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", schedule.ErrInvalidInput, err)
		}
		return schedule.StringPtr(schedule.FormatRange(start, end)), nil
	}
	d, _, err := timeutil.ParseDuration(dur)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schedule.ErrInvalidInput, err)
	}
	return schedule.StringPtr(schedule.FormatRange(start, start.Add(d))), nil
}

func trimAll(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
