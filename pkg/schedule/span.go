package schedule

import (
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04"

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a whitespace-trimmed "HH:mm" value.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return Clock{}, fmt.Errorf("schedule: invalid time of day %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	parsed, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier in the day than o.
func (c Clock) Before(o Clock) bool {
	return c.Minutes() < o.Minutes()
}

// Add moves the clock by d, wrapping around midnight.
func (c Clock) Add(d time.Duration) Clock {
	const day = 24 * 60
	m := (c.Minutes() + int(d/time.Minute)) % day
	if m < 0 {
		m += day
	}
	return Clock{Hour: m / 60, Minute: m % 60}
}

// FormatRange renders the "HH:mm - HH:mm" form stored on ranged items.
func FormatRange(start, end Clock) string {
	return start.String() + " - " + end.String()
}

// SpanStatus tells apart the ways an item can end up undated.
type SpanStatus int

const (
	// SpanAbsent means the item carries no time at all.
	SpanAbsent SpanStatus = iota
	// SpanInvalid means a time is present but its start does not parse.
	SpanInvalid
	// SpanOK means the start parsed.
	SpanOK
)

func (s SpanStatus) String() string {
	switch s {
	case SpanAbsent:
		return "absent"
	case SpanInvalid:
		return "invalid"
	case SpanOK:
		return "ok"
	default:
		return fmt.Sprintf("SpanStatus(%d)", int(s))
	}
}

// Span is the parsed form of an item's time. Only Start decides where the
// item is placed on a timeline; End is kept verbatim for display.
type Span struct {
	Start  Clock  `json:"start" yaml:"start"`
	End    string `json:"end,omitempty" yaml:"end,omitempty"`
	HasEnd bool   `json:"-" yaml:"-"`
}

// ParseSpan splits raw at the first hyphen and parses the start.
func ParseSpan(raw string) (Span, bool) {
	start, end, ranged := strings.Cut(raw, "-")
	c, err := ParseClock(start)
	if err != nil {
		return Span{}, false
	}
	sp := Span{Start: c}
	if ranged {
		sp.End = strings.TrimSpace(end)
		sp.HasEnd = true
	}
	return sp, true
}

// Span parses the item's time.
func (i Item) Span() (Span, SpanStatus) {
	if i.Time == nil {
		return Span{}, SpanAbsent
	}
	sp, ok := ParseSpan(*i.Time)
	if !ok {
		return Span{}, SpanInvalid
	}
	return sp, SpanOK
}

// EndClock parses the end boundary, if there is one.
func (s Span) EndClock() (Clock, bool) {
	if !s.HasEnd {
		return Clock{}, false
	}
	c, err := ParseClock(s.End)
	if err != nil {
		return Clock{}, false
	}
	return c, true
}

// Duration is the length of a ranged span. Ranges that end before they
// start are taken to cross midnight.
func (s Span) Duration() (time.Duration, bool) {
	end, ok := s.EndClock()
	if !ok {
		return 0, false
	}
	m := end.Minutes() - s.Start.Minutes()
	if m < 0 {
		m += 24 * 60
	}
	return time.Duration(m) * time.Minute, true
}
