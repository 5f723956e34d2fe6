package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultDuration is how long a timed item lasts when only a start is given.
	DefaultDuration = "1h"

	// MaxDuration bounds a span; a span wraps midnight at most once.
	MaxDuration = 24 * time.Hour
)

// ErrInvalidDuration is wrapped by every ParseDuration failure.
var ErrInvalidDuration = errors.New("invalid duration")

var (
	// "1:30" reads as an hours:minutes length.
	clockLength = regexp.MustCompile(`^(\d{1,2}):([0-5]\d)$`)
	token       = regexp.MustCompile(`(\d+)\s*([a-z]+)\s*`)
	units       = map[string]time.Duration{}
)

func init() {
	for _, u := range []string{"m", "min", "mins", "minute", "minutes"} {
		units[u] = time.Minute
	}
	for _, u := range []string{"h", "hr", "hrs", "hour", "hours"} {
		units[u] = time.Hour
	}
}

// ParseDuration reads the length of a timed item, e.g. "45m", "1h30m",
// "1 hour 15 min" or "1:15", and returns it with its FormatDuration label.
// An empty input means DefaultDuration.
func ParseDuration(input string) (time.Duration, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		s = DefaultDuration
	}

	total, err := sum(s)
	if err != nil {
		return 0, "", err
	}
	switch {
	case total <= 0:
		return 0, "", fmt.Errorf("%w: must be greater than zero", ErrInvalidDuration)
	case total >= MaxDuration:
		return 0, "", fmt.Errorf("%w: %s must be shorter than a day", ErrInvalidDuration, FormatDuration(total))
	}
	return total, FormatDuration(total), nil
}

func sum(s string) (time.Duration, error) {
	if m := clockLength.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return time.Duration(h)*time.Hour + time.Duration(mins)*time.Minute, nil
	}

	var total time.Duration
	at := 0
	for _, loc := range token.FindAllStringSubmatchIndex(s, -1) {
		if loc[0] != at {
			return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidDuration, s[at:loc[0]])
		}
		n, err := strconv.Atoi(s[loc[2]:loc[3]])
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
		unit, ok := units[s[loc[4]:loc[5]]]
		if !ok {
			return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, s[loc[4]:loc[5]])
		}
		total += time.Duration(n) * unit
		at = loc[1]
	}
	if at != len(s) {
		return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidDuration, s[at:])
	}
	return total, nil
}

// FormatDuration renders whole hours and minutes, e.g. "1h30m", "45m" or
// "2h". Anything under a minute is "0m".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "0m"
	}
	d = d.Truncate(time.Minute)
	h, m := int(d/time.Hour), int((d%time.Hour)/time.Minute)
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
