// Package timeline turns a schedule list into hour buckets for display.
//
// Group is a pure function of its input: it never reads the wall clock, so
// the same items always produce the same timeline.
package timeline

import (
	"fmt"
	"sort"

	"tableflip.dev/chrono/pkg/schedule"
)

// Timeline is the display structure for one list. Undated renders first.
type Timeline struct {
	Undated []schedule.Item `json:"undated" yaml:"undated"`
	Buckets []Bucket        `json:"buckets" yaml:"buckets"`
}

// Bucket holds the timed items whose start falls within Hour.
type Bucket struct {
	Hour    int     `json:"hour" yaml:"hour"`
	Entries []Entry `json:"items" yaml:"items"`
}

// Entry pairs an item with its parsed span so renderers can show the end
// boundary without parsing again.
type Entry struct {
	Item schedule.Item `json:"item" yaml:"item"`
	Span schedule.Span `json:"span" yaml:"span"`
}

// Group partitions items into the undated group and hour buckets. Buckets
// ascend by hour; entries ascend by start time and keep their input order
// on ties. Empty hours are never emitted.
func Group(items []schedule.Item) Timeline {
	tl := Timeline{
		Undated: make([]schedule.Item, 0),
		Buckets: make([]Bucket, 0),
	}

	timed := make([]Entry, 0, len(items))
	for _, it := range items {
		sp, status := it.Span()
		if status != schedule.SpanOK {
			tl.Undated = append(tl.Undated, it)
			continue
		}
		timed = append(timed, Entry{Item: it, Span: sp})
	}

	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].Span.Start.Before(timed[j].Span.Start)
	})

	for _, e := range timed {
		n := len(tl.Buckets)
		if n == 0 || tl.Buckets[n-1].Hour != e.Span.Start.Hour {
			tl.Buckets = append(tl.Buckets, Bucket{Hour: e.Span.Start.Hour})
			n++
		}
		tl.Buckets[n-1].Entries = append(tl.Buckets[n-1].Entries, e)
	}
	return tl
}

// Label renders the bucket hour as "HH:00".
func (b Bucket) Label() string {
	return fmt.Sprintf("%02d:00", b.Hour)
}

// Items returns the bucket's items in display order.
func (b Bucket) Items() []schedule.Item {
	out := make([]schedule.Item, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = e.Item
	}
	return out
}

// Len counts every item in the timeline.
func (t Timeline) Len() int {
	n := len(t.Undated)
	for _, b := range t.Buckets {
		n += len(b.Entries)
	}
	return n
}

// Empty reports whether the timeline has nothing to show.
func (t Timeline) Empty() bool {
	return t.Len() == 0
}
