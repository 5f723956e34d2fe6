// Package schedule defines schedule items and the store that owns the
// pending and done lists.
package schedule

import (
	"strings"

	"tableflip.dev/chrono/pkg/palette"
)

// Kinds offered when creating an item. Type is free-form, these are only
// the defaults the CLI knows about.
const (
	KindSchedule = "schedule"
	KindTodo     = "todo"
)

// Item is a single schedule entry or todo. Items are values: the store moves
// copies between lists and never edits one in place.
type Item struct {
	ID          string         `json:"id" yaml:"id"`
	Type        string         `json:"type" yaml:"type"`
	Title       string         `json:"title" yaml:"title"`
	Tag         string         `json:"tag" yaml:"tag"`
	Time        *string        `json:"time" yaml:"time,omitempty"`
	SubTag      *string        `json:"subTag" yaml:"subTag,omitempty"`
	SubTagColor *palette.Color `json:"subTagColor" yaml:"subTagColor,omitempty"`
	OtherTags   []string       `json:"otherTags" yaml:"otherTags"`
	Note        *string        `json:"note" yaml:"note,omitempty"`
}

// Fields carries everything needed to create an Item except its id.
type Fields struct {
	Type        string
	Title       string
	Tag         string
	Time        *string
	SubTag      *string
	SubTagColor *palette.Color
	OtherTags   []string
	Note        *string
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Kind returns the item type, falling back to KindSchedule.
func (i Item) Kind() string {
	if strings.TrimSpace(i.Type) == "" {
		return KindSchedule
	}
	return i.Type
}

// Undated reports whether the item has no usable time of day.
func (i Item) Undated() bool {
	_, status := i.Span()
	return status != SpanOK
}

func (i Item) clone() Item {
	out := i
	out.Time = clonePtr(i.Time)
	out.SubTag = clonePtr(i.SubTag)
	out.Note = clonePtr(i.Note)
	if i.SubTagColor != nil {
		c := *i.SubTagColor
		out.SubTagColor = &c
	}
	out.OtherTags = append(make([]string, 0, len(i.OtherTags)), i.OtherTags...)
	return out
}

// normalized clears blank optional text and guarantees a non-nil tag slice
// so lists always serialize otherTags as an array.
func (i Item) normalized() Item {
	out := i.clone()
	out.SubTag = blankToNil(out.SubTag)
	out.Note = blankToNil(out.Note)
	return out
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i := range items {
		out[i] = items[i].clone()
	}
	return out
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
