package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/chrono/pkg/category"
	"tableflip.dev/chrono/pkg/palette"
	"tableflip.dev/chrono/pkg/schedule"
	"tableflip.dev/chrono/pkg/store"
)

func sequentialIDs() schedule.Option {
	n := 0
	return schedule.WithIDs(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func newService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := New(mem, nil, sequentialIDs())
	t.Cleanup(func() { _ = svc.Close() })
	return svc, mem
}

func TestAddComposesTime(t *testing.T) {
	svc, _ := newService(t)

	cases := []struct {
		name  string
		draft Draft
		want  *string
	}{
		{"all day", Draft{Title: "Report"}, nil},
		{"default hour", Draft{Title: "Gym", At: "18:00"}, schedule.StringPtr("18:00 - 19:00")},
		{"until", Draft{Title: "Climb", At: "8:00", Until: "08:40"}, schedule.StringPtr("08:00 - 08:40")},
		{"for", Draft{Title: "Work", At: "09:00", For: "3h"}, schedule.StringPtr("09:00 - 12:00")},
		{"wraps midnight", Draft{Title: "Late", At: "23:30", For: "45m"}, schedule.StringPtr("23:30 - 00:15")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := svc.Add(tc.draft)
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			switch {
			case tc.want == nil && it.Time != nil:
				t.Fatalf("expected all-day item, got %q", *it.Time)
			case tc.want != nil && (it.Time == nil || *it.Time != *tc.want):
				t.Fatalf("expected time %q, got %v", *tc.want, it.Time)
			}
		})
	}
}

func TestAddDefaults(t *testing.T) {
	svc, _ := newService(t)

	it, err := svc.Add(Draft{Title: "  Stretch ", With: []string{" cardio", "", "outdoor"}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.Tag != category.DefaultCategory {
		t.Fatalf("expected default tag %q, got %q", category.DefaultCategory, it.Tag)
	}
	if it.Type != schedule.KindSchedule {
		t.Fatalf("expected default type, got %q", it.Type)
	}
	if it.Note != nil || it.SubTag != nil {
		t.Fatalf("expected empty note and sub tag to be nil")
	}
	if len(it.OtherTags) != 2 || it.OtherTags[0] != "cardio" || it.OtherTags[1] != "outdoor" {
		t.Fatalf("unexpected other tags %v", it.OtherTags)
	}
}

func TestAddSubTagColor(t *testing.T) {
	svc, _ := newService(t)

	it, err := svc.Add(Draft{Title: "Meeting", SubTag: "project", SubTagColor: "#ccE6ff"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.SubTagColor == nil || it.SubTagColor.Hex() != "#cce6ff" {
		t.Fatalf("unexpected sub tag color %v", it.SubTagColor)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	svc, _ := newService(t)

	for name, d := range map[string]Draft{
		"blank title":    {Title: "   "},
		"end only":       {Title: "x", Until: "10:00"},
		"both ends":      {Title: "x", At: "09:00", Until: "10:00", For: "1h"},
		"bad start":      {Title: "x", At: "9am"},
		"bad end":        {Title: "x", At: "09:00", Until: "later"},
		"bad duration":   {Title: "x", At: "09:00", For: "2d"},
		"bad tint":       {Title: "x", SubTagColor: "not-a-color"},
		"duration alone": {Title: "x", For: "1h"},
	} {
		if _, err := svc.Add(d); !errors.Is(err, schedule.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	if n := len(svc.Schedule.Pending()); n != 0 {
		t.Fatalf("expected nothing stored, got %d items", n)
	}
}

func TestCompleteMovesItem(t *testing.T) {
	svc, _ := newService(t)

	it, err := svc.Add(Draft{Title: "Hill climb", At: "08:00", Until: "08:40"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	done, ok := svc.Complete(" " + it.ID + " ")
	if !ok {
		t.Fatalf("expected %s to be completed", it.ID)
	}
	if done.ID != it.ID {
		t.Fatalf("completed the wrong item: %s", done.ID)
	}
	if _, ok := svc.Complete(it.ID); ok {
		t.Fatalf("completing twice must be a no-op")
	}
	if len(svc.Schedule.Pending()) != 0 || len(svc.Schedule.Done()) != 1 {
		t.Fatalf("unexpected list sizes")
	}
}

func TestAddCategory(t *testing.T) {
	svc, _ := newService(t)

	if err := svc.AddCategory("reading", "3"); err != nil {
		t.Fatalf("add category: %v", err)
	}
	if got := svc.Categories.Get("reading"); got != palette.Presets[3].Color {
		t.Fatalf("expected preset 3, got %v", got)
	}
	if err := svc.AddCategory("reading", "#ff0000"); !errors.Is(err, category.ErrDuplicateCategory) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := svc.AddCategory("", "#ff0000"); !errors.Is(err, category.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty name, got %v", err)
	}
	if err := svc.AddCategory("music", ""); !errors.Is(err, category.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing color, got %v", err)
	}
	if err := svc.AddCategory("music", "zzz"); !errors.Is(err, category.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad color, got %v", err)
	}
}

func TestReloadSeesOtherWriters(t *testing.T) {
	mem := store.NewMemory()
	first := New(mem, nil)
	second := New(mem, nil)

	if _, err := first.Add(Draft{Title: "Dinner", At: "19:30"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := first.AddCategory("music", "#112233"); err != nil {
		t.Fatalf("add category: %v", err)
	}
	if len(second.Schedule.Pending()) != 0 {
		t.Fatalf("second service should not see the item before reload")
	}
	second.Reload()
	if len(second.Schedule.Pending()) != 1 {
		t.Fatalf("expected reload to pick up the new item")
	}
	if _, ok := second.Categories.Lookup("music"); !ok {
		t.Fatalf("expected reload to pick up the new category")
	}
}

func TestSampleDay(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.LoadSample(); err != nil {
		t.Fatalf("load sample: %v", err)
	}

	pending := svc.Schedule.Pending()
	if len(pending) != len(SamplePending()) {
		t.Fatalf("expected %d pending, got %d", len(SamplePending()), len(pending))
	}
	if pending[0].Title != "Finish report" || pending[len(pending)-1].Title != "Night memo" {
		t.Fatalf("sample order not preserved: first %q last %q", pending[0].Title, pending[len(pending)-1].Title)
	}
	done := svc.Schedule.Done()
	if len(done) != len(SampleDone()) || done[2].Title != "Hill climb" {
		t.Fatalf("unexpected done list %v", done)
	}

	tl := svc.Timeline(schedule.ListPending)
	if len(tl.Undated) != 2 {
		t.Fatalf("expected 2 undated items, got %d", len(tl.Undated))
	}
	if tl.Buckets[0].Hour != 3 {
		t.Fatalf("expected the night memo to open the timeline, got hour %d", tl.Buckets[0].Hour)
	}
	for _, b := range tl.Buckets {
		if b.Hour == 8 {
			items := b.Items()
			if len(items) != 2 || items[0].Title != "Hill climb" || items[1].Title != "Breakfast" {
				t.Fatalf("unexpected 08:00 bucket %v", items)
			}
		}
	}
}

func TestReport(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.LoadSample(); err != nil {
		t.Fatalf("load sample: %v", err)
	}

	r := svc.Report()
	if r.Total != 6 {
		t.Fatalf("expected 6 done items, got %d", r.Total)
	}
	want := 40*time.Minute + 3*time.Hour + 23*time.Minute
	if r.Tracked != want {
		t.Fatalf("expected %v tracked, got %v", want, r.Tracked)
	}
	if len(r.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(r.Sections))
	}
	tags := []string{r.Sections[0].Tag, r.Sections[1].Tag, r.Sections[2].Tag}
	if tags[0] != "health" || tags[1] != "sport" || tags[2] != "work" {
		t.Fatalf("unexpected section order %v", tags)
	}
	if r.Sections[0].Tracked != 23*time.Minute || len(r.Sections[0].Items) != 4 {
		t.Fatalf("unexpected health section %+v", r.Sections[0])
	}
}

func TestReportEmpty(t *testing.T) {
	svc, _ := newService(t)
	r := svc.Report()
	if r.Total != 0 || r.Sections == nil || len(r.Sections) != 0 {
		t.Fatalf("unexpected empty report %+v", r)
	}
}

func TestOpenMemoryBackend(t *testing.T) {
	svc, err := Open(&store.StaticConfig{Store: store.BackendMemory}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer svc.Close()
	if len(svc.Categories.List()) != len(category.DefaultNames) {
		t.Fatalf("expected seeded categories")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(&store.StaticConfig{Store: "nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
