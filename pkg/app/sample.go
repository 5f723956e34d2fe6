package app

import (
	"tableflip.dev/chrono/pkg/palette"
	"tableflip.dev/chrono/pkg/schedule"
)

// SamplePending is a day of planned items, in display order.
func SamplePending() []schedule.Fields {
	return []schedule.Fields{
		sample(schedule.KindTodo, "Finish report", "focus", "", "", nil),
		sample(schedule.KindTodo, "Buy train tickets", "focus", "", "", nil),
		sample(schedule.KindSchedule, "Morning run", "sport", "07:00 - 07:30", "exercise", tint(0.9, 0.95, 0.8)),
		sample(schedule.KindSchedule, "Hill climb", "sport", "08:00 - 08:40", "cardio", tint(0.976, 0.96, 0.785)),
		sample(schedule.KindSchedule, "Breakfast", "health", "08:50", "", nil),
		sample(schedule.KindSchedule, "Work block", "work", "09:00 - 12:00", "job", tint(0.949, 0.949, 0.8)),
		sample(schedule.KindSchedule, "Meeting", "work", "10:00 - 11:00", "project", tint(0.8, 0.9, 1)),
		sample(schedule.KindSchedule, "Lunch", "health", "12:10", "", nil),
		sample(schedule.KindSchedule, "Afternoon fruit", "health", "14:59", "", nil),
		sample(schedule.KindSchedule, "Afternoon tea", "health", "15:00", "", nil),
		sample(schedule.KindSchedule, "Push code", "focus", "16:00", "dev", tint(1, 0.95, 0.8)),
		sample(schedule.KindSchedule, "Gym", "sport", "18:00 - 19:00", "strength", tint(0.95, 0.8, 0.9)),
		sample(schedule.KindSchedule, "Dinner", "health", "19:30", "", nil),
		sample(schedule.KindSchedule, "Daily review", "work", "21:00", "review", tint(0.8, 0.9, 1)),
		sample(schedule.KindSchedule, "Reading", "focus", "22:00", "", nil),
		sample(schedule.KindSchedule, "Night memo", "focus", "03:46", "reminder", tint(1, 0.95, 0.8)),
	}
}

// SampleDone is the same day's completed items, in completion order.
func SampleDone() []schedule.Fields {
	return []schedule.Fields{
		sample(schedule.KindSchedule, "Breakfast", "health", "", "", nil, "health", "energy"),
		sample(schedule.KindSchedule, "Lunch", "health", "", "", nil, "supplement"),
		sample(schedule.KindSchedule, "Hill climb", "sport", "08:00 - 08:40", "40m", tint(0.976, 0.96, 0.785), "cardio", "outdoor"),
		sample(schedule.KindSchedule, "Breakfast", "health", "08:51 - 08:51", "5s", nil),
		sample(schedule.KindSchedule, "Work block", "work", "09:00 - 12:00", "3h", tint(0.949, 0.949, 0.8), "work", "focus"),
		sample(schedule.KindSchedule, "Lunch", "health", "12:16 - 12:39", "23m", nil, "supplement", "energy"),
	}
}

// LoadSample fills the service with the sample day. Existing items are kept.
func (s *Service) LoadSample() error {
	for _, f := range SampleDone() {
		it, err := s.Schedule.Create(f)
		if err != nil {
			return err
		}
		s.Schedule.MarkDone(it.ID)
	}
	pending := SamplePending()
	for i := len(pending) - 1; i >= 0; i-- {
		if _, err := s.Schedule.Create(pending[i]); err != nil {
			return err
		}
	}
	return nil
}

func sample(kind, title, tag, tm, subTag string, subTagColor *palette.Color, others ...string) schedule.Fields {
	f := schedule.Fields{
		Type:        kind,
		Title:       title,
		Tag:         tag,
		SubTag:      schedule.StringPtr(subTag),
		SubTagColor: subTagColor,
		OtherTags:   append([]string{}, others...),
	}
	if tm != "" {
		f.Time = schedule.StringPtr(tm)
	}
	return f
}

func tint(r, g, b float64) *palette.Color {
	c := palette.RGB(r, g, b)
	return &c
}
