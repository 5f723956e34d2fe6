package category

import "tableflip.dev/chrono/pkg/palette"

// TagGroup is a themed set of secondary tags offered by the tag picker.
type TagGroup struct {
	Name  string
	Color palette.Color
	Tags  []string
}

// Groups returns the fixed tag groups.
func Groups() []TagGroup {
	return []TagGroup{
		{Name: "calendar", Color: palette.Pink, Tags: []string{"cardio", "fitness", "outdoor"}},
		{Name: "time use", Color: palette.Purple, Tags: []string{"essentials", "self-investment", "leisure"}},
		{Name: "time nature", Color: palette.Blue, Tags: []string{"urgent-important", "important", "urgent", "neither"}},
	}
}

// GroupOf returns the first group listing tag.
func GroupOf(tag string) (TagGroup, bool) {
	for _, g := range Groups() {
		for _, t := range g.Tags {
			if t == tag {
				return g, true
			}
		}
	}
	return TagGroup{}, false
}

// TagColor resolves a secondary tag: a registered category wins, then the
// tag's group color, then palette.Unassigned.
func (r *Registry) TagColor(tag string) palette.Color {
	if c, ok := r.Lookup(tag); ok {
		return c
	}
	if g, ok := GroupOf(tag); ok {
		return g.Color
	}
	return palette.Unassigned
}
