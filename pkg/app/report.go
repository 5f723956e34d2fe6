package app

import (
	"sort"
	"time"

	"tableflip.dev/chrono/pkg/schedule"
)

// ReportItem captures a completed item and how long it ran.
type ReportItem struct {
	Item     schedule.Item `json:"item" yaml:"item"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Ranged   bool          `json:"ranged" yaml:"ranged"`
}

// ReportSection groups completed items by primary tag.
type ReportSection struct {
	Tag     string        `json:"tag" yaml:"tag"`
	Items   []ReportItem  `json:"items" yaml:"items"`
	Tracked time.Duration `json:"tracked" yaml:"tracked"`
}

// ReportResult summarizes the done list.
type ReportResult struct {
	Sections []ReportSection `json:"sections" yaml:"sections"`
	Total    int             `json:"total" yaml:"total"`
	Tracked  time.Duration   `json:"tracked" yaml:"tracked"`
}

// Report returns completed items grouped by tag, with the time tracked by
// ranged items. Sections are sorted by tag; items keep their done order.
func (s *Service) Report() ReportResult {
	done := s.Schedule.Done()

	grouped := make(map[string]*ReportSection)
	result := ReportResult{Sections: []ReportSection{}}
	for _, it := range done {
		section, ok := grouped[it.Tag]
		if !ok {
			section = &ReportSection{Tag: it.Tag}
			grouped[it.Tag] = section
		}

		ri := ReportItem{Item: it}
		if sp, status := it.Span(); status == schedule.SpanOK {
			ri.Duration, ri.Ranged = sp.Duration()
		}
		section.Items = append(section.Items, ri)
		section.Tracked += ri.Duration
		result.Tracked += ri.Duration
		result.Total++
	}

	tags := make([]string, 0, len(grouped))
	for tag := range grouped {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		result.Sections = append(result.Sections, *grouped[tag])
	}
	return result
}
