package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/glyph"
	"tableflip.dev/chrono/pkg/timeline"
	"tableflip.dev/chrono/pkg/timeutil"
)

const hoursPerRow = 12

const width = len("00 01 02 03 04 05 06 07 08 09 10 11") // an example row

// HourStrip prints the day as two rows of hours, highlighting the hours
// that have at least one item starting in them.
func (pp *PrettyPrint) HourStrip(tl timeline.Timeline) {
	count := make([]int, 24)
	for _, b := range tl.Buckets {
		count[b.Hour] = len(b.Entries)
	}
	pp.PrintHourCount(count)
}

func (pp *PrettyPrint) PrintHourCount(count []int) {
	tf := color.New(color.FgWhite, color.Italic)

	label := "Hours"
	mid := (width - len(label)) / 2
	_, _ = tf.Fprintf(pp.Writer(), "%s%s%s\n", strings.Repeat(" ", mid), label, strings.Repeat(" ", width-mid-len(label)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for h := 0; h < 24; h++ {
		if h < len(count) && count[h] > 0 {
			_, _ = l2.Fprintf(pp.Writer(), "%02d ", h)
		} else {
			_, _ = l1.Fprintf(pp.Writer(), "%02d ", h)
		}
		if (h+1)%hoursPerRow == 0 {
			_, _ = fmt.Fprint(pp.Writer(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.Writer(), "\n")
}

// Report prints the done summary, one section per tag.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	pp.TitleWithCount("Report", r.Total)
	if r.Total == 0 {
		pp.Timeline(timeline.Timeline{})
		return
	}

	f := color.New(color.Faint)
	for _, s := range r.Sections {
		_, _ = fmt.Fprintf(pp.Writer(), "%s ", pp.chip(s.Tag, pp.tagColor(s.Tag, false)))
		_, _ = f.Fprintf(pp.Writer(), "%d done, %s\n", len(s.Items), timeutil.FormatDuration(s.Tracked))
		for _, ri := range s.Items {
			_, _ = fmt.Fprintf(pp.Writer(), "  %s %s", glyph.Completed, ri.Item.Title)
			if ri.Ranged {
				_, _ = f.Fprintf(pp.Writer(), "  %s", timeutil.FormatDuration(ri.Duration))
			}
			_, _ = fmt.Fprintln(pp.Writer())
		}
	}
	_, _ = f.Fprintf(pp.Writer(), "\ntracked %s\n\n", timeutil.FormatDuration(r.Tracked))
}
