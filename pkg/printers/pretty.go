package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/chrono/pkg/glyph"
	"tableflip.dev/chrono/pkg/palette"
	"tableflip.dev/chrono/pkg/schedule"
	"tableflip.dev/chrono/pkg/timeline"
	"tableflip.dev/chrono/pkg/timeutil"
)

// Colors resolves tag names to colors at render time.
type Colors interface {
	Get(name string) palette.Color
	TagColor(tag string) palette.Color
}

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Done marks every rendered item as completed.
	Done   bool
	Colors Colors
}

const noteWidth = 60

var (
	spacing   = strings.Repeat(" ", len("1b4e28ba-2fa1-11d2-883f-0016d3cca427  "))
	timeWidth = len("00:00 - 00:00")
)

// Writer is where the printer sends its output, color.Output by default.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.Writer(), spacing)
	}
	_, _ = t.Fprintln(pp.Writer(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.Writer(), spacing)
	}
	_, _ = t.Fprint(pp.Writer(), title)
	_, _ = c.Fprintf(pp.Writer(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Writer(), " item")
	default:
		_, _ = c.Fprintln(pp.Writer(), " items")
	}
}

// Timeline renders the undated group first, then one group per hour.
func (pp *PrettyPrint) Timeline(tl timeline.Timeline) {
	if tl.Empty() {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.Writer(), spacing)
		}
		_, _ = f.Fprint(pp.Writer(), " none\n\n")
		return
	}

	h := color.New(color.FgHiWhite, color.Bold)
	if len(tl.Undated) > 0 {
		pp.heading(h, "All Day")
		for _, it := range tl.Undated {
			pp.item(it, nil)
		}
	}
	for _, b := range tl.Buckets {
		pp.heading(h, b.Label())
		for _, e := range b.Entries {
			sp := e.Span
			pp.item(e.Item, &sp)
		}
	}
	pp.NewLine()
}

func (pp *PrettyPrint) heading(c *color.Color, label string) {
	if pp.ShowID {
		_, _ = c.Fprint(pp.Writer(), spacing)
	}
	_, _ = c.Fprintln(pp.Writer(), label)
}

func (pp *PrettyPrint) item(it schedule.Item, sp *schedule.Span) {
	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	if pp.ShowID {
		_, _ = y.Fprint(pp.Writer(), it.ID)
		if pad := len(spacing) - len(it.ID); pad > 0 {
			_, _ = y.Fprint(pp.Writer(), strings.Repeat(" ", pad))
		} else {
			_, _ = y.Fprint(pp.Writer(), " ")
		}
	}

	when := ""
	if sp != nil {
		when = sp.Start.String()
		if sp.HasEnd {
			when += " - " + sp.End
		}
	}
	_, _ = f.Fprintf(pp.Writer(), "  %-*s ", timeWidth, when)
	_, _ = t.Fprintf(pp.Writer(), "%s %s", glyph.For(it, pp.Done), it.Title)

	parts := []string{pp.chip(it.Tag, pp.tagColor(it.Tag, false))}
	if it.SubTag != nil {
		c := palette.Unassigned
		if it.SubTagColor != nil {
			c = *it.SubTagColor
		}
		parts = append(parts, pp.chip(*it.SubTag, c))
	}
	for _, other := range it.OtherTags {
		parts = append(parts, pp.chip(other, pp.tagColor(other, true)))
	}
	_, _ = fmt.Fprint(pp.Writer(), "  "+strings.Join(parts, " "))

	if sp != nil {
		if d, ok := sp.Duration(); ok {
			_, _ = f.Fprintf(pp.Writer(), "  %s", timeutil.FormatDuration(d))
		}
	}
	_, _ = fmt.Fprintln(pp.Writer())

	if it.Note != nil {
		pp.note(f, *it.Note)
	}
}

// note prints the item note under the title, wrapped and indented.
func (pp *PrettyPrint) note(f *color.Color, text string) {
	indent := strings.Repeat(" ", 2+timeWidth+1+2)
	if pp.ShowID {
		indent = spacing + indent
	}
	for _, line := range strings.Split(wordwrap.String(text, noteWidth), "\n") {
		_, _ = f.Fprintf(pp.Writer(), "%s%s\n", indent, line)
	}
}

func (pp *PrettyPrint) tagColor(tag string, other bool) palette.Color {
	if pp.Colors == nil {
		return palette.Unassigned
	}
	if other {
		return pp.Colors.TagColor(tag)
	}
	return pp.Colors.Get(tag)
}

func (pp *PrettyPrint) chip(label string, c palette.Color) string {
	fg := lipgloss.Color("#ffffff")
	if c.Light() {
		fg = lipgloss.Color("#000000")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(fg).
		Padding(0, 1).
		Render(label)
}

// Chip renders a colored label the same way tags are drawn.
func (pp *PrettyPrint) Chip(label string, c palette.Color) string {
	return pp.chip(label, c)
}
