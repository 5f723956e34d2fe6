package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// HelpWidth is the column command help text is folded at.
const HelpWidth = 80

// Wrap80 folds help text at HelpWidth.
func Wrap80(text string) string {
	return Wrap(text, HelpWidth)
}

// Wrap collapses runs of whitespace, including the newlines of raw string
// literals, and re-folds text at width.
func Wrap(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if flat == "" {
		return text
	}
	return wordwrap.String(flat, width)
}
