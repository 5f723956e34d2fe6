// Package tags prints the secondary tag groups.
package tags

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/category"
	"tableflip.dev/chrono/pkg/printers"
)

type Tags struct {
	Output  string
	Service *app.Service
	Out     io.Writer
}

func (n *Tags) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list tags, no service")
	}
	pp := printers.PrettyPrint{Out: n.Out, Colors: n.Service.Categories}
	groups := category.Groups()

	if n.Output != "" && n.Output != printers.FormatText {
		out := make(map[string][]string, len(groups))
		for _, g := range groups {
			out[g.Name] = g.Tags
		}
		return printers.Encode(pp.Writer(), n.Output, out)
	}

	pp.NewLine()
	for _, g := range groups {
		pp.Title(g.Name)
		chips := make([]string, 0, len(g.Tags))
		for _, tag := range g.Tags {
			chips = append(chips, pp.Chip(tag, n.Service.Categories.TagColor(tag)))
		}
		_, _ = io.WriteString(pp.Writer(), strings.Join(chips, " ")+"\n\n")
	}
	return nil
}
