// Package report summarizes the done list by tag.
package report

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/printers"
)

type Report struct {
	Output  string
	Service *app.Service
	Out     io.Writer
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	pp := printers.PrettyPrint{Out: n.Out, Colors: n.Service.Categories}
	r := n.Service.Report()

	if n.Output != "" && n.Output != printers.FormatText {
		return printers.Encode(pp.Writer(), n.Output, r)
	}
	pp.NewLine()
	pp.Report(r)
	return nil
}
