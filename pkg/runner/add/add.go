// Package add provides the runner that creates schedule items.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/printers"
	"tableflip.dev/chrono/pkg/schedule"
)

type Add struct {
	Draft   app.Draft
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	it, err := n.Service.Add(n.Draft)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: true, Colors: n.Service.Categories}
	if n.JSON {
		return printers.Encode(pp.Writer(), printers.FormatJSON, it)
	}

	tl := n.Service.Timeline(schedule.ListPending)
	pp.TitleWithCount("Pending", tl.Len())
	pp.Timeline(tl)
	return nil
}
