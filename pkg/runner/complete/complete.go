// Package complete provides the runner logic for marking items done.
package complete

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/printers"
	"tableflip.dev/chrono/pkg/schedule"
)

// Complete moves a pending item to the done list.
type Complete struct {
	ID      string
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

// Do executes the completion for the configured item ID. An unknown ID is
// reported but is not an error.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: true, Colors: n.Service.Categories}

	it, ok := n.Service.Complete(n.ID)
	if n.JSON {
		return printers.Encode(pp.Writer(), printers.FormatJSON, map[string]interface{}{
			"id":        n.ID,
			"completed": ok,
			"item":      it,
		})
	}
	if !ok {
		_, _ = fmt.Fprintf(pp.Writer(), "no pending item with id %q\n", n.ID)
		return nil
	}

	tl := n.Service.Timeline(schedule.ListDone)
	pp.Done = true
	pp.NewLine()
	pp.TitleWithCount("Done", tl.Len())
	pp.Timeline(tl)
	return nil
}
