// Package demo renders the sample day, from memory or seeded into a store.
package demo

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/printers"
	"tableflip.dev/chrono/pkg/schedule"
	"tableflip.dev/chrono/pkg/store"
)

type Demo struct {
	ShowID bool
	Logger *log.Logger
	// Service, when set, receives the sample day instead of a throwaway
	// in-memory store.
	Service *app.Service
	Out     io.Writer
}

func (n *Demo) Do(ctx context.Context) error {
	svc := n.Service
	if svc == nil {
		svc = app.New(store.NewMemory(), n.Logger)
		defer svc.Close()
	}

	if err := svc.LoadSample(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID, Colors: svc.Categories}
	for _, l := range []schedule.List{schedule.ListPending, schedule.ListDone} {
		tl := svc.Timeline(l)
		pp.Done = l == schedule.ListDone
		pp.NewLine()
		if l == schedule.ListPending {
			pp.TitleWithCount("Pending", tl.Len())
			pp.HourStrip(tl)
		} else {
			pp.TitleWithCount("Done", tl.Len())
		}
		pp.Timeline(tl)
	}
	pp.Report(svc.Report())
	return nil
}
