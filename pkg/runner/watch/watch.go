// Package watch re-renders a list whenever its stored state changes.
package watch

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/category"
	"tableflip.dev/chrono/pkg/runner/get"
	"tableflip.dev/chrono/pkg/schedule"
	"tableflip.dev/chrono/pkg/store"
)

type Watch struct {
	ShowID  bool
	Clear   bool
	List    schedule.List
	Service *app.Service
	Out     io.Writer
}

// Do renders the list once, then again after every relevant change, until
// ctx is cancelled or the watcher stops.
func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no service")
	}
	if n.List == "" {
		n.List = schedule.ListPending
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	g := get.Get{ShowID: n.ShowID, List: n.List, Service: n.Service, Out: out}
	if err := g.Do(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !n.relevant(ev) {
				continue
			}
			n.Service.Reload()
			if n.Clear {
				termenv.NewOutput(g.Out).ClearScreen()
			}
			if err := g.Do(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) relevant(ev store.Event) bool {
	if ev.Type == store.EventInvalidated {
		return true
	}
	return ev.Key == string(n.List) || ev.Key == category.Key
}
