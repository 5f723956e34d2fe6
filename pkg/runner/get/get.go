package get

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/printers"
	"tableflip.dev/chrono/pkg/schedule"
)

type Get struct {
	ShowID  bool
	List    schedule.List
	Output  string
	Service *app.Service
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	if n.List == "" {
		n.List = schedule.ListPending
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID, Done: n.List == schedule.ListDone, Colors: n.Service.Categories}
	tl := n.Service.Timeline(n.List)

	if n.Output != "" && n.Output != printers.FormatText {
		return printers.Encode(pp.Writer(), n.Output, tl)
	}

	pp.NewLine()
	pp.TitleWithCount(Title(n.List), tl.Len())
	pp.Timeline(tl)
	return nil
}

// Title is the heading shown for a list.
func Title(l schedule.List) string {
	s := string(l)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
