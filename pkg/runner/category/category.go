// Package category provides the runners that list and register categories.
package category

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/printers"
)

// List prints every registered category with its color.
type List struct {
	Output  string
	Service *app.Service
	Out     io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list categories, no service")
	}
	pp := printers.PrettyPrint{Out: n.Out, Colors: n.Service.Categories}

	if n.Output != "" && n.Output != printers.FormatText {
		hex := make(map[string]string)
		for name, c := range n.Service.Categories.Colors() {
			hex[name] = c.Hex()
		}
		return printers.Encode(pp.Writer(), n.Output, hex)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Color"))
	for _, name := range n.Service.Categories.List() {
		c := n.Service.Categories.Get(name)
		tbl.AddRow(pp.Chip(name, c), c.Hex())
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
	return nil
}

// Add registers a new category.
type Add struct {
	Name    string
	Color   string
	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add category, no service")
	}
	if err := n.Service.AddCategory(n.Name, n.Color); err != nil {
		return err
	}
	l := List{Service: n.Service, Out: n.Out}
	return l.Do(ctx)
}
