// Package key provides CLI helpers to display the legend.
package key

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chrono/pkg/glyph"
	"tableflip.dev/chrono/pkg/palette"
	"tableflip.dev/chrono/pkg/printers"
)

// Key prints the item bullets and the preset palette usable with --color
// and --sub-tag-color.
type Key struct {
	Output string
	Out    io.Writer
}

type legend struct {
	Bullets []glyph.Glyph     `json:"bullets" yaml:"bullets"`
	Palette map[string]string `json:"palette" yaml:"palette"`
}

// Do renders the bullet and palette keys.
func (k *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}

	bl := glyph.DefaultGlyphs()
	sort.Sort(glyph.ByOrder(bl))

	if k.Output != "" && k.Output != printers.FormatText {
		l := legend{Bullets: bl, Palette: make(map[string]string, len(palette.Presets))}
		for i, p := range palette.Presets {
			name := p.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			l.Palette[name] = p.Color.Hex()
		}
		return printers.Encode(pp.Writer(), k.Output, l)
	}

	pp.NewLine()
	k.Key(ctx, &pp, bl)
	pp.NewLine()

	k.Palette(ctx, &pp, palette.Presets)
	pp.NewLine()
	return nil
}

// Key renders a glyph table.
func (k *Key) Key(_ context.Context, pp *printers.PrettyPrint, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("   Bullets"), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}

// Palette renders the preset table; index and name both work as a color.
func (k *Key) Palette(_ context.Context, pp *printers.PrettyPrint, presets []palette.Preset) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Index"), bold.Sprint("Color"), bold.Sprint("Hex"))
	for i, p := range presets {
		label := p.Name
		if label == "" {
			label = "#" + strconv.Itoa(i)
		}
		tbl.AddRow(strconv.Itoa(i), pp.Chip(label, p.Color), p.Color.Hex())
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}
