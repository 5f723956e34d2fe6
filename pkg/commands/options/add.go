package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/category"
	"tableflip.dev/chrono/pkg/schedule"
)

// AddOptions
type AddOptions struct {
	Type        string
	Tag         string
	At          string
	Until       string
	For         string
	With        []string
	Note        string
	SubTag      string
	SubTagColor string
}

func AddItemArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", category.DefaultCategory,
		"Primary category of the item.")
	cmd.Flags().StringVar(&o.Type, "type", schedule.KindSchedule,
		`Kind of item, "schedule" or "todo".`)
	cmd.Flags().StringVar(&o.At, "at", "",
		`Start time, example: --at="08:00". Leave out for an all-day item.`)
	cmd.Flags().StringVar(&o.Until, "until", "",
		`End time, example: --until="08:40".`)
	cmd.Flags().StringVar(&o.For, "for", "",
		`Duration instead of an end time, example: --for=1h30m. Defaults to 1h.`)
	cmd.Flags().StringArrayVar(&o.With, "with", nil,
		"Secondary tag, may be repeated.")
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Free text attached to the item.")
	cmd.Flags().StringVar(&o.SubTag, "sub-tag", "",
		"One-off annotation shown next to the tag.")
	cmd.Flags().StringVar(&o.SubTagColor, "sub-tag-color", "",
		"Color of the sub tag: hex, palette index or palette name.")
}

// Draft combines the flags with the title words.
func (o *AddOptions) Draft(args []string) app.Draft {
	return app.Draft{
		Type:        o.Type,
		Title:       strings.Join(args, " "),
		Tag:         o.Tag,
		At:          o.At,
		Until:       o.Until,
		For:         o.For,
		With:        o.With,
		Note:        o.Note,
		SubTag:      o.SubTag,
		SubTagColor: o.SubTagColor,
	}
}
