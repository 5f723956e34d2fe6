package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions carries an item id argument and whether ids are printed.
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

// IDFromArgs reads the item id from the positional arguments. Ids are copied
// out of listings, so surrounding whitespace is dropped.
func IDFromArgs(o *IDOptions) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		id := strings.TrimSpace(strings.Join(args, " "))
		if id == "" {
			return errors.New("requires an item id")
		}
		o.ID = id
		return nil
	}
}
