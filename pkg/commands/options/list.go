package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/schedule"
)

// ListOptions picks the pending or done list.
type ListOptions struct {
	List schedule.List
}

// ListArgs is the set of values accepted as the list argument.
var ListArgs = []string{string(schedule.ListPending), string(schedule.ListDone)}

// ListFromArgs reads the optional list argument; no argument means pending.
func ListFromArgs(o *ListOptions) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return fmt.Errorf("expected at most one list, got %d", len(args))
		}
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		l, err := schedule.ParseList(arg)
		if err != nil {
			return err
		}
		o.List = l
		return nil
	}
}
