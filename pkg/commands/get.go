package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/commands/options"
	"tableflip.dev/chrono/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "get [pending|done]",
		Short: "Show a list as a timeline grouped by hour",
		Long: options.Wrap80(`Show the pending or done list. All-day items and items whose time
can not be read come first, then one group per hour of the day.`),
		Example: `
chrono get
chrono get done --show-id
chrono get pending -o yaml
`,
		Args:      options.ListFromArgs(lo),
		ValidArgs: options.ListArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return fo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := get.Get{
					ShowID:  io.ShowID,
					List:    lo.List,
					Output:  fo.Output,
					Service: svc,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddFormatArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
