package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/commands/options"
	"tableflip.dev/chrono/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"complete", "completed"},
		Short:   "Mark a pending item done",
		Example: `
chrono done <item id>
`,
		Args: options.IDFromArgs(io),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := complete.Complete{
					ID:      io.ID,
					JSON:    output.JSON,
					Service: svc,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
