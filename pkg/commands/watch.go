package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/commands/options"
	"tableflip.dev/chrono/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch [pending|done]",
		Short: "Keep a list on screen, redrawing it when it changes",
		Example: `
chrono watch
chrono watch done
`,
		Args:      options.ListFromArgs(lo),
		ValidArgs: options.ListArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			err := withService(func(svc *app.Service) error {
				s := watch.Watch{
					ShowID:  io.ShowID,
					Clear:   isatty.IsTerminal(os.Stdout.Fd()),
					List:    lo.List,
					Service: svc,
				}
				return s.Do(ctx)
			})
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
