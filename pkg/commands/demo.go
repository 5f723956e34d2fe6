package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/commands/options"
	"tableflip.dev/chrono/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	seed := false

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a sample day",
		Long: options.Wrap80(`Render a sample day from memory. With --seed the sample items are
added to the configured store instead, next to anything already there.`),
		Example: `
chrono demo
chrono demo --seed
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if !seed {
				d := demo.Demo{ShowID: io.ShowID, Logger: Logger}
				return output.HandleError(d.Do(context.Background()))
			}
			err := withService(func(svc *app.Service) error {
				d := demo.Demo{ShowID: io.ShowID, Service: svc}
				return d.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&seed, "seed", false, "Write the sample day into the configured store.")

	topLevel.AddCommand(cmd)
}
