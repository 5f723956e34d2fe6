package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/commands/options"
	"tableflip.dev/chrono/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a schedule item or todo",
		Example: `
chrono add Finish report --type todo --tag focus
chrono add Hill climb --at 08:00 --until 08:40 --with cardio --with outdoor
chrono add Gym --at 18:00 --for 1h --sub-tag strength --sub-tag-color pink
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := add.Add{
					Draft:   ao.Draft(args),
					JSON:    output.JSON,
					Service: svc,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddItemArgs(cmd, ao)
	options.AddOutputArg(cmd, output)
	_ = cmd.RegisterFlagCompletionFunc("tag", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("with", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tagCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
