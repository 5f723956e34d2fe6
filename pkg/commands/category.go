package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/commands/options"
	"tableflip.dev/chrono/pkg/runner/category"
)

func addCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories", "cat"},
		Short:   "List or register categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCategoryList(cmd)
	addCategoryAdd(cmd)

	topLevel.AddCommand(cmd)
}

func addCategoryList(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories and their colors",
		Example: `
chrono category list
chrono category list -o json
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return fo.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := category.List{Output: fo.Output, Service: svc}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}

func addCategoryAdd(topLevel *cobra.Command) {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new category",
		Long: options.Wrap80(`Register a new category. The color is a hex value, an index into the
preset palette or a preset name; run "chrono key" to see the palette.`),
		Example: `
chrono category add reading --color "#5856d6"
chrono category add music --color 14
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := category.Add{Name: args[0], Color: color, Service: svc}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "Color of the category: hex, palette index or palette name.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
