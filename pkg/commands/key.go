package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/commands/options"
	"tableflip.dev/chrono/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the item markers and the color palette",
		Example: `
chrono key
chrono key -o yaml
`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return fo.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := key.Key{
				Output: fo.Output,
			}
			err := k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
