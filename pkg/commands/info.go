package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/commands/options"
	"tableflip.dev/chrono/pkg/runner/info"
	"tableflip.dev/chrono/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where documents are stored.",
		Example: `
chrono info
chrono info -o json
`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return fo.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(cfg, Logger)
			if err != nil {
				return output.HandleError(err)
			}
			defer p.Close()

			s := info.Info{
				Config:      cfg,
				Persistence: p,
				Output:      fo.Output,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
