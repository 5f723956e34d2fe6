package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/chrono/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "chrono",
		Short: options.Wrap80("A schedule and todo tracker with colored categories, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	cmd.SetGlobalNormalizationFunc(normalizeFlag)
	return cmd
}

// normalizeFlag lets --sub_tag and --sub-tag mean the same flag.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addCategory(topLevel)
	addTags(topLevel)
	addWatch(topLevel)
	addReport(topLevel)
	addDemo(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}
