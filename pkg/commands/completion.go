package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/category"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(chrono completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(chrono completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func categoryCompletions(toComplete string) []string {
	var names []string
	_ = withService(func(svc *app.Service) error {
		names = filterPrefix(svc.Categories.List(), toComplete)
		return nil
	})
	return names
}

func tagCompletions(toComplete string) []string {
	var tags []string
	for _, g := range category.Groups() {
		tags = append(tags, g.Tags...)
	}
	return append(filterPrefix(tags, toComplete), categoryCompletions(toComplete)...)
}

func filterPrefix(all []string, prefix string) []string {
	out := make([]string, 0, len(all))
	for _, s := range all {
		if strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	return out
}
