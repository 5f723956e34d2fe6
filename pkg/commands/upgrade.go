package commands

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

const modulePath = "tableflip.dev/chrono"

// installTarget is the go install argument for a release; blank means latest.
func installTarget(release string) string {
	release = strings.TrimSpace(release)
	if release == "" {
		release = "latest"
	}
	return modulePath + "@" + release
}

func addUpgrade(topLevel *cobra.Command) {
	release := ""

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the chrono cli.",
		Example: `
chrono upgrade
chrono upgrade --to v0.2.0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ex := exec.Command("go", "install", installTarget(release))
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				Logger.Error("go install failed", "target", installTarget(release), "output", strings.TrimSpace(out.String()))
				return output.HandleError(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ex.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&release, "to", "", "Release to install, e.g. v0.2.0. Defaults to latest.")

	topLevel.AddCommand(cmd)
}
