package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/chrono/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

// FormatOptions selects how listings are rendered.
type FormatOptions struct {
	Output string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", printers.FormatText,
		fmt.Sprintf("Output format. One of %s.", strings.Join(printers.Formats, ", ")))
}

// Validate rejects formats the printers do not know.
func (o *FormatOptions) Validate() error {
	for _, f := range printers.Formats {
		if strings.EqualFold(o.Output, f) {
			o.Output = f
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q, expected one of %s", o.Output, strings.Join(printers.Formats, ", "))
}
