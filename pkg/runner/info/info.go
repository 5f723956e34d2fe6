package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/chrono/pkg/printers"
	"tableflip.dev/chrono/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Output      string
	Out         io.Writer
}

type summary struct {
	ConfigFile string   `json:"configFile" yaml:"configFile"`
	Path       string   `json:"path" yaml:"path"`
	Backend    string   `json:"backend" yaml:"backend"`
	LogLevel   string   `json:"logLevel" yaml:"logLevel"`
	Documents  []string `json:"documents" yaml:"documents"`
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Output != "" && n.Output != printers.FormatText {
		return n.encode(ctx, out)
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", store.ConfigPathEnv, override)
	} else {
		_, _ = fmt.Fprintf(out, "%s env var not set\n", store.ConfigPathEnv)
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := n.Config.ConfigFile(); f != "" {
		_, _ = fmt.Fprintln(out, "Config file: ", f)
	} else {
		_, _ = fmt.Fprintln(out, "Config file:  none, using defaults")
	}
	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.backend: ", n.Config.Backend())
	_, _ = fmt.Fprintln(out, "Config.log_level: ", n.Config.LogLevel())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	_, _ = fmt.Fprintf(out, "Documents:\n")
	found := 0
	for _, k := range n.Persistence.Keys(ctx) {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
		found++
	}

	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no documents")
	}

	return nil
}

func (n *Info) encode(ctx context.Context, out io.Writer) error {
	if n.Config == nil {
		var err error
		if n.Config, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	docs := n.Persistence.Keys(ctx)
	if docs == nil {
		docs = []string{}
	}
	return printers.Encode(out, n.Output, summary{
		ConfigFile: n.Config.ConfigFile(),
		Path:       n.Config.BasePath(),
		Backend:    n.Config.Backend(),
		LogLevel:   n.Config.LogLevel(),
		Documents:  docs,
	})
}
