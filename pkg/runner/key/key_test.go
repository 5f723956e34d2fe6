package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/chrono/pkg/palette"
)

func TestKey(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	k := Key{Out: &buf}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("key: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"○", "●", "✘", "todo", palette.Presets[7].Color.Hex()} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in legend:\n%s", want, out)
		}
	}
}

func TestKeyEncoded(t *testing.T) {
	var buf bytes.Buffer
	k := Key{Output: "yaml", Out: &buf}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("key: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"bullets:", "symbol:", "meaning:", "palette:", palette.Presets[0].Color.Hex()} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in yaml legend:\n%s", want, out)
		}
	}
}
