package info

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/chrono/pkg/store"
)

func TestInfo(t *testing.T) {
	t.Setenv(store.ConfigPathEnv, "")
	mem := store.NewMemory()
	require.NoError(t, mem.Write("pending", []byte("[]")))

	var buf bytes.Buffer
	i := Info{
		Config:      &store.StaticConfig{Path: "/tmp/chrono", Store: store.BackendMemory, Level: "debug"},
		Persistence: mem,
		Out:         &buf,
	}
	require.NoError(t, i.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "CHRONO_CONFIG_PATH env var not set")
	assert.Contains(t, out, "/tmp/chrono")
	assert.Contains(t, out, "memory")
	assert.Contains(t, out, "  pending\n")
}

func TestInfoNoPersistence(t *testing.T) {
	i := Info{Config: &store.StaticConfig{}, Out: &bytes.Buffer{}}
	assert.Error(t, i.Do(context.Background()))
}

func TestInfoEncoded(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Write("categories", []byte("{}")))

	var buf bytes.Buffer
	i := Info{
		Config:      &store.StaticConfig{Path: "/tmp/chrono", Store: store.BackendMemory},
		Persistence: mem,
		Output:      "json",
		Out:         &buf,
	}
	require.NoError(t, i.Do(context.Background()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/tmp/chrono", got["path"])
	assert.Equal(t, []any{"categories"}, got["documents"])
}
