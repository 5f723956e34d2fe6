package report

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/printers"
	"tableflip.dev/chrono/pkg/store"
)

func TestReportJSON(t *testing.T) {
	svc := app.New(store.NewMemory(), nil)
	require.NoError(t, svc.LoadSample())

	var buf bytes.Buffer
	r := Report{Output: printers.FormatJSON, Service: svc, Out: &buf}
	require.NoError(t, r.Do(context.Background()))

	var decoded app.ReportResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 6, decoded.Total)
	assert.Len(t, decoded.Sections, 3)
}

func TestReportEmptyText(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := Report{Service: app.New(store.NewMemory(), nil), Out: &buf}
	require.NoError(t, r.Do(context.Background()))
	assert.Contains(t, buf.String(), "Report - 0 items")
	assert.Contains(t, buf.String(), "none")
}
