package options

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/chrono/pkg/schedule"
)

func TestAddItemArgsDefaults(t *testing.T) {
	o := &AddOptions{}
	cmd := &cobra.Command{Use: "add"}
	AddItemArgs(cmd, o)

	require.NoError(t, cmd.ParseFlags([]string{"--at", "08:00", "--with", "cardio", "--with", "outdoor"}))
	d := o.Draft([]string{"Hill", "climb"})

	assert.Equal(t, "Hill climb", d.Title)
	assert.Equal(t, "sport", d.Tag)
	assert.Equal(t, schedule.KindSchedule, d.Type)
	assert.Equal(t, "08:00", d.At)
	assert.Equal(t, []string{"cardio", "outdoor"}, d.With)
}

func TestListFromArgs(t *testing.T) {
	o := &ListOptions{}
	check := ListFromArgs(o)

	require.NoError(t, check(nil, nil))
	assert.Equal(t, schedule.ListPending, o.List)

	require.NoError(t, check(nil, []string{"done"}))
	assert.Equal(t, schedule.ListDone, o.List)

	assert.Error(t, check(nil, []string{"later"}))
	assert.Error(t, check(nil, []string{"done", "pending"}))
}

func TestFormatValidate(t *testing.T) {
	o := &FormatOptions{Output: "YAML"}
	require.NoError(t, o.Validate())
	assert.Equal(t, "yaml", o.Output)

	o.Output = "xml"
	assert.Error(t, o.Validate())
}

func TestHandleError(t *testing.T) {
	plain := &OutputOptions{}
	err := errors.New("boom")
	assert.Equal(t, err, plain.HandleError(err))

	js := &OutputOptions{JSON: true}
	assert.NoError(t, js.HandleError(err))
	assert.NoError(t, js.HandleError(nil))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", Wrap("one two three", 8))
}

func TestWrapFlattensLiteralNewlines(t *testing.T) {
	assert.Equal(t, "a b c", Wrap("a\n  b\n\tc", HelpWidth))
	assert.Equal(t, "", Wrap("", HelpWidth))
}

func TestIDFromArgs(t *testing.T) {
	o := &IDOptions{}
	check := IDFromArgs(o)

	require.NoError(t, check(nil, []string{"  abc-123 "}))
	assert.Equal(t, "abc-123", o.ID)

	assert.Error(t, check(nil, nil))
	assert.Error(t, check(nil, []string{" "}))
}
