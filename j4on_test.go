package j4on_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zxhio/j4on"
	"github.com/zxhio/j4on/internal/testutil"
	"github.com/zxhio/j4on/options"
	"github.com/zxhio/j4on/parse"
	"github.com/zxhio/j4on/value"
)

func TestParseAndFormat(t *testing.T) {
	root, err := j4on.ParseString(`{"server": {"port": 8080}, "debug": true}`)
	require.NoError(t, err)

	out, err := j4on.Format(root)
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"server\":{\n\t\t\"port\":8080\n\t},\n\t\"debug\":true\n}", out)
}

func TestGet(t *testing.T) {
	root, err := j4on.ParseString(`{"a": {"port": 8080}, "port": 22}`)
	require.NoError(t, err)

	assert.Equal(t, 8080.0, j4on.Get(root, "port").Number())
	assert.False(t, j4on.Get(root, "missing").IsValid())
}

func TestParseMaxDepthOption(t *testing.T) {
	_, err := j4on.ParseString("[[[1]]]", options.Parse(&options.ParseOption{MaxDepth: 2}))
	assert.ErrorIs(t, err, parse.ErrDepthExceeded)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"k": [1, 2]}`), 0644))

	root, err := j4on.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, root.Field("k").Len())
}

func TestStore(t *testing.T) {
	root, err := j4on.ParseString(`{"a": 1}`)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, j4on.Store(root, dir, "conf",
		options.Output(&options.OutputOption{Validate: true})))

	data, err := os.ReadFile(filepath.Join(dir, "conf.json"))
	require.NoError(t, err)

	again, err := j4on.Parse(data)
	require.NoError(t, err)
	assert.True(t, root.Equal(again))
}

func TestRoundTrips(t *testing.T) {
	inputs := []string{
		"null",
		"true",
		"-50",
		`"text with \"quotes\" and \t tabs"`,
		"[]",
		"{}",
		`[1, [2, [3, {"deep": null}]]]`,
		`{"a": 1, "a": 2, "b": {"c": [true, false]}}`,
	}
	for _, input := range inputs {
		testutil.AssertRoundTrip(t, input)
	}
}

func TestUnknownSentinel(t *testing.T) {
	var v value.Value
	assert.False(t, v.IsValid())

	_, err := j4on.Format(v)
	assert.Error(t, err)
}
