package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewDefault(t *testing.T) {
	opts := NewDefault()
	require.NotNil(t, opts.Log)
	assert.Equal(t, DefaultLogMode, opts.Log.Mode)
	assert.Equal(t, DefaultLogLevel, opts.Log.Level)
	require.NotNil(t, opts.Parse)
	assert.Equal(t, DefaultMaxDepth, opts.Parse.MaxDepth)
	require.NotNil(t, opts.Output)
	assert.False(t, opts.Output.Validate)
}

func TestParseOptions(t *testing.T) {
	opts := ParseOptions(
		Parse(&ParseOption{MaxDepth: 64}),
		Output(&OutputOption{Validate: true}),
	)
	assert.Equal(t, 64, opts.Parse.MaxDepth)
	assert.True(t, opts.Output.Validate)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultLogMode, opts.Log.Mode)
}

func TestYAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(NewDefault())
	require.NoError(t, err)

	var opts Options
	require.NoError(t, yaml.Unmarshal(out, &opts))
	assert.Equal(t, DefaultLogLevel, opts.Log.Level)
	assert.Equal(t, DefaultMaxDepth, opts.Parse.MaxDepth)
}

func TestYAMLOverride(t *testing.T) {
	conf := []byte(`
log:
  level: DEBUG
  sink: MULTI
  filename: j4on.log
parse:
  maxDepth: 16
output:
  validate: true
`)
	opts := NewDefault()
	require.NoError(t, yaml.Unmarshal(conf, opts))
	assert.Equal(t, "DEBUG", opts.Log.Level)
	assert.Equal(t, "MULTI", opts.Log.Sink)
	assert.Equal(t, "j4on.log", opts.Log.Filename)
	assert.Equal(t, 16, opts.Parse.MaxDepth)
	assert.True(t, opts.Output.Validate)
}
