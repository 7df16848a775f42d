package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFormat(t *testing.T) {
	assert.Equal(t, JSON, GetFormat("dir/conf.json"))
	assert.Equal(t, YAML, GetFormat("conf.yaml"))
	assert.Equal(t, YAML, GetFormat("conf.yml"))
	assert.Equal(t, UnknownFormat, GetFormat("conf.txt"))
	assert.Equal(t, UnknownFormat, GetFormat("conf"))
}

func TestFormat2Ext(t *testing.T) {
	assert.Equal(t, JSONExt, Format2Ext(JSON))
	assert.Equal(t, YAMLExt, Format2Ext(YAML))
	assert.Equal(t, UnknownExt, Format2Ext(UnknownFormat))
}

func TestIsInputFormat(t *testing.T) {
	assert.True(t, IsInputFormat(JSON))
	assert.True(t, IsInputFormat(YAML))
	assert.False(t, IsInputFormat(UnknownFormat))
}
