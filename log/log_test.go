package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zxhio/j4on/options"
)

func TestGetSinkType(t *testing.T) {
	tests := []struct {
		sink string
		want SinkType
	}{
		{"", SinkConsole},
		{"CONSOLE", SinkConsole},
		{"console", SinkConsole},
		{"FILE", SinkFile},
		{"multi", SinkMulti},
	}
	for _, test := range tests {
		got, err := GetSinkType(test.sink)
		require.NoError(t, err, "sink: %q", test.sink)
		assert.Equal(t, test.want, got, "sink: %q", test.sink)
	}

	_, err := GetSinkType("SYSLOG")
	assert.Error(t, err)
}

func TestInitConsole(t *testing.T) {
	require.NoError(t, Init(&options.LogOption{Mode: "SIMPLE", Level: "DEBUG"}))
	require.NotNil(t, Log())
	Debugf("debug %s", "message")
	Infof("info %d", 1)
}

func TestInitFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "j4on.log")
	require.NoError(t, Init(&options.LogOption{
		Mode:     "FULL",
		Level:    "INFO",
		Sink:     "FILE",
		Filename: filename,
	}))
	Infof("written to file")

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestInitErrors(t *testing.T) {
	assert.Error(t, Init(&options.LogOption{Mode: "NOPE", Level: "INFO"}))
	assert.Error(t, Init(&options.LogOption{Mode: "FULL", Level: "NOPE"}))
	assert.Error(t, Init(&options.LogOption{Mode: "FULL", Level: "INFO", Sink: "FILE"}))  // filename required
	assert.Error(t, Init(&options.LogOption{Mode: "FULL", Level: "INFO", Sink: "MULTI"})) // filename required

	// restore the console logger for other tests
	require.NoError(t, Init(&options.LogOption{Mode: "FULL", Level: "INFO"}))
}
