// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zxhio/j4on/parse"
	"github.com/zxhio/j4on/store"
	"github.com/zxhio/j4on/store/jsonparser"
	"github.com/zxhio/j4on/value"
)

// AssertRoundTrip parses input, formats it back, and verifies that the
// formatted text parses into a structurally equal tree and that an
// independent JSON parser also accepts it.
func AssertRoundTrip(t *testing.T, input string) value.Value {
	t.Helper()

	root, err := parse.ParseString(input)
	require.NoError(t, err, "parse input: %s", input)

	out, err := store.Marshal(root, nil)
	require.NoError(t, err, "format parsed tree of: %s", input)

	again, err := parse.Parse(out)
	require.NoError(t, err, "re-parse formatted output: %s", out)
	require.True(t, root.Equal(again), "round trip changed the tree\ninput: %s\noutput: %s", input, out)

	_, err = jsonparser.Fastjson.Parse(string(out))
	require.NoError(t, err, "independent parser rejected output: %s", out)

	return root
}
