package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "", Indent(0))
	assert.Equal(t, "\t", Indent(1))
	assert.Equal(t, "\t\t\t", Indent(3))
}
