package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil))
	assert.Nil(t, Wrapf(nil, "ignored"))
	assert.Nil(t, WrapKV(nil, KeyFile, "ignored"))
}

func TestWrapPreservesChain(t *testing.T) {
	sentinel := errors.New("boom")
	err := Wrap(sentinel)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "boom", err.Error())
	// Cause stops at the stack-carrying anchor
	assert.Equal(t, "boom", Cause(err).Error())
}

func TestWrapfMessage(t *testing.T) {
	sentinel := errors.New("boom")
	err := Wrapf(sentinel, "stage %d", 2)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "stage 2: boom", err.Error())
}

func TestWrapKVEncoding(t *testing.T) {
	sentinel := errors.New("boom")
	err := WrapKV(sentinel, KeyFile, "a.json", KeyFormat, "json")
	assert.ErrorIs(t, err, sentinel)

	desc := NewDesc(err)
	assert.Equal(t, "a.json", desc.Field(KeyFile))
	assert.Equal(t, "json", desc.Field(KeyFormat))
}

func TestWrapKVOddPairsPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = WrapKV(errors.New("boom"), KeyFile)
	})
}

func TestErrorKV(t *testing.T) {
	err := ErrorKV("cannot open", KeyFile, "a.json")
	desc := NewDesc(err)
	assert.Equal(t, "a.json", desc.Field(KeyFile))
	assert.Equal(t, "cannot open", desc.Field(KeyReason))
}

func TestErrorf(t *testing.T) {
	err := Errorf("bad state: %d", 42)
	assert.Equal(t, "bad state: 42", NewDesc(err).Field(KeyReason))
}

func TestSingleStackInChain(t *testing.T) {
	inner := Errorf("inner")
	outer := Wrapf(Wrapf(inner, "mid"), "outer")

	// only one stack is printed no matter how deep the chain is
	out := fmt.Sprintf("%+v", outer)
	assert.Equal(t, 1, countOccurrences(out, "xerrors_test.go"))
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}

func TestDescOutermostWins(t *testing.T) {
	inner := ErrorKV("inner reason", KeyFile, "inner.json")
	outer := WrapKV(inner, KeyFile, "outer.json")
	assert.Equal(t, "outer.json", NewDesc(outer).Field(KeyFile))
}

func TestDescString(t *testing.T) {
	err := ErrorKV("bad input", KeyFile, "a.json", KeyHelp, "fix the file")
	s := NewDesc(err).String()
	assert.Contains(t, s, "bad input")
	assert.Contains(t, s, "a.json")
	assert.Contains(t, s, "Help: fix the file")
}

func TestDescPlainError(t *testing.T) {
	desc := NewDesc(errors.New("plain failure"))
	require.NotNil(t, desc)
	assert.Equal(t, "Error: plain failure", desc.String())
}

func TestDescDebugString(t *testing.T) {
	err := ErrorKV("r", KeyFile, "f.json", KeyPos, "3:7")
	s := NewDesc(err).DebugString()
	assert.Contains(t, s, "File: f.json")
	assert.Contains(t, s, "Pos: 3:7")
}
