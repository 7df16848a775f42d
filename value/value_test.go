package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsUnknown(t *testing.T) {
	var v Value
	assert.Equal(t, Unknown, v.Kind())
	assert.False(t, v.IsValid())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Null, NewNull().Kind())
	assert.Equal(t, True, NewBool(true).Kind())
	assert.Equal(t, False, NewBool(false).Kind())
	assert.Equal(t, Number, NewNumber(1.5).Kind())
	assert.Equal(t, String, NewString("s").Kind())
	assert.Equal(t, Array, NewArray(nil).Kind())
	assert.Equal(t, Object, NewObject(nil).Kind())

	assert.True(t, NewBool(true).Bool())
	assert.False(t, NewBool(false).Bool())
	assert.Equal(t, 1.5, NewNumber(1.5).Number())
	assert.Equal(t, "s", NewString("s").Text())
}

func TestContainerAccessors(t *testing.T) {
	arr := NewArray([]Value{NewNumber(1), NewNumber(2)})
	require.Equal(t, 2, arr.Len())
	assert.Equal(t, 1.0, arr.Index(0).Number())
	assert.Equal(t, 2.0, arr.Index(1).Number())

	obj := NewObject([]Member{
		{Key: "a", Value: NewNumber(1)},
		{Key: "b", Value: NewString("x")},
	})
	require.Equal(t, 2, obj.Len())
	assert.Equal(t, "a", obj.Member(0).Key)
	assert.Equal(t, "x", obj.Field("b").Text())
	assert.False(t, obj.Field("c").IsValid())
}

func TestFieldFirstMatchWins(t *testing.T) {
	obj := NewObject([]Member{
		{Key: "a", Value: NewNumber(1)},
		{Key: "a", Value: NewNumber(2)},
	})
	assert.Equal(t, 1.0, obj.Field("a").Number())
}

func TestAccessorPanics(t *testing.T) {
	assert.Panics(t, func() { NewNull().Bool() })
	assert.Panics(t, func() { NewString("s").Number() })
	assert.Panics(t, func() { NewNumber(1).Text() })
	assert.Panics(t, func() { NewNumber(1).Len() })
	assert.Panics(t, func() { NewObject(nil).Index(0) })
	assert.Panics(t, func() { NewArray(nil).Member(0) })
	assert.Panics(t, func() { NewArray(nil).Field("k") })
	assert.Panics(t, func() { Value{}.Bool() })
}

func TestEqual(t *testing.T) {
	a := NewObject([]Member{
		{Key: "x", Value: NewArray([]Value{NewNumber(1), NewString("s")})},
		{Key: "y", Value: NewNull()},
	})
	b := NewObject([]Member{
		{Key: "x", Value: NewArray([]Value{NewNumber(1), NewString("s")})},
		{Key: "y", Value: NewNull()},
	})
	assert.True(t, a.Equal(b))

	// member order matters
	c := NewObject([]Member{
		{Key: "y", Value: NewNull()},
		{Key: "x", Value: NewArray([]Value{NewNumber(1), NewString("s")})},
	})
	assert.False(t, a.Equal(c))

	assert.True(t, Value{}.Equal(Value{}))
	assert.False(t, NewNull().Equal(Value{}))
	assert.False(t, NewNumber(1).Equal(NewNumber(2)))
	assert.False(t, NewArray(nil).Equal(NewArray([]Value{NewNull()})))
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Unknown, "unknown"},
		{Null, "null"},
		{True, "true"},
		{Number, "number"},
		{Object, "object"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.kind.String())
	}
}
