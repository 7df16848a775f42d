// Package value defines the tagged tree node representing any JSON construct.
//
// A Value holds exactly one of the JSON shapes: null, false, true, number,
// string, array, or object. The zero Value is the Unknown sentinel, meaning
// "no such value"; it is returned by failed lookups and never produced by a
// successful parse.
package value

import "fmt"

type Kind uint8

const (
	Unknown Kind = iota
	Null
	False
	True
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case False:
		return "false"
	case True:
		return "true"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one object entry. JSON member order is significant, so objects
// hold an ordered member slice instead of a map. Duplicate keys are legal
// and retained in source order.
type Member struct {
	Key   string
	Value Value
}

// Value is immutable once constructed: the constructors below are the only
// mutation point, and accessors hand out payloads by value. A completed tree
// is safe for concurrent readers.
type Value struct {
	kind Kind
	num  float64
	str  string
	arr  []Value
	obj  []Member
}

// NewNull returns the JSON null value.
func NewNull() Value { return Value{kind: Null} }

// NewBool returns the JSON true or false value.
func NewBool(b bool) Value {
	if b {
		return Value{kind: True}
	}
	return Value{kind: False}
}

// NewNumber returns a JSON number value.
func NewNumber(f float64) Value { return Value{kind: Number, num: f} }

// NewString returns a JSON string value. The text is the resolved form:
// escape sequences have already been replaced by the characters they denote.
func NewString(s string) Value { return Value{kind: String, str: s} }

// NewArray returns a JSON array value owning elems.
func NewArray(elems []Value) Value { return Value{kind: Array, arr: elems} }

// NewObject returns a JSON object value owning members, in source order.
func NewObject(members []Member) Value { return Value{kind: Object, obj: members} }

// Kind returns the discriminant. Callers must check Kind before using a
// typed accessor; accessing the wrong variant is a contract violation and
// panics rather than returning a zero payload.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds an actual JSON value, i.e. is not the
// Unknown sentinel.
func (v Value) IsValid() bool { return v.kind != Unknown }

func (v Value) mustBe(kinds ...Kind) {
	for _, k := range kinds {
		if v.kind == k {
			return
		}
	}
	panic(fmt.Sprintf("value: %v accessed as %v", v.kind, kinds))
}

// Bool returns the boolean payload. It panics unless Kind is True or False.
func (v Value) Bool() bool {
	v.mustBe(True, False)
	return v.kind == True
}

// Number returns the number payload. It panics unless Kind is Number.
func (v Value) Number() float64 {
	v.mustBe(Number)
	return v.num
}

// Text returns the string payload. It panics unless Kind is String.
func (v Value) Text() string {
	v.mustBe(String)
	return v.str
}

// Len returns the element or member count. It panics unless Kind is Array
// or Object.
func (v Value) Len() int {
	v.mustBe(Array, Object)
	if v.kind == Array {
		return len(v.arr)
	}
	return len(v.obj)
}

// Index returns the i-th array element. It panics unless Kind is Array.
func (v Value) Index(i int) Value {
	v.mustBe(Array)
	return v.arr[i]
}

// Member returns the i-th object member. It panics unless Kind is Object.
func (v Value) Member(i int) Member {
	v.mustBe(Object)
	return v.obj[i]
}

// Field scans this object's own members in insertion order and returns the
// value of the first member named key, or the Unknown sentinel if the object
// has no such member. The scan is O(n) on purpose: member order matters more
// than lookup speed for the small documents this tree is built for. It panics
// unless Kind is Object. For a tree-wide search see Get.
func (v Value) Field(key string) Value {
	v.mustBe(Object)
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value
		}
	}
	return Value{}
}

// Equal reports structural equality: same kind, same payload, and for
// containers the same children in the same order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.num == other.num
	case String:
		return v.str == other.str
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != other.obj[i].Key || !v.obj[i].Value.Equal(other.obj[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
