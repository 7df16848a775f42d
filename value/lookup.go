package value

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// frame is one pending step of the depth-first search: either a member whose
// key is still to be tested, or a bare container to expand.
type frame struct {
	key   string
	keyed bool
	val   Value
}

// Get performs a pre-order depth-first search for key across the whole tree:
// object members are tested in insertion order, and a member whose value is
// itself an array or object is searched completely before its next sibling
// is tested. The first match wins, so a match nested under an early member
// shadows a same-named member appearing later at a shallower level. Returns
// the Unknown sentinel when no member named key exists anywhere.
//
// The traversal is iterative over an explicit stack, so a pathologically
// deep tree cannot exhaust the call stack here.
func (v Value) Get(key string) Value {
	if v.kind != Array && v.kind != Object {
		return Value{}
	}

	stack := arraystack.New()
	stack.Push(frame{val: v})
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(frame)

		if f.keyed {
			if f.key == key {
				return f.val
			}
		}

		switch f.val.kind {
		case Object:
			if f.keyed {
				// Descend before the next sibling: the sibling frames are
				// already deeper in the stack.
				stack.Push(frame{val: f.val})
				continue
			}
			for i := len(f.val.obj) - 1; i >= 0; i-- {
				m := f.val.obj[i]
				stack.Push(frame{key: m.Key, keyed: true, val: m.Value})
			}
		case Array:
			if f.keyed {
				stack.Push(frame{val: f.val})
				continue
			}
			for i := len(f.val.arr) - 1; i >= 0; i-- {
				elem := f.val.arr[i]
				if elem.kind == Array || elem.kind == Object {
					stack.Push(frame{val: elem})
				}
			}
		}
	}
	return Value{}
}
