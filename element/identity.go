package element

import "reflect"

// elemAddr returns a stable identity for an *Element pointer, used to key
// the compound-element intern table on "argument identity sequence" (spec
// §4.1) without requiring slices (non-comparable) as map keys directly.
//
// Grounded on kevinawalsh-datalog/src/datalog/datalog.go's id/cID pattern
// (reflect.ValueOf(p).Pointer() as a Go stand-in for pointer identity,
// since Go offers no direct way to hash an arbitrary pointer into a map
// key).
func elemAddr(e *Element) uintptr {
	return reflect.ValueOf(e).Pointer()
}
