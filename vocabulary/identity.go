package vocabulary

import "reflect"

// funcSymbolAddr returns f's pointer value as a uintptr, grounded the same
// way as element.elemAddr: kevinawalsh-datalog/src/datalog/datalog.go uses
// Go pointer identity (its id/cID helpers) as the hash-cons key rather than
// a manually assigned integer id.
func funcSymbolAddr(f *FuncSymbol) uintptr {
	return reflect.ValueOf(f).Pointer()
}
