package sizeof

import (
	"reflect"
	"sync"
	"unsafe"
)

func Slice[T any](v []T) uint64 {
	return 24 + uint64(unsafe.Sizeof(*new(T)))*uint64(len(v))
}

var pointerFree sync.Map // reflect.Type -> bool

// PointerFree reports whether values of T contain no pointers, so that
// copying one is a plain memory move without write barriers.
func PointerFree[T any]() bool {
	typ := reflect.TypeFor[T]()
	if v, ok := pointerFree.Load(typ); ok {
		return v.(bool)
	}
	free := walk(typ)
	pointerFree.Store(typ, free)
	return free
}

func walk(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true

	case reflect.Array:
		return typ.Len() == 0 || walk(typ.Elem())

	case reflect.Struct:
		for i := range typ.NumField() {
			if !walk(typ.Field(i).Type) {
				return false
			}
		}
		return true

	default:
		return false
	}
}
