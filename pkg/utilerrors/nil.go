package utilerrors

import "reflect"

// isNil reports whether obj is nil, including typed nils stored in an
// interface (nil maps, pointers, slices and the like).
func isNil(obj any) bool {
	if obj == nil {
		return true
	}

	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	default:
		return false
	}
}
