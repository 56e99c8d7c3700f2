package assertly

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// isNil reports whether v is nil or a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// lengthOf returns len(v) for strings, slices, arrays, maps and channels.
func lengthOf(v any) (int, error) {
	if v == nil {
		return 0, errors.New("nil has no length")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), nil
	}
	return 0, errors.Errorf("%T has no length", v)
}

// funcName returns the qualified name of fn, trimmed of its import path
// directory, e.g. "strings.ToUpper".
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return "nil"
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return "unknown"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
