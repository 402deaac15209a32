package linkedhashmap

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equaler is implemented by keys and values that define their own
// equality.
type Equaler interface {
	Equal(v interface{}) bool
}

func equal(v1, v2 interface{}) bool {
	switch val := v1.(type) {
	case Equaler:
		return val.Equal(v2)
	default:
		return v1 == v2
	}
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// valueEqual compares values, which unlike keys need not be
// comparable with '=='.
func valueEqual(v1, v2 interface{}) bool {
	if val, ok := v1.(Equaler); ok {
		return val.Equal(v2)
	}
	return cmp.Equal(v1, v2, exportAll)
}
