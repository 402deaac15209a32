package linkedhashmap

import (
	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfBound is returned when a key is not in the map or
	// when Erase is given a cursor that does not denote a live entry
	// of the map.
	ErrIndexOutOfBound = errors.New("index out of bound")

	// ErrInvalidIterator is returned when a cursor is moved past
	// either end of the map.
	ErrInvalidIterator = errors.New("invalid iterator")
)

var errDerefEnd = errors.New("dereference of end iterator")
var errRangeSig = errors.New("Range requires a function: func(k kT, v vT) bool or func(k kT, v vT)")

func missingKey(key interface{}) error {
	return errors.WithMessagef(ErrIndexOutOfBound, "key %v", key)
}
