// Package linkedhashset implements a mutable set on top of
// linkedhashmap that iterates in the order elements were first added.
package linkedhashset // import "jsouthworth.net/go/linked/linkedhashset"

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/containers"
	"jsouthworth.net/go/linked/linkedhashmap"
)

var errRangeSig = errors.New("Range requires a function: func(v vT) bool or func(v vT)")

// Set is a mutable insertion ordered set.
type Set[T any] struct {
	backingMap *linkedhashmap.Map[T, struct{}]
}

// Empty returns a new empty set. The options are those of
// linkedhashmap and apply to the elements.
func Empty[T any](options ...linkedhashmap.Option[T]) *Set[T] {
	return &Set[T]{
		backingMap: linkedhashmap.Empty[T, struct{}](options...),
	}
}

// New returns a set containing the supplied elements in order.
func New[T any](elems ...T) *Set[T] {
	s := Empty[T]()
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

// From will convert many different go types to a set.
// The mechanisms are described below.
//
// *Set[T]:
//    A copy of the set is returned.
// []T:
//    The elements are added in slice order.
// containers.IteratorWithIndex:
//    The iterator is reset with Begin and its values of type T are added. This accepts a Walker
//    as well as the iterators of the gods lists and sets.
// containers.IteratorWithKey:
//    The iterator is reset with Begin and its keys of type T are added.
// map[T]vT:
//    Reflection is used to add the keys of the map in go's map iteration order.
// Anything else produces an empty set.
func From[T any](value interface{}) *Set[T] {
	switch v := value.(type) {
	case *Set[T]:
		return v.Copy()
	case []T:
		return New(v...)
	case containers.IteratorWithIndex:
		return setFromIterator[T](v.Begin, v.Next, v.Value)
	case containers.IteratorWithKey:
		return setFromIterator[T](v.Begin, v.Next, v.Key)
	default:
		return setFromReflection[T](value)
	}
}

func setFromIterator[T any](begin func(), next func() bool, elem func() interface{}) *Set[T] {
	out := Empty[T]()
	for begin(); next(); {
		if e, ok := elem().(T); ok {
			out.Add(e)
		}
	}
	return out
}

func setFromReflection[T any](value interface{}) *Set[T] {
	out := Empty[T]()
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Map {
		return out
	}
	for _, key := range v.MapKeys() {
		if elem, ok := key.Interface().(T); ok {
			out.Add(elem)
		}
	}
	return out
}

// Add adds an element to the end of the set and reports whether it
// was absent. Adding an element already present does not move it.
func (s *Set[T]) Add(elem T) bool {
	_, added := s.backingMap.Insert(elem, struct{}{})
	return added
}

// Contains returns true if the element is in the set, false otherwise.
func (s *Set[T]) Contains(elem T) bool {
	return s.backingMap.Contains(elem)
}

// Delete removes an element from the set and reports whether it was
// present.
func (s *Set[T]) Delete(elem T) bool {
	return s.backingMap.Delete(elem)
}

// Length returns the number of elements in the set.
func (s *Set[T]) Length() int {
	return s.backingMap.Length()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.backingMap.IsEmpty()
}

// Clear removes every element.
func (s *Set[T]) Clear() {
	s.backingMap.Clear()
}

// Elements returns the elements in insertion order.
func (s *Set[T]) Elements() []T {
	return s.backingMap.Keys()
}

// Copy returns an independent set with the same elements in the same
// order.
func (s *Set[T]) Copy() *Set[T] {
	return &Set[T]{backingMap: s.backingMap.Copy()}
}

// All returns an iterator over the elements in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range s.backingMap.All() {
			if !yield(elem) {
				return
			}
		}
	}
}

// Range calls the passed in function on each element of the set in
// insertion order. The function passed in may be of many types:
//
// func(value T) bool:
//    Takes an element and returns if the loop should continue.
// func(value T):
//    Takes an element.
// func(value vT) bool:
//    Takes a value of another type and returns if the loop should continue.
//    Is called with reflection and will panic if the type is incorrect.
// func(value vT)
//    Takes a value of another type.
//    Is called with reflection and will panic if the type is incorrect.
// Range will panic if passed anything that doesn't match one of these signatures
func (s *Set[T]) Range(do interface{}) {
	var rangefn func(T, struct{}) bool
	switch fn := do.(type) {
	case func(value T) bool:
		rangefn = func(elem T, _ struct{}) bool {
			return fn(elem)
		}
	case func(value T):
		rangefn = func(elem T, _ struct{}) bool {
			fn(elem)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 1 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		rangefn = func(elem T, _ struct{}) bool {
			cont := true
			outs := rv.Call([]reflect.Value{
				reflect.ValueOf(elem)})
			if len(outs) != 0 {
				cont = outs[0].Interface().(bool)
			}
			return cont
		}
	}
	s.backingMap.Range(rangefn)
}

// Equal reports whether o is a set with equal elements in the same
// order.
func (s *Set[T]) Equal(o interface{}) bool {
	other, ok := o.(*Set[T])
	if !ok {
		return false
	}
	return s.backingMap.Equal(other.backingMap)
}

// String returns a string serialization of the set.
func (s *Set[T]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	s.Range(func(elem T) {
		fmt.Fprintf(&b, "%v ", elem)
	})
	fmt.Fprint(&b, "}")
	return b.String()
}
