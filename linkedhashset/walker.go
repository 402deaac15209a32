package linkedhashset

import (
	"github.com/emirpasic/gods/containers"
	"jsouthworth.net/go/linked/linkedhashmap"
)

var _ containers.ReverseIteratorWithIndex = (*Walker[int])(nil)

// Walker is a stateful iterator over the elements in the style of the
// gods containers. Index counts from 0 at the first element, -1 before
// it and Length past the last one. The set must not be changed while
// it is being walked.
type Walker[T any] struct {
	s       *Set[T]
	entries *linkedhashmap.Walker[T, struct{}]
	index   int
}

// Walker returns a Walker positioned one before the first element.
func (s *Set[T]) Walker() *Walker[T] {
	return &Walker[T]{
		s:       s,
		entries: s.backingMap.Walker(),
		index:   -1,
	}
}

// Next moves to the next element and reports whether there was one.
func (w *Walker[T]) Next() bool {
	if w.entries.Next() {
		w.index++
		return true
	}
	w.index = w.s.Length()
	return false
}

// Prev moves to the previous element and reports whether there was
// one.
func (w *Walker[T]) Prev() bool {
	if w.entries.Prev() {
		w.index--
		return true
	}
	w.index = -1
	return false
}

// Value returns the current element.
func (w *Walker[T]) Value() interface{} {
	return w.entries.Key()
}

// Index returns the position of the current element.
func (w *Walker[T]) Index() int {
	return w.index
}

// Begin resets the Walker to one before the first element.
func (w *Walker[T]) Begin() {
	w.entries.Begin()
	w.index = -1
}

// End moves the Walker one past the last element.
func (w *Walker[T]) End() {
	w.entries.End()
	w.index = w.s.Length()
}

// First moves to the first element and reports whether there was one.
func (w *Walker[T]) First() bool {
	w.Begin()
	return w.Next()
}

// Last moves to the last element and reports whether there was one.
func (w *Walker[T]) Last() bool {
	w.End()
	return w.Prev()
}

// NextTo moves forward to the next element satisfying f and reports
// whether one was found.
func (w *Walker[T]) NextTo(f func(index int, value interface{}) bool) bool {
	for w.Next() {
		if f(w.Index(), w.Value()) {
			return true
		}
	}
	return false
}

// PrevTo moves back to the previous element satisfying f and reports
// whether one was found.
func (w *Walker[T]) PrevTo(f func(index int, value interface{}) bool) bool {
	for w.Prev() {
		if f(w.Index(), w.Value()) {
			return true
		}
	}
	return false
}
