package linkedhashmap

import "github.com/emirpasic/gods/containers"

var _ containers.ReverseIteratorWithKey = (*Walker[int, int])(nil)

// Walker is a stateful iterator in the style of the gods containers.
// Unlike an Iterator it starts one before the first entry and reports
// each move with a bool, so it can be handed to code written against
// containers.IteratorWithKey. The map must not be changed while it is
// being walked.
type Walker[K, V any] struct {
	m    *Map[K, V]
	n    *node[K, V]
	past bool
}

// Walker returns a Walker positioned one before the first entry.
func (m *Map[K, V]) Walker() *Walker[K, V] {
	return &Walker[K, V]{m: m}
}

// Next moves to the next entry and reports whether there was one.
// The first call moves to the first entry.
func (w *Walker[K, V]) Next() bool {
	switch {
	case w.n != nil:
		w.n = w.n.orderNext
	case !w.past:
		w.n = w.m.order.first
	}
	w.past = w.n == nil
	return w.n != nil
}

// Prev moves to the previous entry and reports whether there was one.
// From past the end it moves to the last entry.
func (w *Walker[K, V]) Prev() bool {
	switch {
	case w.n != nil:
		w.n = w.n.orderPrev
	case w.past:
		w.n = w.m.order.last
	}
	w.past = false
	return w.n != nil
}

// Key returns the current key. It panics when the Walker is not on an
// entry.
func (w *Walker[K, V]) Key() interface{} {
	return w.entry().key
}

// Value returns the current value. It panics when the Walker is not
// on an entry.
func (w *Walker[K, V]) Value() interface{} {
	return w.entry().value
}

func (w *Walker[K, V]) entry() *Entry[K, V] {
	if w.n == nil {
		panic(errDerefEnd)
	}
	return &w.n.entry
}

// Begin resets the Walker to one before the first entry.
func (w *Walker[K, V]) Begin() {
	w.n, w.past = nil, false
}

// End moves the Walker one past the last entry.
func (w *Walker[K, V]) End() {
	w.n, w.past = nil, true
}

// First moves to the first entry and reports whether there was one.
func (w *Walker[K, V]) First() bool {
	w.Begin()
	return w.Next()
}

// Last moves to the last entry and reports whether there was one.
func (w *Walker[K, V]) Last() bool {
	w.End()
	return w.Prev()
}

// NextTo moves forward to the next entry satisfying f and reports
// whether one was found.
func (w *Walker[K, V]) NextTo(f func(key interface{}, value interface{}) bool) bool {
	for w.Next() {
		if f(w.Key(), w.Value()) {
			return true
		}
	}
	return false
}

// PrevTo moves back to the previous entry satisfying f and reports
// whether one was found.
func (w *Walker[K, V]) PrevTo(f func(key interface{}, value interface{}) bool) bool {
	for w.Prev() {
		if f(w.Key(), w.Value()) {
			return true
		}
	}
	return false
}
