package linkedhashmap // import "jsouthworth.net/go/linked/linkedhashmap"

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/pkg/errors"
)

// Map is a mutable hash map that iterates in insertion order.
type Map[K, V any] struct {
	size  int
	index hashIndex[K, V]
	order orderList[K, V]
}

// Empty returns a new empty map, one may supply options for the map
// by using one of the option generating functions and providing that
// to Empty.
func Empty[K, V any](options ...Option[K]) *Map[K, V] {
	opts := buildOptions(options)
	return &Map[K, V]{
		index: newHashIndex[K, V](opts.capacity, opts.hash, opts.equal),
	}
}

// New returns a map holding the supplied entries. Later entries with
// a key already seen are ignored.
func New[K, V any](entries ...Entry[K, V]) *Map[K, V] {
	out := Empty[K, V]()
	for _, e := range entries {
		out.InsertEntry(e)
	}
	return out
}

// From will convert many different go types to a map.
// The mechanisms are described below.
//
// *Map[K, V]:
//    A copy of the map is returned.
// []Entry[K, V]:
//    The entries are inserted in slice order.
// map[kT]vT:
//    Reflection is used to insert the entries in go's map iteration order, which is random. Entries whose key or value is not a K or V are skipped.
// containers.IteratorWithKey:
//    The iterator is reset with Begin and walked to the end. Pairs whose key or value is not a K or V are skipped.
//    This accepts a Walker as well as the iterators of the gods maps.
// Anything else produces an empty map.
func From[K, V any](value interface{}) *Map[K, V] {
	switch v := value.(type) {
	case *Map[K, V]:
		return v.Copy()
	case []Entry[K, V]:
		return New(v...)
	case containers.IteratorWithKey:
		return mapFromIterator[K, V](v)
	default:
		return mapFromReflection[K, V](value)
	}
}

func mapFromReflection[K, V any](value interface{}) *Map[K, V] {
	out := Empty[K, V]()
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Map {
		return out
	}
	entries := v.MapRange()
	for entries.Next() {
		key, kok := entries.Key().Interface().(K)
		val, vok := entries.Value().Interface().(V)
		if kok && vok {
			out.Insert(key, val)
		}
	}
	return out
}

func mapFromIterator[K, V any](it containers.IteratorWithKey) *Map[K, V] {
	out := Empty[K, V]()
	for it.Begin(); it.Next(); {
		key, kok := it.Key().(K)
		val, vok := it.Value().(V)
		if kok && vok {
			out.Insert(key, val)
		}
	}
	return out
}

// At returns a pointer to the value stored for key. The value may be
// modified through the pointer. If the key is absent an error
// wrapping ErrIndexOutOfBound is returned and the map is unchanged.
func (m *Map[K, V]) At(key K) (*V, error) {
	n := m.index.locate(key)
	if n == nil {
		return nil, missingKey(key)
	}
	return &n.entry.value, nil
}

// Get returns the value stored for key. Unlike Index it never
// inserts; an absent key yields an error wrapping ErrIndexOutOfBound.
func (m *Map[K, V]) Get(key K) (V, error) {
	n := m.index.locate(key)
	if n == nil {
		var zero V
		return zero, missingKey(key)
	}
	return n.entry.value, nil
}

// Index returns a pointer to the value stored for key. If the key is
// absent a new entry holding the zero value is appended first.
func (m *Map[K, V]) Index(key K) *V {
	if n := m.index.locate(key); n != nil {
		return &n.entry.value
	}
	var zero V
	n := m.insertNew(key, zero)
	return &n.entry.value
}

// Insert adds the key and value to the end of the map. If the key is
// already present nothing changes and the cursor of the existing
// entry is returned with false.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	if n := m.index.locate(key); n != nil {
		return Iterator[K, V]{m: m, n: n}, false
	}
	n := m.insertNew(key, value)
	return Iterator[K, V]{m: m, n: n}, true
}

// InsertEntry is Insert taking an Entry.
func (m *Map[K, V]) InsertEntry(e Entry[K, V]) (Iterator[K, V], bool) {
	return m.Insert(e.key, e.value)
}

// insertNew links a node for a key known to be absent, growing the
// index first if the new size would reach the load factor.
func (m *Map[K, V]) insertNew(key K, value V) *node[K, V] {
	if reachesLoad(m.size+1, m.index.capacity()) {
		m.index.grow(m.order.first)
	}
	n := &node[K, V]{entry: Entry[K, V]{key: key, value: value}}
	m.index.link(n)
	m.order.append(n)
	m.size++
	return n
}

// Erase removes the entry under the cursor. The end cursor, a cursor
// of another map, and a cursor whose entry was already removed all
// yield an error wrapping ErrIndexOutOfBound and leave the map
// unchanged.
func (m *Map[K, V]) Erase(it Iterator[K, V]) error {
	if it.n == nil {
		return errors.WithMessage(ErrIndexOutOfBound, "erase of end iterator")
	}
	if it.m != m || !m.index.unlink(it.n) {
		return errors.WithMessage(ErrIndexOutOfBound, "iterator does not belong to map")
	}
	m.order.unlink(it.n)
	m.size--
	return nil
}

// Delete removes key from the map and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	n := m.index.locate(key)
	if n == nil {
		return false
	}
	m.index.unlink(n)
	m.order.unlink(n)
	m.size--
	return true
}

// Find returns a cursor to the entry for key, or End if absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{m: m, n: m.index.locate(key)}
}

// CFind is the read-only form of Find.
func (m *Map[K, V]) CFind(key K) ConstIterator[K, V] {
	return m.Find(key).Const()
}

// Count returns the number of entries with key, which is 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	if m.index.locate(key) == nil {
		return 0
	}
	return 1
}

// Contains will test if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.index.locate(key) != nil
}

// Length returns the number of entries in the map.
func (m *Map[K, V]) Length() int {
	return m.size
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Capacity returns the current number of hash buckets.
func (m *Map[K, V]) Capacity() int {
	return m.index.capacity()
}

// Clear removes every entry. The bucket count is kept.
func (m *Map[K, V]) Clear() {
	m.order.release()
	m.index.clear()
	m.size = 0
}

// Begin returns a cursor on the oldest entry, or End if the map is
// empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m: m, n: m.order.first}
}

// End returns the cursor past the newest entry.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m}
}

// CBegin is the read-only form of Begin.
func (m *Map[K, V]) CBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{m: m, n: m.order.first}
}

// CEnd is the read-only form of End.
func (m *Map[K, V]) CEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{m: m}
}

// Copy returns an independent map with the same entries in the same
// order. The bucket count is the smallest doubling of the default
// capacity that holds the entries; neither the bucket count of m nor
// its InitialCapacity carries over. Values are copied by assignment.
func (m *Map[K, V]) Copy() *Map[K, V] {
	out := &Map[K, V]{}
	out.rebuildFrom(m)
	return out
}

// Assign replaces the contents of m with a copy of other, including
// other's hash and equality functions. The bucket count is sized as
// for Copy. Assigning a map to itself does nothing. The copy is built
// before m is touched so a panicking hash function leaves m as it was.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		return
	}
	var fresh Map[K, V]
	fresh.rebuildFrom(other)
	m.order.release()
	m.index.clear()
	*m = fresh
}

// rebuildFrom fills an empty m with copies of src's entries in src's
// order, sizing the index up front so no growth happens midway.
func (m *Map[K, V]) rebuildFrom(src *Map[K, V]) {
	capacity := capacityFor(src.size, defaultCapacity)
	m.index = newHashIndex[K, V](capacity, src.index.hash, src.index.equal)
	for p := src.order.first; p != nil; p = p.orderNext {
		n := &node[K, V]{entry: p.entry}
		m.index.link(n)
		m.order.append(n)
	}
	m.size = src.size
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	for n := m.order.first; n != nil; n = n.orderNext {
		out = append(out, n.entry.key)
	}
	return out
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.size)
	for n := m.order.first; n != nil; n = n.orderNext {
		out = append(out, n.entry.value)
	}
	return out
}

// All returns an iterator over the entries in insertion order for use
// with range loops. The callback may change the current value with At
// but must not insert or erase other entries.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.order.first; n != nil; {
			next := n.orderNext
			if !yield(n.entry.key, n.entry.value) {
				return
			}
			n = next
		}
	}
}

// Range will loop over the entries in the Map in insertion order and
// call 'do' on each entry. The 'do' function may be of many types:
//
// func(key K, value V) bool:
//    Takes typed keys and values and returns if the loop should continue.
// func(key K, value V):
//    Takes typed keys and values.
// func(entry *Entry[K, V]) bool:
//    Takes the Entry and returns if the loop should continue.
//    The value may be modified through the entry.
// func(entry *Entry[K, V]):
//    Takes the Entry.
// func(k kT, v vT) bool
//    Takes a key of key type and a value of value type and returns if the loop should contiune.
//    Is called with reflection and will panic if the kT and vT types are incorrect.
// func(k kT, v vT)
//    Takes a key of key type and a value of value type.
//    Is called with reflection and will panic if the kT and vT types are incorrect.
// Range will panic if passed anything not matching these signatures.
func (m *Map[K, V]) Range(do interface{}) {
	fn := genRangeFunc[K, V](do)
	for n := m.order.first; n != nil; {
		next := n.orderNext
		if !fn(&n.entry) {
			return
		}
		n = next
	}
}

func genRangeFunc[K, V any](do interface{}) func(*Entry[K, V]) bool {
	switch fn := do.(type) {
	case func(key K, value V) bool:
		return func(entry *Entry[K, V]) bool {
			return fn(entry.key, entry.value)
		}
	case func(key K, value V):
		return func(entry *Entry[K, V]) bool {
			fn(entry.key, entry.value)
			return true
		}
	case func(e *Entry[K, V]) bool:
		return fn
	case func(e *Entry[K, V]):
		return func(entry *Entry[K, V]) bool {
			fn(entry)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 2 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		return func(entry *Entry[K, V]) bool {
			outs := rv.Call([]reflect.Value{
				argOf(rt.In(0), entry.key),
				argOf(rt.In(1), entry.value)})
			if len(outs) != 0 {
				return outs[0].Bool()
			}
			return true
		}
	}
}

// argOf passes x by its dynamic type so an interface typed key or
// value can reach a concretely typed parameter.
func argOf(in reflect.Type, x interface{}) reflect.Value {
	if x == nil {
		return reflect.Zero(in)
	}
	return reflect.ValueOf(x)
}

// Equal tests if two maps hold the same keys with equal values in the
// same order. Values are compared with their Equal method when they
// implement Equaler and with go-cmp otherwise. Equal implements
// Equaler which allows for deep comparisons when there are maps of
// maps.
func (m *Map[K, V]) Equal(o interface{}) bool {
	other, ok := o.(*Map[K, V])
	if !ok {
		return false
	}
	if m == other {
		return true
	}
	if m.size != other.size {
		return false
	}
	for a, b := m.order.first, other.order.first; a != nil; a, b = a.orderNext, b.orderNext {
		if !m.index.equal(a.entry.key, b.entry.key) ||
			!valueEqual(a.entry.value, b.entry.value) {
			return false
		}
	}
	return true
}

// String returns a string representation of the map.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	for n := m.order.first; n != nil; n = n.orderNext {
		fmt.Fprintf(&b, "%s ", n.entry)
	}
	fmt.Fprint(&b, "}")
	return b.String()
}
