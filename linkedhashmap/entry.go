package linkedhashmap

import "fmt"

// Entry is a map entry. The key is fixed once the entry is created;
// the value may be changed in place.
type Entry[K, V any] struct {
	key   K
	value V
}

// EntryNew returns an Entry.
func EntryNew[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

// Key returns the key of the entry.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Value returns the value of the entry.
func (e Entry[K, V]) Value() V {
	return e.value
}

// SetValue replaces the value of the entry.
func (e *Entry[K, V]) SetValue(value V) {
	e.value = value
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.key, e.value)
}
