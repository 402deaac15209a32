package linkedhashmap

// Iterator is a bidirectional cursor over the entries of a Map in
// insertion order. The zero position past the last entry is the end
// cursor returned by Map.End.
//
// Iterators are plain values and compare with == by position.
// Inserting entries or growing the map never invalidates an
// Iterator; erasing an entry invalidates only the cursors positioned
// on that entry.
type Iterator[K, V any] struct {
	m *Map[K, V]
	n *node[K, V]
}

// Entry returns the entry under the cursor. The entry's value may be
// changed through it. Entry panics on the end cursor.
func (i Iterator[K, V]) Entry() *Entry[K, V] {
	if i.n == nil {
		panic(errDerefEnd)
	}
	return &i.n.entry
}

// Key returns the key under the cursor.
func (i Iterator[K, V]) Key() K {
	return i.Entry().Key()
}

// Value returns the value under the cursor.
func (i Iterator[K, V]) Value() V {
	return i.Entry().Value()
}

// SetValue replaces the value under the cursor in place.
func (i Iterator[K, V]) SetValue(value V) {
	i.Entry().SetValue(value)
}

// IsEnd reports whether the cursor is past the last entry.
func (i Iterator[K, V]) IsEnd() bool {
	return i.n == nil
}

// Next advances the cursor. It fails with ErrInvalidIterator if the
// cursor is already at the end.
func (i *Iterator[K, V]) Next() error {
	n, err := advance(i.n)
	if err != nil {
		return err
	}
	i.n = n
	return nil
}

// Prev moves the cursor back one entry. It fails with
// ErrInvalidIterator if the cursor is on the first entry, or at the
// end of an empty map.
func (i *Iterator[K, V]) Prev() error {
	n, err := retreat(i.m, i.n)
	if err != nil {
		return err
	}
	i.n = n
	return nil
}

// Const returns a read-only cursor at the same position.
func (i Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{m: i.m, n: i.n}
}

// Equal reports whether o is an Iterator or ConstIterator at the
// same position.
func (i Iterator[K, V]) Equal(o interface{}) bool {
	return sameNode(i.m, i.n, o)
}

// ConstIterator is a read-only Iterator. It can be made from an
// Iterator but not the other way around.
type ConstIterator[K, V any] struct {
	m *Map[K, V]
	n *node[K, V]
}

// ConstFrom widens a mutable cursor to a read-only one.
func ConstFrom[K, V any](i Iterator[K, V]) ConstIterator[K, V] {
	return i.Const()
}

// Entry returns a copy of the entry under the cursor. It panics on
// the end cursor.
func (i ConstIterator[K, V]) Entry() Entry[K, V] {
	if i.n == nil {
		panic(errDerefEnd)
	}
	return i.n.entry
}

// Key returns the key under the cursor.
func (i ConstIterator[K, V]) Key() K {
	return i.Entry().Key()
}

// Value returns the value under the cursor.
func (i ConstIterator[K, V]) Value() V {
	return i.Entry().Value()
}

// IsEnd reports whether the cursor is past the last entry.
func (i ConstIterator[K, V]) IsEnd() bool {
	return i.n == nil
}

// Next advances the cursor. It fails with ErrInvalidIterator if the
// cursor is already at the end.
func (i *ConstIterator[K, V]) Next() error {
	n, err := advance(i.n)
	if err != nil {
		return err
	}
	i.n = n
	return nil
}

// Prev moves the cursor back one entry. It fails with
// ErrInvalidIterator if the cursor is on the first entry, or at the
// end of an empty map.
func (i *ConstIterator[K, V]) Prev() error {
	n, err := retreat(i.m, i.n)
	if err != nil {
		return err
	}
	i.n = n
	return nil
}

// Equal reports whether o is an Iterator or ConstIterator at the
// same position.
func (i ConstIterator[K, V]) Equal(o interface{}) bool {
	return sameNode(i.m, i.n, o)
}

func advance[K, V any](n *node[K, V]) (*node[K, V], error) {
	if n == nil {
		return nil, ErrInvalidIterator
	}
	return n.orderNext, nil
}

func retreat[K, V any](m *Map[K, V], n *node[K, V]) (*node[K, V], error) {
	if n == nil {
		if m == nil || m.order.last == nil {
			return nil, ErrInvalidIterator
		}
		return m.order.last, nil
	}
	if n.orderPrev == nil {
		return nil, ErrInvalidIterator
	}
	return n.orderPrev, nil
}

// sameNode compares positions. End cursors only match end cursors of
// the same map since they carry no node.
func sameNode[K, V any](m *Map[K, V], n *node[K, V], o interface{}) bool {
	switch other := o.(type) {
	case Iterator[K, V]:
		return other.n == n && (n != nil || other.m == m)
	case ConstIterator[K, V]:
		return other.n == n && (n != nil || other.m == m)
	case *Iterator[K, V]:
		return other != nil && sameNode(m, n, *other)
	case *ConstIterator[K, V]:
		return other != nil && sameNode(m, n, *other)
	default:
		return false
	}
}
