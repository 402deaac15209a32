package linkedhashmap

// node holds one entry. It sits on exactly one bucket chain and at
// exactly one position of the order list for as long as it is live.
// Only the order list owns nodes; chains merely index them.
type node[K, V any] struct {
	entry     Entry[K, V]
	chainNext *node[K, V]
	orderNext *node[K, V]
	orderPrev *node[K, V]
}

// orderList threads live nodes in insertion order. A nil first
// means the list is empty.
type orderList[K, V any] struct {
	first *node[K, V]
	last  *node[K, V]
}

func (l *orderList[K, V]) append(n *node[K, V]) {
	n.orderPrev = l.last
	n.orderNext = nil
	if l.last == nil {
		l.first = n
	} else {
		l.last.orderNext = n
	}
	l.last = n
}

// unlink removes a live node and clears its links so that a stale
// cursor cannot walk back into the list.
func (l *orderList[K, V]) unlink(n *node[K, V]) {
	if n.orderPrev == nil {
		l.first = n.orderNext
	} else {
		n.orderPrev.orderNext = n.orderNext
	}
	if n.orderNext == nil {
		l.last = n.orderPrev
	} else {
		n.orderNext.orderPrev = n.orderPrev
	}
	n.orderNext = nil
	n.orderPrev = nil
	n.chainNext = nil
}

// release unlinks every node front to back and leaves the list empty.
func (l *orderList[K, V]) release() {
	for n := l.first; n != nil; {
		next := n.orderNext
		n.orderNext = nil
		n.orderPrev = nil
		n.chainNext = nil
		n = next
	}
	l.first = nil
	l.last = nil
}
