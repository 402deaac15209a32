package linkedhashmap

// hashIndex maps keys to nodes through an array of bucket chains.
// It owns no nodes.
type hashIndex[K, V any] struct {
	buckets []*node[K, V]
	hash    hashFunc[K]
	equal   eqFunc[K]
}

func newHashIndex[K, V any](capacity int, hash hashFunc[K], equal eqFunc[K]) hashIndex[K, V] {
	return hashIndex[K, V]{
		buckets: make([]*node[K, V], capacity),
		hash:    hash,
		equal:   equal,
	}
}

func (h *hashIndex[K, V]) capacity() int {
	return len(h.buckets)
}

func (h *hashIndex[K, V]) bucketOf(key K, capacity int) int {
	return int(h.hash(key) % uintptr(capacity))
}

func (h *hashIndex[K, V]) locate(key K) *node[K, V] {
	for n := h.buckets[h.bucketOf(key, len(h.buckets))]; n != nil; n = n.chainNext {
		if h.equal(n.entry.key, key) {
			return n
		}
	}
	return nil
}

// link pushes n onto the head of its bucket chain.
func (h *hashIndex[K, V]) link(n *node[K, V]) {
	i := h.bucketOf(n.entry.key, len(h.buckets))
	n.chainNext = h.buckets[i]
	h.buckets[i] = n
}

// unlink removes n from its bucket chain by identity. It reports
// false when n is not on the chain its key hashes to, which is the
// case for erased nodes and nodes of another map.
func (h *hashIndex[K, V]) unlink(n *node[K, V]) bool {
	i := h.bucketOf(n.entry.key, len(h.buckets))
	var prev *node[K, V]
	for p := h.buckets[i]; p != nil; prev, p = p, p.chainNext {
		if p != n {
			continue
		}
		if prev == nil {
			h.buckets[i] = p.chainNext
		} else {
			prev.chainNext = p.chainNext
		}
		p.chainNext = nil
		return true
	}
	return false
}

// grow doubles the bucket count and rebuilds every chain from the
// order list.
func (h *hashIndex[K, V]) grow(first *node[K, V]) {
	h.buckets = rehash(first, len(h.buckets)<<1, h.bucketOf)
}

func (h *hashIndex[K, V]) clear() {
	for i := range h.buckets {
		h.buckets[i] = nil
	}
}

// rehash returns a bucket array of the given capacity holding every
// node reachable from first through the order list. Only chainNext
// links are rewritten.
func rehash[K, V any](first *node[K, V], capacity int, bucketOf func(key K, capacity int) int) []*node[K, V] {
	buckets := make([]*node[K, V], capacity)
	for n := first; n != nil; n = n.orderNext {
		i := bucketOf(n.entry.key, capacity)
		n.chainNext = buckets[i]
		buckets[i] = n
	}
	return buckets
}
