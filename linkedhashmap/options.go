package linkedhashmap

import (
	"math/rand"

	"jsouthworth.net/go/hash"
)

const (
	defaultCapacity = 10
	loadFactor      = 0.75
)

type hashFunc[K any] func(k K) uintptr
type eqFunc[K any] func(k1, k2 K) bool

type mapOptions[K any] struct {
	hash     hashFunc[K]
	equal    eqFunc[K]
	capacity int
}

// Option is a type that allows changes to pluggable parts of the
// Map implementation.
type Option[K any] func(*mapOptions[K])

// Hash is an option to the Empty function that replaces the default
// key hash, which is hash.Any seeded per map. The function must be
// deterministic and must agree with the key equality.
func Hash[K any](fn func(k K) uintptr) Option[K] {
	return func(o *mapOptions[K]) {
		o.hash = fn
	}
}

// Equal is an option to the Empty function that will allow one to
// specify a different key equality instead of the default, which
// honours Equaler and otherwise uses '=='. Keys that are equal must
// hash equal.
func Equal[K any](eq func(k1, k2 K) bool) Option[K] {
	return func(o *mapOptions[K]) {
		o.equal = eq
	}
}

// InitialCapacity sets the number of buckets the map starts with.
// Values below one select the default of 10.
func InitialCapacity[K any](n int) Option[K] {
	return func(o *mapOptions[K]) {
		o.capacity = n
	}
}

func defaultOptions[K any]() mapOptions[K] {
	seed := uintptr(rand.Uint64())
	return mapOptions[K]{
		hash: func(k K) uintptr {
			return hash.Any(k, seed)
		},
		equal: func(k1, k2 K) bool {
			return equal(k1, k2)
		},
		capacity: defaultCapacity,
	}
}

func buildOptions[K any](options []Option[K]) mapOptions[K] {
	opts := defaultOptions[K]()
	for _, opt := range options {
		opt(&opts)
	}
	if opts.capacity < 1 {
		opts.capacity = defaultCapacity
	}
	return opts
}

// reachesLoad reports whether size entries in capacity buckets are at
// or above the load factor threshold.
func reachesLoad(size, capacity int) bool {
	return float64(size) >= float64(capacity)*loadFactor
}

// capacityFor returns the smallest doubling of initial that holds
// size entries below the load factor threshold.
func capacityFor(size, initial int) int {
	capacity := initial
	for reachesLoad(size, capacity) {
		capacity <<= 1
	}
	return capacity
}
