// Package linkedhashmap implements a mutable hash map that remembers
// the order in which keys were first inserted. Lookups go through a
// chained hash index while iteration follows a doubly linked list
// threaded through every entry, so both are cheap and neither
// disturbs the other.
//
// Re-inserting a key that is already present does not move it and
// does not replace its value. Use At or Index to change a value in
// place.
//
// A note about Key equality and hashing. By default keys are hashed
// with hash.Any and compared with their Equal method when they
// implement Equaler, so a key type may implement
// Equal(other interface{}) bool and Hash() uintptr to override them.
// Otherwise '==' is used with all its restrictions. The Hash and Equal
// options replace both collaborators outright.
//
// A Map is not safe for concurrent use.
package linkedhashmap
