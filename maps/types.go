// Package maps provides key-value stores and IndexedMap, a store wrapper that
// adds positional access in insertion order.
package maps

import "iter"

// KeyValuePair is one entry of a map. IndexedMap.Entries yields it together
// with the entry's position.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// Map is the key-value store an IndexedMap is built on. Keys are unique;
// Add overwrites. Hash-backed implementations may return ErrHashCollision
// from any method that hashes a key.
//
// Implementations are not safe for concurrent use unless documented otherwise.
type Map[K any, V any] interface {
	// Get returns the value for key with found=true, or the zero value with
	// found=false when key is absent.
	Get(key K) (value V, found bool, err error)

	// GetOrElse returns the value for key, or defaultValue when key is absent.
	GetOrElse(key K, defaultValue V) (value V, err error)

	// Add inserts key or replaces its value.
	Add(key K, value V) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key K) error

	// Clear removes every entry.
	Clear()

	// Contains reports whether key is present.
	Contains(key K) (bool, error)

	// Size returns the number of entries.
	Size() int

	// Seq ranges over all entries. Order is unspecified.
	Seq() iter.Seq2[K, V]

	// Clone returns a shallow copy. Keys and values are not deep-copied.
	Clone() Map[K, V]
}
