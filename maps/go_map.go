package maps

import (
	"hash"
	"iter"

	"github.com/amp-labs/amp-indexedmap/collectable"
)

// Key adapts a comparable Go value to collectable.Collectable so it can be used
// with NewHashMap.
//
//	m := maps.NewHashMap[maps.Key[string], int](hashing.Sha256)
//	_ = m.Add(maps.Key[string]{Key: "count"}, 42)
type Key[T comparable] struct {
	Key T
}

// UpdateHash hashes the wrapped value via collectable.FromComparable.
func (m Key[T]) UpdateHash(h hash.Hash) error {
	return collectable.FromComparable(m.Key).UpdateHash(h)
}

// Equals compares the wrapped values with ==.
func (m Key[T]) Equals(other Key[T]) bool {
	return m.Key == other.Key
}

// NewGoMap creates a Map backed directly by a native Go map. It never reports
// hash collisions and is the cheapest store for comparable keys.
func NewGoMap[K comparable, V any]() Map[K, V] {
	return NewGoMapWithSize[K, V](0)
}

// NewGoMapWithSize is NewGoMap with room pre-allocated for size entries.
// A negative size is treated as zero.
func NewGoMapWithSize[K comparable, V any](size int) Map[K, V] {
	return goMap[K, V](make(map[K]V, max(size, 0)))
}

// FromGoMap copies m into a new native store. Returns nil for a nil map.
func FromGoMap[K comparable, V any](m map[K]V) Map[K, V] {
	if m == nil {
		return nil
	}

	out := make(goMap[K, V], len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// ToGoMap copies the entries of m into a native Go map. Returns nil for a nil Map.
func ToGoMap[K comparable, V any](m Map[K, V]) map[K]V {
	if m == nil {
		return nil
	}

	out := make(map[K]V, m.Size())

	for k, v := range m.Seq() {
		out[k] = v
	}

	return out
}

type goMap[K comparable, V any] map[K]V

var _ Map[string, int] = goMap[string, int](nil)

func (g goMap[K, V]) Get(key K) (V, bool, error) {
	value, ok := g[key]

	return value, ok, nil
}

func (g goMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	if value, ok := g[key]; ok {
		return value, nil
	}

	return defaultValue, nil
}

func (g goMap[K, V]) Add(key K, value V) error {
	g[key] = value

	return nil
}

func (g goMap[K, V]) Remove(key K) error {
	delete(g, key)

	return nil
}

func (g goMap[K, V]) Clear() {
	clear(g)
}

func (g goMap[K, V]) Contains(key K) (bool, error) {
	_, ok := g[key]

	return ok, nil
}

func (g goMap[K, V]) Size() int {
	return len(g)
}

func (g goMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range g {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (g goMap[K, V]) Clone() Map[K, V] {
	out := make(goMap[K, V], len(g))
	for k, v := range g {
		out[k] = v
	}

	return out
}
