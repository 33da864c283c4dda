// Package collectable describes keys that hash-backed stores can index:
// hashable for the lookup and comparable to resolve collisions.
package collectable

import (
	"errors"
	"fmt"
	"hash"

	"github.com/amp-labs/amp-indexedmap/compare"
	"github.com/amp-labs/amp-indexedmap/hashing"
)

// ErrUnsupportedType is returned when a wrapped value has no hash encoding.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// Collectable is a key usable by hash-backed stores.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

type comparableWrapper[T comparable] struct {
	value T
}

// UpdateHash encodes the wrapped value with the matching hashing.HashableX
// type. Narrow integer and float types are widened first, so their digest
// matches the 64-bit encoding of the same number.
func (w *comparableWrapper[T]) UpdateHash(h hash.Hash) error { //nolint:cyclop,varnamelen
	switch v := any(w.value).(type) {
	case string:
		return hashing.HashableString(v).UpdateHash(h)
	case bool:
		return hashing.HashableBool(v).UpdateHash(h)
	case int:
		return hashing.HashableInt(v).UpdateHash(h)
	case int8:
		return hashing.HashableInt64(v).UpdateHash(h)
	case int16:
		return hashing.HashableInt64(v).UpdateHash(h)
	case int32:
		return hashing.HashableInt64(v).UpdateHash(h)
	case int64:
		return hashing.HashableInt64(v).UpdateHash(h)
	case uint:
		return hashing.HashableUint64(v).UpdateHash(h)
	case uint8:
		return hashing.HashableUint64(v).UpdateHash(h)
	case uint16:
		return hashing.HashableUint64(v).UpdateHash(h)
	case uint32:
		return hashing.HashableUint64(v).UpdateHash(h)
	case uint64:
		return hashing.HashableUint64(v).UpdateHash(h)
	case float32:
		return hashing.HashableFloat64(v).UpdateHash(h)
	case float64:
		return hashing.HashableFloat64(v).UpdateHash(h)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func (w *comparableWrapper[T]) Equals(other T) bool {
	return w.value == other
}

// FromComparable wraps a comparable value as a Collectable. Strings, booleans
// and every numeric kind are supported; for anything else UpdateHash returns
// ErrUnsupportedType.
func FromComparable[T comparable](value T) Collectable[T] {
	return &comparableWrapper[T]{value: value}
}
