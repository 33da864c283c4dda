package maps

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-indexedmap/collectable"
	errors2 "github.com/amp-labs/amp-indexedmap/errors"
	"github.com/amp-labs/amp-indexedmap/hashing"
	"github.com/amp-labs/amp-indexedmap/optional"
	"github.com/amp-labs/amp-indexedmap/zero"
)

// IndexedMap is a Map that also remembers the order of its insertions, so
// keys and values can be addressed by position. It is meant for list-adapter
// code that renders "row i" of a keyed collection.
//
// Every Put appends one position, even when the key is already present, and
// positions are never removed: Remove and Clear only affect the underlying
// store. A position whose key has left the store is stale, and GetValue
// reports it as None. Compact drops stale and duplicate positions on request.
//
// Thread-safety: an IndexedMap is not safe for concurrent use.
//
//nolint:interfacebloat // positional API on top of the full Map surface
type IndexedMap[K any, V any] interface {
	slog.LogValuer

	// Put stores value under key and appends key as a new position. It returns
	// the value previously stored under key, or None if there was none.
	// If the store rejects the write, nothing is recorded.
	Put(key K, value V) (optional.Value[V], error)

	// Add is Put without the previous value.
	Add(key K, value V) error

	// PutAll puts every entry of entries in order, stopping at the first error.
	PutAll(entries iter.Seq2[K, V]) error

	// PutAllBestEffort puts every entry of entries in order. Failed entries are
	// skipped and their errors returned joined.
	PutAllBestEffort(entries iter.Seq2[K, V]) error

	// GetKey returns the key recorded at position. It returns ErrIndexOutOfRange
	// unless 0 <= position < Len().
	GetKey(position int) (K, error)

	// MustGetKey is GetKey for callers that have already checked position.
	// It panics on an out-of-range position.
	MustGetKey(position int) K

	// GetValue returns the current value of the key recorded at position, or
	// None if that key is no longer in the store. It returns ErrIndexOutOfRange
	// unless 0 <= position < Len().
	GetValue(position int) (optional.Value[V], error)

	// Len returns the number of recorded positions, which is the number of
	// successful Puts. It can exceed Size.
	Len() int

	// IndexOf returns the first position holding key.
	IndexOf(key K) (position int, found bool, err error)

	// Positions ranges over every position and its key, stale ones included.
	Positions() iter.Seq2[int, K]

	// Entries ranges over positions whose key is still stored, yielding the
	// position and the key's current value. Stale positions are skipped but
	// the yielded positions stay the recorded ones.
	Entries() iter.Seq2[int, KeyValuePair[K, V]]

	// Stale counts positions that repeat an earlier position's key or whose
	// key is no longer stored.
	Stale() (int, error)

	// Compact drops stale positions, keeping the first position of every key
	// that is still stored, and returns how many positions were dropped.
	Compact() (int, error)

	// Get returns the value stored under key.
	Get(key K) (value V, found bool, err error)

	// GetOrElse returns the value stored under key, or defaultValue.
	GetOrElse(key K, defaultValue V) (value V, err error)

	// Contains reports whether key is stored.
	Contains(key K) (bool, error)

	// Remove deletes key from the store. Its positions are kept.
	Remove(key K) error

	// Clear empties the store. Positions are kept.
	Clear()

	// Size returns the number of stored keys.
	Size() int

	// Seq ranges over the store in the store's own order.
	Seq() iter.Seq2[K, V]

	// Storage returns the underlying store.
	Storage() Map[K, V]

	// Clone copies the positions and clones the store.
	Clone() IndexedMap[K, V]
}

// NewIndexedMap creates an IndexedMap on top of storage. Entries already in
// storage have no positions; only keys put through the IndexedMap are indexed.
// storage must not be nil (FromGoMap(nil) returns nil); a nil storage panics
// here rather than on the first Put.
//
// Example:
//
//	rows := maps.NewIndexedMap(maps.NewGoMap[string, Row]())
//	_, _ = rows.Put("a", rowA)
//	key, err := rows.GetKey(0) // "a"
func NewIndexedMap[K any, V any](storage Map[K, V]) IndexedMap[K, V] {
	return NewIndexedMapWithSize(storage, 0)
}

// NewIndexedMapWithSize is NewIndexedMap with room pre-allocated for size
// positions. A negative size is treated as zero.
func NewIndexedMapWithSize[K any, V any](storage Map[K, V], size int) IndexedMap[K, V] {
	if storage == nil {
		panic("maps: NewIndexedMap called with nil storage")
	}

	return &indexedMap[K, V]{
		storage: storage,
		keys:    make([]K, 0, max(size, 0)),
	}
}

// NewIndexedHashMap creates an IndexedMap stored in a NewHashMap.
func NewIndexedHashMap[K collectable.Collectable[K], V any](hash hashing.HashFunc) IndexedMap[K, V] {
	return NewIndexedHashMapWithSize[K, V](hash, 0)
}

// NewIndexedHashMapWithSize creates an IndexedMap stored in a NewHashMapWithSize,
// pre-sized for size entries.
func NewIndexedHashMapWithSize[K collectable.Collectable[K], V any](
	hash hashing.HashFunc,
	size int,
) IndexedMap[K, V] {
	return NewIndexedMapWithSize(NewHashMapWithSize[K, V](hash, size), size)
}

// NewIndexedGoMap creates an IndexedMap stored in a native Go map.
func NewIndexedGoMap[K comparable, V any]() IndexedMap[K, V] {
	return NewIndexedGoMapWithSize[K, V](0)
}

// NewIndexedGoMapWithSize creates an IndexedMap stored in a native Go map,
// pre-sized for size entries.
func NewIndexedGoMapWithSize[K comparable, V any](size int) IndexedMap[K, V] {
	return NewIndexedMapWithSize(NewGoMapWithSize[K, V](size), size)
}

type indexedMap[K any, V any] struct {
	storage Map[K, V] // key -> value
	keys    []K       // one entry per Put, append-only outside Compact
}

var _ IndexedMap[string, int] = (*indexedMap[string, int])(nil)

func (m *indexedMap[K, V]) Put(key K, value V) (optional.Value[V], error) {
	prev, found, err := m.storage.Get(key)
	if err != nil {
		return optional.None[V](), err
	}

	if err := m.storage.Add(key, value); err != nil { //nolint:noinlineerr // Inline error handling is clear here
		return optional.None[V](), err
	}

	m.keys = append(m.keys, key)

	if !found {
		return optional.None[V](), nil
	}

	return optional.Some(prev), nil
}

func (m *indexedMap[K, V]) Add(key K, value V) error {
	_, err := m.Put(key, value)

	return err
}

func (m *indexedMap[K, V]) PutAll(entries iter.Seq2[K, V]) error {
	for key, value := range entries {
		if _, err := m.Put(key, value); err != nil {
			return err
		}
	}

	return nil
}

func (m *indexedMap[K, V]) PutAllBestEffort(entries iter.Seq2[K, V]) error {
	var errs errors2.Collection

	for key, value := range entries {
		_, err := m.Put(key, value)
		errs.Add(err)
	}

	return errs.GetError()
}

func (m *indexedMap[K, V]) checkPosition(position int) error {
	if position < 0 || position >= len(m.keys) {
		return fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, position, len(m.keys))
	}

	return nil
}

func (m *indexedMap[K, V]) GetKey(position int) (K, error) {
	if err := m.checkPosition(position); err != nil {
		return zero.Value[K](), err
	}

	return m.keys[position], nil
}

func (m *indexedMap[K, V]) MustGetKey(position int) K {
	key, err := m.GetKey(position)
	if err != nil {
		panic(err)
	}

	return key
}

func (m *indexedMap[K, V]) GetValue(position int) (optional.Value[V], error) {
	key, err := m.GetKey(position)
	if err != nil {
		return optional.None[V](), err
	}

	value, found, err := m.recorded(key)
	if err != nil || !found {
		return optional.None[V](), err
	}

	return optional.Some(value), nil
}

// recorded looks up a key taken from the positions. Such a key may have been
// removed and its digest slot taken by a different key since; the store then
// reports ErrHashCollision, which here means the key is gone.
func (m *indexedMap[K, V]) recorded(key K) (V, bool, error) {
	value, found, err := m.storage.Get(key)
	if errors.Is(err, ErrHashCollision) {
		return zero.Value[V](), false, nil
	}

	return value, found, err
}

func (m *indexedMap[K, V]) Len() int {
	return len(m.keys)
}

// scratch returns an empty store of the same kind as the backing store, so
// keys can be compared with the store's own notion of equality even when K
// is not comparable.
func (m *indexedMap[K, V]) scratch() Map[K, V] {
	s := m.storage.Clone()
	s.Clear()

	return s
}

func (m *indexedMap[K, V]) IndexOf(key K) (int, bool, error) {
	target := m.scratch()

	if err := target.Add(key, zero.Value[V]()); err != nil {
		return 0, false, err
	}

	for i, k := range m.keys {
		ok, err := target.Contains(k)
		if errors.Is(err, ErrHashCollision) {
			// Same digest, different key.
			continue
		}

		if err != nil {
			return 0, false, err
		}

		if ok {
			return i, true, nil
		}
	}

	return 0, false, nil
}

func (m *indexedMap[K, V]) Positions() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		for i, key := range m.keys {
			if !yield(i, key) {
				return
			}
		}
	}
}

// Entries stops early if the store fails a lookup.
func (m *indexedMap[K, V]) Entries() iter.Seq2[int, KeyValuePair[K, V]] {
	return func(yield func(int, KeyValuePair[K, V]) bool) {
		for i, key := range m.keys {
			value, found, err := m.recorded(key)
			if err != nil {
				return
			}

			if !found {
				continue
			}

			if !yield(i, KeyValuePair[K, V]{Key: key, Value: value}) {
				return
			}
		}
	}
}

// live returns the keys Compact would keep: the first position of each key
// that is still stored.
func (m *indexedMap[K, V]) live() ([]K, error) {
	seen := m.scratch()
	out := make([]K, 0, min(len(m.keys), m.storage.Size()))

	for _, key := range m.keys {
		_, stored, err := m.recorded(key)
		if err != nil {
			return nil, err
		}

		if !stored {
			continue
		}

		dup, err := seen.Contains(key)
		if err != nil {
			return nil, err
		}

		if dup {
			continue
		}

		if err := seen.Add(key, zero.Value[V]()); err != nil { //nolint:noinlineerr // Inline error handling is clear here
			return nil, err
		}

		out = append(out, key)
	}

	return out, nil
}

func (m *indexedMap[K, V]) Stale() (int, error) {
	kept, err := m.live()
	if err != nil {
		return 0, err
	}

	return len(m.keys) - len(kept), nil
}

func (m *indexedMap[K, V]) Compact() (int, error) {
	kept, err := m.live()
	if err != nil {
		return 0, err
	}

	dropped := len(m.keys) - len(kept)
	m.keys = kept

	return dropped, nil
}

func (m *indexedMap[K, V]) Get(key K) (V, bool, error) {
	return m.storage.Get(key)
}

func (m *indexedMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	return m.storage.GetOrElse(key, defaultValue)
}

func (m *indexedMap[K, V]) Contains(key K) (bool, error) {
	return m.storage.Contains(key)
}

func (m *indexedMap[K, V]) Remove(key K) error {
	return m.storage.Remove(key)
}

func (m *indexedMap[K, V]) Clear() {
	m.storage.Clear()
}

func (m *indexedMap[K, V]) Size() int {
	return m.storage.Size()
}

func (m *indexedMap[K, V]) Seq() iter.Seq2[K, V] {
	return m.storage.Seq()
}

func (m *indexedMap[K, V]) Storage() Map[K, V] {
	return m.storage
}

func (m *indexedMap[K, V]) Clone() IndexedMap[K, V] {
	if m == nil {
		return nil
	}

	keys := make([]K, len(m.keys))
	copy(keys, m.keys)

	return &indexedMap[K, V]{
		storage: m.storage.Clone(),
		keys:    keys,
	}
}

// LogValue summarizes the map as counts, never contents.
func (m *indexedMap[K, V]) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("size", m.storage.Size()),
		slog.Int("positions", len(m.keys)),
	}

	stale, err := m.Stale()
	if err != nil {
		attrs = append(attrs, slog.String("stale_error", err.Error()))
	} else {
		attrs = append(attrs, slog.Int("stale", stale))
	}

	return slog.GroupValue(attrs...)
}
