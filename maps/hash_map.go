package maps

import (
	"iter"

	"github.com/amp-labs/amp-indexedmap/collectable"
	"github.com/amp-labs/amp-indexedmap/hashing"
	"github.com/amp-labs/amp-indexedmap/zero"
)

// NewHashMap creates a Map that indexes keys by the digest hash computes for
// them. Equal keys must produce equal digests. Two unequal keys with the same
// digest are reported as ErrHashCollision rather than silently merged.
//
// Example:
//
//	m := maps.NewHashMap[hashing.HashableString, int](hashing.Xxh3)
//	_ = m.Add("row-1", 1)
func NewHashMap[K collectable.Collectable[K], V any](hash hashing.HashFunc) Map[K, V] {
	return NewHashMapWithSize[K, V](hash, 0)
}

// NewHashMapWithSize is NewHashMap with room pre-allocated for size entries.
// A negative size is treated as zero.
func NewHashMapWithSize[K collectable.Collectable[K], V any](hash hashing.HashFunc, size int) Map[K, V] {
	return &hashMap[K, V]{
		hash: hash,
		data: make(map[string]KeyValuePair[K, V], max(size, 0)),
	}
}

type hashMap[K collectable.Collectable[K], V any] struct {
	hash hashing.HashFunc              // digest used as the storage key
	data map[string]KeyValuePair[K, V] // digest -> entry
}

var _ Map[hashing.HashableString, int] = (*hashMap[hashing.HashableString, int])(nil)

// lookup hashes key and returns its digest, the stored entry and whether one
// was found. A stored entry whose key is not Equal to key is a collision.
func (h *hashMap[K, V]) lookup(key K) (string, KeyValuePair[K, V], bool, error) {
	hashVal, err := h.hash(key)
	if err != nil {
		return "", KeyValuePair[K, V]{}, false, err
	}

	prev, ok := h.data[hashVal]
	if ok && !key.Equals(prev.Key) {
		return "", KeyValuePair[K, V]{}, false, ErrHashCollision
	}

	return hashVal, prev, ok, nil
}

func (h *hashMap[K, V]) Get(key K) (V, bool, error) {
	_, entry, ok, err := h.lookup(key)
	if err != nil || !ok {
		return zero.Value[V](), false, err
	}

	return entry.Value, true, nil
}

func (h *hashMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	value, found, err := h.Get(key)
	if err != nil {
		return zero.Value[V](), err
	}

	if !found {
		return defaultValue, nil
	}

	return value, nil
}

func (h *hashMap[K, V]) Add(key K, value V) error {
	hashVal, _, _, err := h.lookup(key)
	if err != nil {
		return err
	}

	h.data[hashVal] = KeyValuePair[K, V]{Key: key, Value: value}

	return nil
}

func (h *hashMap[K, V]) Remove(key K) error {
	hashVal, _, ok, err := h.lookup(key)
	if err != nil {
		return err
	}

	if ok {
		delete(h.data, hashVal)
	}

	return nil
}

func (h *hashMap[K, V]) Clear() {
	h.data = make(map[string]KeyValuePair[K, V])
}

func (h *hashMap[K, V]) Contains(key K) (bool, error) {
	_, _, ok, err := h.lookup(key)
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (h *hashMap[K, V]) Size() int {
	return len(h.data)
}

func (h *hashMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, entry := range h.data {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Clone copies the digest table directly, so no key is re-hashed.
func (h *hashMap[K, V]) Clone() Map[K, V] {
	if h == nil {
		return nil
	}

	data := make(map[string]KeyValuePair[K, V], len(h.data))
	for k, v := range h.data {
		data[k] = v
	}

	return &hashMap[K, V]{
		hash: h.hash,
		data: data,
	}
}
