// Package hashing turns keys into the string digests that hash-backed stores
// index by. A key takes part by implementing Hashable; the HashFunc chosen at
// construction time decides the digest algorithm.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
	"strconv"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc computes the digest of a Hashable. Sha256, Xxh3 and Xxhash64 are
// HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is implemented by values that can feed their contents into a hash.Hash.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sha256 returns the hex-encoded SHA-256 digest of hashable.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the hex-encoded 64-bit XXH3 digest of hashable. It is much
// faster than Sha256 and is a good default for in-memory stores.
func Xxh3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}

// Xxhash64 returns the hex-encoded XXH64 digest of hashable.
func Xxhash64(hashable Hashable) (string, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return HashableInt64(i).UpdateHash(h)
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return HashableUint64(uint64(i)).UpdateHash(h) //nolint:gosec // bit pattern only
}

type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(u))

	_, err := h.Write(buf[:])

	return err
}

type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	return HashableUint64(math.Float64bits(float64(f))).UpdateHash(h)
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	var buf [1]byte

	if b {
		buf[0] = 1
	}

	_, err := h.Write(buf[:])

	return err
}
