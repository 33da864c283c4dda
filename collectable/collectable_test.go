package collectable

import (
	"testing"

	"github.com/amp-labs/amp-indexedmap/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromComparable_Int(t *testing.T) {
	t.Parallel()

	c := FromComparable(42)
	require.NotNil(t, c)

	assert.True(t, c.Equals(42))
	assert.False(t, c.Equals(43))

	hash, err := hashing.Sha256(c)
	require.NoError(t, err)

	same, err := hashing.Sha256(FromComparable(42))
	require.NoError(t, err)
	assert.Equal(t, hash, same)

	different, err := hashing.Sha256(FromComparable(43))
	require.NoError(t, err)
	assert.NotEqual(t, hash, different)
}

func TestFromComparable_WidenedNumbers(t *testing.T) {
	t.Parallel()

	want, err := hashing.Sha256(FromComparable(int64(42)))
	require.NoError(t, err)

	t.Run("int8", func(t *testing.T) {
		t.Parallel()

		digest, err := hashing.Sha256(FromComparable(int8(42)))
		require.NoError(t, err)
		assert.Equal(t, want, digest)
	})

	t.Run("int32", func(t *testing.T) {
		t.Parallel()

		digest, err := hashing.Sha256(FromComparable(int32(42)))
		require.NoError(t, err)
		assert.Equal(t, want, digest)
	})

	t.Run("uint16 matches uint64", func(t *testing.T) {
		t.Parallel()

		a, err := hashing.Sha256(FromComparable(uint16(7)))
		require.NoError(t, err)

		b, err := hashing.Sha256(FromComparable(uint64(7)))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("float32 matches float64", func(t *testing.T) {
		t.Parallel()

		a, err := hashing.Sha256(FromComparable(float32(0.5)))
		require.NoError(t, err)

		b, err := hashing.Sha256(FromComparable(0.5))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestFromComparable_StringAndBool(t *testing.T) {
	t.Parallel()

	s := FromComparable("row")
	assert.True(t, s.Equals("row"))
	assert.False(t, s.Equals("col"))

	sh, err := hashing.Xxh3(s)
	require.NoError(t, err)

	plain, err := hashing.Xxh3(hashing.HashableString("row"))
	require.NoError(t, err)
	assert.Equal(t, plain, sh)

	b := FromComparable(true)
	assert.True(t, b.Equals(true))

	_, err = hashing.Xxh3(b)
	require.NoError(t, err)
}

type point struct {
	X, Y int
}

func TestFromComparable_UnsupportedType(t *testing.T) {
	t.Parallel()

	c := FromComparable(point{X: 1, Y: 2})
	assert.True(t, c.Equals(point{X: 1, Y: 2}))

	_, err := hashing.Sha256(c)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "collectable.point")
}
