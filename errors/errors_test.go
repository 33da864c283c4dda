package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: position 3, length 2", ErrIndexOutOfRange)

	require.ErrorIs(t, wrapped, ErrIndexOutOfRange)
	assert.NotErrorIs(t, wrapped, ErrHashCollision)
	assert.Contains(t, wrapped.Error(), "index out of range")
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("records non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(errors.New("row 1")) //nolint:err113
		c.Add(nil)
		c.Add(errors.New("row 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Empty(t, c.errors)
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrHashCollision)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrHashCollision)

		assert.Equal(t, ErrHashCollision, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrHashCollision)
		c.Add(ErrIndexOutOfRange)

		err := c.GetError()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrHashCollision)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}
