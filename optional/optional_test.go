package optional_test

import (
	"strconv"
	"testing"

	"github.com/amp-labs/amp-indexedmap/optional"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	v := optional.Some(3)

	assert.True(t, v.NonEmpty())
	assert.False(t, v.Empty())

	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, got)
	assert.Equal(t, 3, v.GetOrElse(9))
	assert.Equal(t, 3, v.GetOrPanic())
	assert.Equal(t, "Some(3)", v.String())
}

func TestNone(t *testing.T) {
	t.Parallel()

	v := optional.None[string]()

	assert.True(t, v.Empty())
	assert.False(t, v.NonEmpty())

	got, ok := v.Get()
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.Equal(t, "fallback", v.GetOrElse("fallback"))
	assert.Equal(t, "None", v.String())
	assert.Panics(t, func() { v.GetOrPanic() })
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var v optional.Value[int]

	assert.True(t, v.Empty())
}

func TestSomeOfZeroIsPresent(t *testing.T) {
	t.Parallel()

	v := optional.Some(0)

	assert.True(t, v.NonEmpty())
}

func TestAll(t *testing.T) {
	t.Parallel()

	var seen []int

	for x := range optional.Some(5).All() {
		seen = append(seen, x)
	}

	for x := range optional.None[int]().All() {
		seen = append(seen, x)
	}

	assert.Equal(t, []int{5}, seen)
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, optional.Some("12"), optional.Map(optional.Some(12), strconv.Itoa))
	assert.True(t, optional.Map(optional.None[int](), strconv.Itoa).Empty())
}
