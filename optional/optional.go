// Package optional models a value that may be absent. The indexed map uses it
// for "previous value" on Put and for positions whose key left the store.
package optional

import (
	"fmt"
	"iter"
)

// Value holds either one T (Some) or nothing (None). The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{isSet: false}
}

// All yields the value if present.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether the Value is None.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value, panicking on None.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, or defaultValue.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String renders "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map applies f to the value of o, if any.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
