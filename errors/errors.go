// Package errors holds the sentinel errors shared by the collection packages,
// plus a small accumulator for operations that keep going after a failure.
package errors

import "errors"

var (
	// ErrHashCollision is returned when two keys that are not Equal produce
	// the same hash value.
	ErrHashCollision = errors.New("hashing collision")

	// ErrIndexOutOfRange is returned by positional lookups when the position is
	// negative or not smaller than the number of recorded positions.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Collection accumulates errors. It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add records err. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear forgets every recorded error.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether at least one error was recorded.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of recorded errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil, the only error, or all errors joined with errors.Join.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
