// Package strlist provides a small append-only growable list used by the
// argument classifier to collect tokens of one class in scan order.
package strlist

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the initial backing capacity used when a caller does not
// ask for a specific one.
const DefaultCapacity = 5

// ErrReleased is returned by Append after Release has been called.
var ErrReleased = errors.New("strlist: use after release")

// CapacityError is returned by Append on a fixed-capacity list that is full.
// Fixed lists never truncate and never abort the process; the overflow is
// reported to the caller instead.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("strlist: fixed capacity of %d exceeded", e.Capacity)
}

// List is an ordered, append-only sequence. The zero value is not usable;
// create lists with New or NewFixed.
//
// Stored values are plain Go values. For List[string] this means tokens are
// shared with the source argument vector rather than copied; since Go strings
// are immutable there is no lifetime hazard in holding them.
type List[T any] struct {
	data     []T
	fixed    bool
	released bool
}

// New returns a list that grows its backing storage as needed (amortized
// doubling). A capacity of zero or less selects DefaultCapacity.
func New[T any](capacity int) *List[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List[T]{data: make([]T, 0, capacity)}
}

// NewFixed returns a list that never reallocates: once capacity elements have
// been appended, further appends fail with a CapacityError. Intended for
// callers that want predictable allocation behavior.
func NewFixed[T any](capacity int) *List[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List[T]{data: make([]T, 0, capacity), fixed: true}
}

// Append adds v as the new last element.
func (l *List[T]) Append(v T) error {
	if l.released {
		return ErrReleased
	}
	if l.fixed && len(l.data) == cap(l.data) {
		return &CapacityError{Capacity: cap(l.data)}
	}
	l.data = append(l.data, v)
	return nil
}

// Len reports the number of elements. Len of a nil list is 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.data)
}

// Cap reports the current backing capacity. Cap of a nil list is 0.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.data)
}

// Data returns the elements in insertion order. The returned slice aliases
// the list's backing storage and is valid until the next Append or Release.
// Data of a nil list is nil.
func (l *List[T]) Data() []T {
	if l == nil {
		return nil
	}
	return l.data
}

// At returns the element at index i, 0 <= i < Len.
func (l *List[T]) At(i int) T {
	return l.data[i]
}

// Release drops the backing storage. Appending after Release fails with
// ErrReleased; releasing twice is a no-op. Release of a nil list is a no-op.
func (l *List[T]) Release() {
	if l == nil {
		return
	}
	l.data = nil
	l.released = true
}
