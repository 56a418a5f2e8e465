// Package optional provides a generic container holding zero or one value,
// a type-safe substitute for nullable values and pointer sentinels.
//
// The zero value of Option is None. Option values with a comparable element
// type are themselves comparable: two options are equal iff both are None,
// or both hold equal values.
package optional

import (
	"errors"
	"fmt"
)

// ErrNotSet is returned when an operation requires a contained value,
// but the option is empty.
var ErrNotSet = errors.New("optional: value is not set")

// ErrAlreadySet is returned when an operation requires an empty option,
// but a value is already set.
var ErrAlreadySet = errors.New("optional: value is already set")

// Option holds either zero or one value of type T.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns a new Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value: value,
		some:  true,
	}
}

// None returns a new empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some of the pointed-to value, or None if ptr is nil.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}

	return Some(*ptr)
}

// IsSome returns true if the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and whether one is set.
// When the option is empty, the returned value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Value returns a copy of the contained value.
// It fails with ErrNotSet if the option is empty.
func (o Option[T]) Value() (T, error) {
	if !o.some {
		var zero T

		return zero, ErrNotSet
	}

	return o.value, nil
}

// ValueOr returns a copy of the contained value, or def if the option is empty.
func (o Option[T]) ValueOr(def T) T {
	if !o.some {
		return def
	}

	return o.value
}

// Mut returns a pointer to the contained value for in-place modification.
// It fails with ErrNotSet if the option is empty.
//
// The pointer remains valid until the next mutating operation on o
// and must not be retained beyond that.
func (o *Option[T]) Mut() (*T, error) {
	if !o.some {
		return nil, ErrNotSet
	}

	return &o.value, nil
}

// MutOr returns a pointer to the contained value, or def if the option is empty.
//
// The returned pointer follows the validity rule of Mut.
func (o *Option[T]) MutOr(def *T) *T {
	if !o.some {
		return def
	}

	return &o.value
}

// Take removes and returns the contained value, leaving the option empty.
// It fails with ErrNotSet if the option is already empty.
func (o *Option[T]) Take() (T, error) {
	if !o.some {
		var zero T

		return zero, ErrNotSet
	}

	value := o.value

	*o = None[T]()

	return value, nil
}

// Swap replaces the contained value with value and returns the previous one.
// It fails with ErrNotSet if the option is empty: replacing requires a value
// to replace. Use Replace to set a value regardless of prior state.
func (o *Option[T]) Swap(value T) (T, error) {
	if !o.some {
		var zero T

		return zero, ErrNotSet
	}

	previous := o.value

	o.value = value

	return previous, nil
}

// Replace sets the contained value to value and returns the entire previous
// option, which is None if o was empty. It never fails.
func (o *Option[T]) Replace(value T) Option[T] {
	previous := *o

	*o = Some(value)

	return previous
}

// Fill sets the contained value of an empty option.
// It fails with ErrAlreadySet if a value is already present,
// making "was this already set" an explicit check instead of a silent overwrite.
func (o *Option[T]) Fill(value T) error {
	if o.some {
		return ErrAlreadySet
	}

	*o = Some(value)

	return nil
}

// Unwrap returns the contained value of a consumed option.
// It fails with ErrNotSet if the option is empty.
func (o Option[T]) Unwrap() (T, error) {
	if !o.some {
		var zero T

		return zero, ErrNotSet
	}

	return o.value, nil
}

// UnwrapOr returns the contained value of a consumed option,
// or def if the option is empty.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}

	return o.value
}

// ExpectNone asserts that a consumed option is empty.
// It fails with ErrAlreadySet if a value is present.
func (o Option[T]) ExpectNone() error {
	if o.some {
		return ErrAlreadySet
	}

	return nil
}

// ToSlice returns a slice holding the contained value,
// or an empty slice if the option is empty.
func (o Option[T]) ToSlice() []T {
	if !o.some {
		return []T{}
	}

	return []T{o.value}
}

// String implements the fmt.Stringer interface.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Contains returns true if the option holds a value equal to value.
func Contains[T comparable](o Option[T], value T) bool {
	return o.some && o.value == value
}

// Equal returns true if both options are empty, or both hold equal values.
func Equal[T comparable](a Option[T], b Option[T]) bool {
	return a == b
}

// EqualFunc returns true if both options are empty,
// or both hold values equal according to eq.
// It allows comparing options of non-comparable element types.
func EqualFunc[T any](a Option[T], b Option[T], eq func(T, T) bool) bool {
	if !a.some || !b.some {
		return a.some == b.some
	}

	return eq(a.value, b.value)
}

// Map returns an option holding fn applied to the contained value,
// or None if o is empty.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}

	return Some(fn(o.value))
}
