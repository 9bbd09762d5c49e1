// Package bound provides validated value wrappers whose bounds are checked once, at
// construction. A value that exists has already passed its bounds; nothing in this
// package re-validates.
//
// Domain purity: no I/O and no clock reads.
package bound

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// LengthError reports a string or collection length outside [Min, Max].
// Max < 0 means unbounded above.
type LengthError struct {
	What   string
	Min    int
	Max    int
	Actual int
}

func (e *LengthError) Error() string {
	if e.Max < 0 {
		return fmt.Sprintf("%s length %d is below minimum %d", e.What, e.Actual, e.Min)
	}
	return fmt.Sprintf("%s length %d is out of range [%d, %d]", e.What, e.Actual, e.Min, e.Max)
}

// IsTooShort reports whether the length fell below the lower bound.
func (e *LengthError) IsTooShort() bool {
	return e.Actual < e.Min
}

// RangeError reports an integer outside [Min, Max].
type RangeError struct {
	Min    int64
	Max    int64
	Actual int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d is out of range [%d, %d]", e.Actual, e.Min, e.Max)
}

// ErrInvalidBounds is returned when a constructor is called with min > max.
var ErrInvalidBounds = errors.New("invalid bounds: min exceeds max")

// String is a string whose length in runes lies within fixed bounds.
type String struct {
	value string
}

// NewString validates that s has between min and max runes (inclusive).
func NewString(s string, min, max int) (String, error) {
	if min > max {
		return String{}, ErrInvalidBounds
	}
	if !utf8.ValidString(s) {
		return String{}, fmt.Errorf("string is not valid UTF-8")
	}
	if err := CheckLen(utf8.RuneCountInString(s), min, max, "string"); err != nil {
		return String{}, err
	}
	return String{value: s}, nil
}

// NewNonEmptyString is NewString with a lower bound of one rune.
func NewNonEmptyString(s string, max int) (String, error) {
	return NewString(s, 1, max)
}

// MustString creates a String, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustString(s string, min, max int) String {
	v, err := NewString(s, min, max)
	if err != nil {
		panic(err)
	}
	return v
}

// Value returns the underlying string.
func (s String) Value() string {
	return s.value
}

func (s String) String() string {
	return s.value
}

// Len returns the length in runes.
func (s String) Len() int {
	return utf8.RuneCountInString(s.value)
}

// IsZero returns true for the empty value.
func (s String) IsZero() bool {
	return s.value == ""
}

// Int is an integer within fixed inclusive bounds.
type Int struct {
	value int64
}

// NewInt validates min <= v <= max.
func NewInt(v, min, max int64) (Int, error) {
	if min > max {
		return Int{}, ErrInvalidBounds
	}
	if v < min || v > max {
		return Int{}, &RangeError{Min: min, Max: max, Actual: v}
	}
	return Int{value: v}, nil
}

// MustInt creates an Int, panicking if invalid.
func MustInt(v, min, max int64) Int {
	i, err := NewInt(v, min, max)
	if err != nil {
		panic(err)
	}
	return i
}

// Value returns the integer.
func (i Int) Value() int64 {
	return i.value
}

// CheckLen validates a length against [min, max]. A negative max disables the upper bound.
func CheckLen(n, min, max int, what string) error {
	if n < min || (max >= 0 && n > max) {
		return &LengthError{What: what, Min: min, Max: max, Actual: n}
	}
	return nil
}

// FirstDuplicate returns the first element that occurs more than once, in input order.
func FirstDuplicate[T comparable](items []T) (T, bool) {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return item, true
		}
		seen[item] = struct{}{}
	}
	var zero T
	return zero, false
}
