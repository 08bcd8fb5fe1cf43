// Package validate holds the small precondition combinators used across
// peasy for checking mutually exclusive or parallel arguments.
package validate

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrExactlyOne is returned by ExactlyOne when zero or more than one
// argument is set.
var ErrExactlyOne = errors.New("validate: exactly one param should be set")

// ErrAtLeastOne is returned by AtLeastOne when every argument is nil.
var ErrAtLeastOne = errors.New("validate: at least one param should be set")

// ErrAtMostOne is returned by AtMostOne when more than one argument is set.
var ErrAtMostOne = errors.New("validate: at most one param should be set")

// LengthMismatchError reports parallel sequences that disagree in length.
type LengthMismatchError struct {
	Lengths []int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("validate: sequences differ in length: %v", e.Lengths)
}

// truthy reports whether v would be considered set: non-nil and not the
// zero value of its type. Empty slices, maps and strings are not set.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return false
		}
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() > 0
	}
	return !rv.IsZero()
}

// ExactlyOne requires exactly one of args to be set and returns it.
func ExactlyOne(args ...any) (any, error) {
	var set []any
	for _, a := range args {
		if truthy(a) {
			set = append(set, a)
		}
	}
	if len(set) != 1 {
		return nil, fmt.Errorf("%w (got %d of %d)", ErrExactlyOne, len(set), len(args))
	}
	return set[0], nil
}

// AtLeastOne fails if every argument is nil.
func AtLeastOne(args ...any) error {
	for _, a := range args {
		if !isNil(a) {
			return nil
		}
	}
	return ErrAtLeastOne
}

// AtMostOne fails if more than one argument is non-nil.
func AtMostOne(args ...any) error {
	set := 0
	for _, a := range args {
		if !isNil(a) {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("%w (got %d)", ErrAtMostOne, set)
	}
	return nil
}

// SameLength checks that all non-nil sequence arguments have equal length.
// Non-sequence arguments are rejected outright.
func SameLength(seqs ...any) error {
	want := -1
	var lengths []int
	mismatch := false
	for _, s := range seqs {
		if isNil(s) {
			continue
		}
		rv := reflect.ValueOf(s)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.String, reflect.Map:
		default:
			return fmt.Errorf("validate: %T has no length", s)
		}
		n := rv.Len()
		lengths = append(lengths, n)
		if want == -1 {
			want = n
		} else if n != want {
			mismatch = true
		}
	}
	if mismatch {
		return &LengthMismatchError{Lengths: lengths}
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
