package data

import (
	"errors"
	"reflect"
	"testing"

	"github.com/euxhenh/peasy/validate"
)

func TestNewFrameLengthMismatch(t *testing.T) {
	_, err := NewFrame(F("x", 1, 2, 3), F("y", 1, 2))
	var lme *validate.LengthMismatchError
	if !errors.As(err, &lme) {
		t.Fatalf("NewFrame(unequal) err = %v, want LengthMismatchError", err)
	}
}

func TestNewFrameDuplicateColumn(t *testing.T) {
	if _, err := NewFrame(F("x", 1), F("x", 2)); err == nil {
		t.Error("NewFrame(duplicate names) = nil error, want failure")
	}
}

func TestFrameAccessors(t *testing.T) {
	f, err := NewFrame(F("x", 1, 2), F("y", 3, 4), S("hue", "a", "b"))
	if err != nil {
		t.Fatalf("NewFrame returned error: %v", err)
	}

	if got := f.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got, want := f.Names(), []string{"x", "y", "hue"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	xs, err := f.Floats("x")
	if err != nil {
		t.Fatalf("Floats(x) returned error: %v", err)
	}
	if !reflect.DeepEqual(xs, Floats{1, 2}) {
		t.Errorf("Floats(x) = %v, want [1 2]", xs)
	}

	if _, err := f.Floats("hue"); err == nil {
		t.Error("Floats(hue) = nil error, want type failure")
	}
	if _, err := f.Strings("nope"); err == nil {
		t.Error("Strings(nope) = nil error, want missing column failure")
	}
}

func TestCombinedAddsIndexColumn(t *testing.T) {
	a, _ := NewFrame(F("x", 1, 2), F("y", 10, 20))
	b, _ := NewFrame(F("x", 3), F("y", 30))

	got, err := Combined([]*Frame{a, b}, true)
	if err != nil {
		t.Fatalf("Combined returned error: %v", err)
	}

	if got.Len() != 3 {
		t.Errorf("combined Len() = %d, want 3", got.Len())
	}
	idx, err := got.Strings(IndexColumn)
	if err != nil {
		t.Fatalf("Strings(index) returned error: %v", err)
	}
	if !reflect.DeepEqual(idx, Strings{"0", "0", "1"}) {
		t.Errorf("index column = %v, want [0 0 1]", idx)
	}

	xs, _ := got.Floats("x")
	if !reflect.DeepEqual(xs, Floats{1, 2, 3}) {
		t.Errorf("x column = %v, want [1 2 3]", xs)
	}
}

func TestCombinedKeepsExistingIndex(t *testing.T) {
	a, _ := NewFrame(F("x", 1), S(IndexColumn, "left"))
	b, _ := NewFrame(F("x", 2), S(IndexColumn, "right"))

	got, err := Combined([]*Frame{a, b}, true)
	if err != nil {
		t.Fatalf("Combined returned error: %v", err)
	}
	idx, _ := got.Strings(IndexColumn)
	if !reflect.DeepEqual(idx, Strings{"left", "right"}) {
		t.Errorf("index column = %v, want [left right]", idx)
	}
}

func TestCombinedColumnMismatch(t *testing.T) {
	a, _ := NewFrame(F("x", 1))
	b, _ := NewFrame(F("z", 2))
	if _, err := Combined([]*Frame{a, b}, false); err == nil {
		t.Error("Combined(mismatched columns) = nil error, want failure")
	}
}

func TestIsAtomic(t *testing.T) {
	if ok, err := IsAtomic(5, "raise"); err != nil || !ok {
		t.Errorf("IsAtomic(5) = (%v, %v), want (true, nil)", ok, err)
	}
	if ok, err := IsAtomic([]float64{1}, "raise"); err != nil || ok {
		t.Errorf("IsAtomic([]float64) = (%v, %v), want (false, nil)", ok, err)
	}
	if _, err := IsAtomic(struct{}{}, "raise"); err == nil {
		t.Error(`IsAtomic(struct, "raise") = nil error, want failure`)
	}
	if ok, err := IsAtomic(struct{}{}, "warn"); err != nil || ok {
		t.Errorf(`IsAtomic(struct, "warn") = (%v, %v), want (false, nil)`, ok, err)
	}
	if _, err := IsAtomic(struct{}{}, "ignore"); err == nil {
		t.Error(`IsAtomic(struct, "ignore") = nil error, want failure for unknown mode`)
	}
}
