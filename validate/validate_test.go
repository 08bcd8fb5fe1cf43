package validate

import (
	"errors"
	"testing"
)

func TestExactlyOne(t *testing.T) {
	got, err := ExactlyOne(nil, 5, nil)
	if err != nil {
		t.Fatalf("ExactlyOne(nil, 5, nil) returned error: %v", err)
	}
	if got != 5 {
		t.Errorf("ExactlyOne(nil, 5, nil) = %v, want 5", got)
	}
}

func TestExactlyOneFailures(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{"two set", []any{5, 6}},
		{"none set", []any{}},
		{"all nil", []any{nil, nil}},
		{"zero values", []any{0, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExactlyOne(tt.args...); !errors.Is(err, ErrExactlyOne) {
				t.Errorf("ExactlyOne(%v) err = %v, want ErrExactlyOne", tt.args, err)
			}
		})
	}
}

func TestExactlyOneTreatsZeroAsUnset(t *testing.T) {
	got, err := ExactlyOne(0, 3)
	if err != nil {
		t.Fatalf("ExactlyOne(0, 3) returned error: %v", err)
	}
	if got != 3 {
		t.Errorf("ExactlyOne(0, 3) = %v, want 3", got)
	}
}

func TestAtLeastOne(t *testing.T) {
	if err := AtLeastOne(nil, nil, 1); err != nil {
		t.Errorf("AtLeastOne(nil, nil, 1) = %v, want nil", err)
	}
	if err := AtLeastOne(nil, nil); !errors.Is(err, ErrAtLeastOne) {
		t.Errorf("AtLeastOne(nil, nil) = %v, want ErrAtLeastOne", err)
	}
}

func TestAtMostOne(t *testing.T) {
	if err := AtMostOne(nil, 1, nil); err != nil {
		t.Errorf("AtMostOne(nil, 1, nil) = %v, want nil", err)
	}
	if err := AtMostOne(nil, nil); err != nil {
		t.Errorf("AtMostOne(nil, nil) = %v, want nil", err)
	}
	if err := AtMostOne(1, 2); !errors.Is(err, ErrAtMostOne) {
		t.Errorf("AtMostOne(1, 2) = %v, want ErrAtMostOne", err)
	}
}

func TestSameLength(t *testing.T) {
	if err := SameLength([]int{1, 2}, []string{"a", "b"}, nil); err != nil {
		t.Errorf("SameLength(equal) = %v, want nil", err)
	}

	err := SameLength([]int{1, 2}, []string{"a", "b", "c"})
	var lme *LengthMismatchError
	if !errors.As(err, &lme) {
		t.Fatalf("SameLength(unequal) = %v, want LengthMismatchError", err)
	}
	if len(lme.Lengths) != 2 || lme.Lengths[0] != 2 || lme.Lengths[1] != 3 {
		t.Errorf("LengthMismatchError.Lengths = %v, want [2 3]", lme.Lengths)
	}
}

func TestSameLengthRejectsScalars(t *testing.T) {
	if err := SameLength(5); err == nil {
		t.Error("SameLength(5) = nil, want error")
	}
}
