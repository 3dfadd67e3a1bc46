package ntru

import (
	"errors"
	"testing"
)

func TestNewParams_Valid(t *testing.T) {
	par, err := NewParams(11, 3, 32, 4, 3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if par.N != 11 || par.Df != 4 || par.Dg != 3 || par.Dr != 3 {
		t.Fatalf("unexpected params: %+v", par)
	}
}

func TestNewParams_NNotPrime(t *testing.T) {
	_, err := NewParams(100, 3, 64, 15, 12, 5)
	if !errors.Is(err, ErrParameterInvalid) {
		t.Fatalf("expected ErrParameterInvalid, got %v", err)
	}
}

func TestNewParams_EightPExceedsQ(t *testing.T) {
	_, err := NewParams(11, 3, 16, 4, 3, 3)
	if !errors.Is(err, ErrParameterInvalid) {
		t.Fatalf("expected ErrParameterInvalid, got %v", err)
	}
}

func TestNewParams_WeightTooLarge(t *testing.T) {
	_, err := NewParams(11, 3, 32, 6, 3, 3)
	if !errors.Is(err, ErrParameterInvalid) {
		t.Fatalf("expected ErrParameterInvalid for 2*df>N, got %v", err)
	}
}

func TestNewParams_NotCoprime(t *testing.T) {
	_, err := NewParams(11, 4, 32, 4, 3, 3)
	if !errors.Is(err, ErrParameterInvalid) {
		t.Fatalf("expected ErrParameterInvalid for non-coprime p,q, got %v", err)
	}
}
