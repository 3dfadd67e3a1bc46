package ntru

import (
	"math/big"
	"testing"
)

func TestRingElement_MulCyclicFold(t *testing.T) {
	// x^(N-1) * x = x^N = 1 in Z[x]/(x^N-1): the top term folds to the
	// constant term and ADDS, unlike a negacyclic ring where it would
	// subtract.
	N := 5
	a := FromInts(N, []int64{0, 0, 0, 0, 1}) // x^4
	b := FromInts(N, []int64{0, 1, 0, 0, 0}) // x
	got := a.Mul(b)
	want := FromInts(N, []int64{1, 0, 0, 0, 0})
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got.Int64s(), want.Int64s())
	}
}

func TestRingElement_Center(t *testing.T) {
	N := 4
	e := FromInts(N, []int64{0, 10, 17, 31})
	c := e.Center(big.NewInt(32))
	want := []int64{0, 10, -15, -1}
	got := c.Int64s()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Center mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestRingElement_CenterIdempotent(t *testing.T) {
	N := 6
	e := FromInts(N, []int64{1, 2, 3, 4, 5, 6})
	m := big.NewInt(7)
	once := e.Center(m)
	twice := once.Center(m)
	if !once.Equal(twice) {
		t.Fatalf("centered reduction is not idempotent: %v vs %v", once.Int64s(), twice.Int64s())
	}
}

func TestRingElement_Degree(t *testing.T) {
	e := FromInts(5, []int64{0, 0, 3, 0, 0})
	if e.Degree() != 2 {
		t.Fatalf("Degree() = %d, want 2", e.Degree())
	}
	zero := NewRingElement(5)
	if zero.Degree() != -1 {
		t.Fatalf("Degree() of zero = %d, want -1", zero.Degree())
	}
}
