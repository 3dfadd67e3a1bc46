package ntru

import (
	"math/big"
	"testing"
)

// specF and specG are the concrete (N=11, p=3, q=32, df=4, dg=3, dr=3)
// scenario polynomials worked through by hand in the component design.
var specF = []int64{1, 1, -1, 1, 0, 0, 0, -1, 0, 1, -1}
var specG = []int64{0, 1, 0, -1, 1, 0, -1, 0, 1, 0, 0}

func assertIsOne(t *testing.T, e RingElement) {
	t.Helper()
	if e.Coeffs[0].Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("constant coefficient = %s, want 1", e.Coeffs[0])
	}
	for i := 1; i < e.N(); i++ {
		if e.Coeffs[i].Sign() != 0 {
			t.Fatalf("coefficient %d = %s, want 0", i, e.Coeffs[i])
		}
	}
}

func TestInvert_SpecScenario_ModP(t *testing.T) {
	f := FromInts(11, specF)
	fp, err := Invert(f, 11, big.NewInt(3))
	if err != nil {
		t.Fatalf("Invert mod p failed: %v", err)
	}
	prod := f.Mul(fp).Reduce(big.NewInt(3))
	assertIsOne(t, prod)
}

func TestInvert_SpecScenario_ModQ(t *testing.T) {
	f := FromInts(11, specF)
	fq, err := Invert(f, 11, big.NewInt(32))
	if err != nil {
		t.Fatalf("Invert mod q failed: %v", err)
	}
	prod := f.Mul(fq).Reduce(big.NewInt(32))
	assertIsOne(t, prod)
}

func TestInvert_NotInvertible(t *testing.T) {
	// The zero polynomial is never invertible.
	f := NewRingElement(11)
	if _, err := Invert(f, 11, big.NewInt(3)); err == nil {
		t.Fatalf("expected failure inverting the zero polynomial")
	}
}

func TestInvert_RejectsNonPrimePowerModulus(t *testing.T) {
	f := FromInts(11, specF)
	if _, err := Invert(f, 11, big.NewInt(15)); err == nil {
		t.Fatalf("expected failure for non-prime-power modulus 15")
	}
}
