package ntru

import "testing"

func TestGenTernary_Weights(t *testing.T) {
	src := NewDeterministicSource(7)
	N, plus, minus := 107, 15, 12
	e := GenTernary(src, N, plus, minus)

	var gotPlus, gotMinus, gotZero int
	for _, c := range e.Coeffs {
		switch c.Sign() {
		case 1:
			gotPlus++
		case -1:
			gotMinus++
		default:
			gotZero++
		}
	}
	if gotPlus != plus {
		t.Errorf("got %d +1 coefficients, want %d", gotPlus, plus)
	}
	if gotMinus != minus {
		t.Errorf("got %d -1 coefficients, want %d", gotMinus, minus)
	}
	if gotZero != N-plus-minus {
		t.Errorf("got %d zero coefficients, want %d", gotZero, N-plus-minus)
	}
}

func TestGenTernary_DeterministicGivenSeed(t *testing.T) {
	a := GenTernary(NewDeterministicSource(99), 50, 10, 10)
	b := GenTernary(NewDeterministicSource(99), 50, 10, 10)
	if !a.Equal(b) {
		t.Fatalf("same seed produced different output")
	}
}
