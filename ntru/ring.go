package ntru

import "math/big"

// RingElement is a polynomial of degree < N over Z, represented by its
// coefficient vector with Coeffs[i] the coefficient of x^i. RingElement
// values are the working representation of f, g, h, r, m and every
// intermediate of the NTRU session; reduction modulo a modulus is applied
// explicitly by callers via Reduce, mirroring the reference
// implementation's choice to keep plain integer coefficients until a
// modular operation is actually required.
type RingElement struct {
	Coeffs []*big.Int
}

// NewRingElement allocates the zero element of degree < N.
func NewRingElement(N int) RingElement {
	c := make([]*big.Int, N)
	for i := range c {
		c[i] = new(big.Int)
	}
	return RingElement{Coeffs: c}
}

// FromInts builds a RingElement from a coefficient slice, padding with
// zeros or truncating to exactly N entries.
func FromInts(N int, vals []int64) RingElement {
	e := NewRingElement(N)
	for i := 0; i < len(vals) && i < N; i++ {
		e.Coeffs[i].SetInt64(vals[i])
	}
	return e
}

// Clone returns a deep copy.
func (a RingElement) Clone() RingElement {
	out := NewRingElement(len(a.Coeffs))
	for i, c := range a.Coeffs {
		out.Coeffs[i].Set(c)
	}
	return out
}

// N returns the ring order of a.
func (a RingElement) N() int { return len(a.Coeffs) }

// Add returns a+b over Z, unreduced.
func (a RingElement) Add(b RingElement) RingElement {
	out := NewRingElement(len(a.Coeffs))
	for i := range a.Coeffs {
		out.Coeffs[i].Add(a.Coeffs[i], b.Coeffs[i])
	}
	return out
}

// Sub returns a-b over Z, unreduced.
func (a RingElement) Sub(b RingElement) RingElement {
	out := NewRingElement(len(a.Coeffs))
	for i := range a.Coeffs {
		out.Coeffs[i].Sub(a.Coeffs[i], b.Coeffs[i])
	}
	return out
}

// Neg returns -a.
func (a RingElement) Neg() RingElement {
	out := NewRingElement(len(a.Coeffs))
	for i := range a.Coeffs {
		out.Coeffs[i].Neg(a.Coeffs[i])
	}
	return out
}

// ScalarMul returns a*s over Z.
func (a RingElement) ScalarMul(s *big.Int) RingElement {
	out := NewRingElement(len(a.Coeffs))
	for i := range a.Coeffs {
		out.Coeffs[i].Mul(a.Coeffs[i], s)
	}
	return out
}

// Mul returns a*b in R = Z[x]/(x^N-1), i.e. cyclic convolution: a term
// landing at degree i+j >= N folds back to degree i+j-N and ADDS, unlike
// the negacyclic x^N+1 ring where a folded term subtracts.
func (a RingElement) Mul(b RingElement) RingElement {
	N := len(a.Coeffs)
	out := NewRingElement(N)
	tmp := new(big.Int)
	for i, ai := range a.Coeffs {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b.Coeffs {
			if bj.Sign() == 0 {
				continue
			}
			tmp.Mul(ai, bj)
			k := i + j
			if k >= N {
				k -= N
			}
			out.Coeffs[k].Add(out.Coeffs[k], tmp)
		}
	}
	return out
}

// Reduce reduces every coefficient modulo m into [0, m).
func (a RingElement) Reduce(m *big.Int) RingElement {
	out := NewRingElement(len(a.Coeffs))
	for i, c := range a.Coeffs {
		out.Coeffs[i].Mod(c, m)
	}
	return out
}

// Center reduces every coefficient modulo m into the balanced interval
// (-m/2, m/2], matching the "centerlift" convention the reference
// implementation applies before rounding by p/q.
func (a RingElement) Center(m *big.Int) RingElement {
	out := NewRingElement(len(a.Coeffs))
	half := new(big.Int).Rsh(m, 1)
	for i, c := range a.Coeffs {
		v := new(big.Int).Mod(c, m)
		if v.Cmp(half) > 0 {
			v.Sub(v, m)
		}
		out.Coeffs[i].Set(v)
	}
	return out
}

// Degree returns the index of the highest nonzero coefficient, or -1 for
// the zero element.
func (a RingElement) Degree() int {
	for i := len(a.Coeffs) - 1; i >= 0; i-- {
		if a.Coeffs[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// Equal reports whether a and b have identical coefficient vectors.
func (a RingElement) Equal(b RingElement) bool {
	if len(a.Coeffs) != len(b.Coeffs) {
		return false
	}
	for i := range a.Coeffs {
		if a.Coeffs[i].Cmp(b.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Int64s returns the coefficients as an int64 slice, for callers that
// know the values fit (centered representatives of small-weight or
// reduced elements).
func (a RingElement) Int64s() []int64 {
	out := make([]int64, len(a.Coeffs))
	for i, c := range a.Coeffs {
		out[i] = c.Int64()
	}
	return out
}
