package ntru

import (
	"fmt"
	"math/big"
)

// fieldPoly is a variable-length polynomial over Z/baseZ, used only as the
// scratch representation inside the extended Euclidean algorithm. It
// mirrors the reference implementation's own division-with-remainder loop,
// generalized from uint64 coefficients to big.Int to match RingElement.
// Invert only calls it with a base that fits in an int64.
type fieldPoly struct {
	coeffs []*big.Int
	base   *big.Int
}

func newFieldPoly(coeffs []*big.Int, base *big.Int) fieldPoly {
	return fieldPoly{coeffs: coeffs, base: base}
}

func (p fieldPoly) degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

func (p fieldPoly) trim() fieldPoly {
	d := p.degree()
	return fieldPoly{coeffs: p.coeffs[:d+1], base: p.base}
}

func modAddBig(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	return z.Mod(z, m)
}

func modSubBig(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Sub(x, y)
	return z.Mod(z, m)
}

func modMulBig(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, m)
}

func (p fieldPoly) sub(q fieldPoly) fieldPoly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		ai := big.NewInt(0)
		bi := big.NewInt(0)
		if i < len(p.coeffs) {
			ai = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			bi = q.coeffs[i]
		}
		out[i] = modSubBig(ai, bi, p.base)
	}
	return newFieldPoly(out, p.base).trim()
}

func (p fieldPoly) scalarMul(c *big.Int) fieldPoly {
	out := make([]*big.Int, len(p.coeffs))
	for i, v := range p.coeffs {
		out[i] = modMulBig(v, c, p.base)
	}
	return newFieldPoly(out, p.base)
}

func (p fieldPoly) mul(q fieldPoly) fieldPoly {
	if p.degree() < 0 || q.degree() < 0 {
		return newFieldPoly(nil, p.base)
	}
	out := make([]*big.Int, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = big.NewInt(0)
	}
	for i, ai := range p.coeffs {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range q.coeffs {
			if bj.Sign() == 0 {
				continue
			}
			out[i+j] = modAddBig(out[i+j], modMulBig(ai, bj, p.base), p.base)
		}
	}
	return newFieldPoly(out, p.base).trim()
}

// divMod performs polynomial division over Z/baseZ, requiring base to be
// prime so the divisor's leading coefficient is invertible.
func (p fieldPoly) divMod(d fieldPoly) (q, r fieldPoly, ok bool) {
	dd := d.degree()
	if dd < 0 {
		return fieldPoly{}, fieldPoly{}, false
	}
	leadInv := new(big.Int).ModInverse(d.coeffs[dd], p.base)
	if leadInv == nil {
		return fieldPoly{}, fieldPoly{}, false
	}
	rem := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		rem[i] = new(big.Int).Set(c)
	}
	quot := make([]*big.Int, 0)
	rp := newFieldPoly(rem, p.base)
	for rp.degree() >= dd {
		da := rp.degree()
		shift := da - dd
		coef := modMulBig(rp.coeffs[da], leadInv, p.base)
		for shift >= len(quot) {
			quot = append(quot, big.NewInt(0))
		}
		quot[shift] = modAddBig(quot[shift], coef, p.base)
		for i := 0; i <= dd; i++ {
			term := modMulBig(coef, d.coeffs[i], p.base)
			rp.coeffs[i+shift] = modSubBig(rp.coeffs[i+shift], term, p.base)
		}
		rp = rp.trim()
	}
	return newFieldPoly(quot, p.base).trim(), rp, true
}

// reduceModXN1 folds a polynomial of any degree down to degree < N modulo
// x^N - 1: unlike the negacyclic x^N+1 ring, every fold ADDS rather than
// subtracts the wrapped term.
func reduceModXN1(a fieldPoly, N int) fieldPoly {
	out := make([]*big.Int, N)
	for i := range out {
		out[i] = big.NewInt(0)
	}
	for i, c := range a.coeffs {
		if c.Sign() == 0 {
			continue
		}
		idx := i % N
		out[idx] = modAddBig(out[idx], c, a.base)
	}
	return newFieldPoly(out, a.base)
}

// invertInField inverts f in (Z/baseZ)[x]/(x^N-1) via the extended
// Euclidean algorithm against x^N-1, following the same iterative
// structure as the reference implementation's egcd loop but generalized
// from a fixed uint64 modulus to an arbitrary prime base.
func invertInField(f RingElement, N int, base *big.Int) (RingElement, bool) {
	modulus := make([]*big.Int, N+1)
	for i := range modulus {
		modulus[i] = big.NewInt(0)
	}
	modulus[0] = modSubBig(big.NewInt(0), big.NewInt(1), base) // -1 mod base
	modulus[N] = big.NewInt(1)
	R0 := newFieldPoly(modulus, base)

	fc := make([]*big.Int, N)
	for i, c := range f.Coeffs {
		fc[i] = new(big.Int).Mod(c, base)
	}
	R1 := newFieldPoly(fc, base).trim()

	S0 := newFieldPoly([]*big.Int{big.NewInt(1)}, base)
	S1 := newFieldPoly(nil, base)
	T0 := newFieldPoly(nil, base)
	T1 := newFieldPoly([]*big.Int{big.NewInt(1)}, base)

	for R1.degree() >= 0 {
		q, r, ok := R0.divMod(R1)
		if !ok {
			return RingElement{}, false
		}
		R0, R1 = R1, r
		newS1 := S0.sub(q.mul(S1))
		newT1 := T0.sub(q.mul(T1))
		S0, S1 = S1, newS1
		T0, T1 = T1, newT1
	}
	if R0.degree() != 0 {
		return RingElement{}, false
	}
	invLead := new(big.Int).ModInverse(R0.coeffs[0], base)
	if invLead == nil {
		return RingElement{}, false
	}
	g := T0.scalarMul(invLead)
	g = reduceModXN1(g, N)

	out := NewRingElement(N)
	for i := 0; i < N && i < len(g.coeffs); i++ {
		out.Coeffs[i].Set(g.coeffs[i])
	}
	return out, true
}

// Invert returns f^-1 in R_m = (Z/mZ)[x]/(x^N-1). If m is prime it inverts
// directly over F_m[x]; if m is a prime power base^k it inverts over
// F_base[x] first and then lifts the result to modulus base^k via Newton
// iteration (Hensel lifting), doubling precision each round as in the
// reference implementation's "invert, then lift" key-generation strategy.
func Invert(f RingElement, N int, m *big.Int) (RingElement, error) {
	if !m.IsInt64() {
		return RingElement{}, fmt.Errorf("%w: modulus %s too large for prime-power detection", ErrNoInverse, m)
	}
	base, k, ok := PrimePowerBase(m.Int64())
	if !ok {
		return RingElement{}, fmt.Errorf("%w: modulus %s is not a prime power", ErrNoInverse, m)
	}
	baseBig := big.NewInt(base)
	inv, ok := invertInField(f, N, baseBig)
	if !ok {
		return RingElement{}, fmt.Errorf("%w: not invertible mod %d", ErrNoInverse, base)
	}
	if k == 1 {
		return inv, nil
	}

	modulus := baseBig
	two := big.NewInt(2)
	for i := 1; i < k; {
		step := i * 2
		if step > k {
			step = k
		}
		nextModulus := new(big.Int).Exp(baseBig, big.NewInt(int64(step)), nil)
		// Newton step: inv_new = inv*(2 - f*inv) mod nextModulus
		prod := f.Mul(inv).Reduce(nextModulus)
		twoMinus := RingElement{Coeffs: make([]*big.Int, N)}
		for j := range twoMinus.Coeffs {
			v := big.NewInt(0)
			if j == 0 {
				v = new(big.Int).Set(two)
			}
			twoMinus.Coeffs[j] = v
		}
		twoMinus = twoMinus.Sub(prod).Reduce(nextModulus)
		inv = inv.Mul(twoMinus).Reduce(nextModulus)
		modulus = nextModulus
		i = step
	}
	_ = modulus
	return inv, nil
}
