package ntru

import (
	"fmt"
	"os"
)

// EncryptBlock encrypts a single message block m (coefficients already
// reduced, typically ternary or p-ary) against public key h, drawing a
// fresh random masking polynomial r of weight (dr, dr):
//
//	e = reduce_coeffs(r*h + m mod I, q)
func EncryptBlock(m RingElement, h RingElement, par Params, src RandSource) (RingElement, error) {
	if m.N() != par.N || h.N() != par.N {
		return RingElement{}, fmt.Errorf("%w: block length mismatch", ErrFramingError)
	}
	r := GenTernary(src, par.N, par.Dr, par.Dr)
	e := r.Mul(h).Add(m).Center(par.Q)
	dbg(os.Stderr, "[Cipher] EncryptBlock N=%d\n", par.N)
	return e, nil
}

// DecryptBlock recovers the message block from ciphertext e using the
// private f and its inverse mod p, f_p:
//
//	a = reduce_coeffs(f*e mod I, q)   (centered around 0)
//	b = reduce_coeffs(a, p)
//	m = reduce_coeffs(f_p*b mod I, p)
func DecryptBlock(e RingElement, f, fp RingElement, par Params) (RingElement, error) {
	if e.Degree() >= par.N {
		return RingElement{}, fmt.Errorf("%w: ciphertext block has degree >= %d", ErrInputTooLong, par.N)
	}
	a := f.Mul(e).Center(par.Q)
	b := a.Center(par.P)
	m := fp.Mul(b).Center(par.P)
	dbg(os.Stderr, "[Cipher] DecryptBlock N=%d\n", par.N)
	return m, nil
}
