package ntru

import (
	"fmt"
	"math/big"
	"os"
)

const maxKeygenTries = 100

// Diagnostics reports advisory, non-gating observations collected while
// generating a key pair: the meet-in-the-middle keyspace estimate and a
// sparsity flag on f and h, following the reference implementation's
// security_check module. Neither observation ever causes generation to
// retry; callers may log or surface them as they see fit.
type Diagnostics struct {
	KeySpace           *big.Int
	ExceedsMITMBound   bool
	FSparse            bool
	HSparse            bool
	SparsityThreshold  int
}

// KeygenOptions controls the retry and validation policy of
// GenerateKeyPair.
type KeygenOptions struct {
	// SkipLeadingCoeffCheck disables the health check that rejects a
	// candidate h whose leading coefficient has a nontrivial small-integer
	// factorization. Default false (check enabled), matching the
	// reference implementation's default behavior.
	SkipLeadingCoeffCheck bool
}

// KeyPair is a complete NTRU private/public key pair.
type KeyPair struct {
	Params Params
	F      RingElement
	Fp     RingElement // f^-1 mod p
	Fq     RingElement // f^-1 mod q
	G      RingElement
	H      RingElement // public key: p * fq * g mod q
}

// GenerateKeyPair samples f and g, inverts f modulo p and q, and derives
// the public key h = p*f_q*g mod q, retrying the sampling of f up to
// maxKeygenTries times (and regenerating f and g entirely whenever the
// leading-coefficient health check fails), mirroring genfg/genh in the
// reference implementation. Inversion failures and health-check failures
// count against the same maxKeygenTries budget.
func GenerateKeyPair(par Params, src RandSource, opts KeygenOptions, rec Recorder) (KeyPair, Diagnostics, error) {
	if rec == nil {
		rec = NoopRecorder{}
	}
	dbg(os.Stderr, "[KeyEngine] GenerateKeyPair begin N=%d P=%s Q=%s\n", par.N, par.P, par.Q)
	g := GenTernary(src, par.N, par.Dg, par.Dg)
	for attempt := 0; ; attempt++ {
		kp, ok, err := tryGenerateOnce(par, src, g)
		if err != nil {
			return KeyPair{}, Diagnostics{}, err
		}
		if !ok {
			rec.KeygenAttempt(false)
			if attempt >= maxKeygenTries-1 {
				return KeyPair{}, Diagnostics{}, fmt.Errorf("%w: exhausted %d attempts sampling an invertible f", ErrKeygenFailed, maxKeygenTries)
			}
			continue
		}
		if !opts.SkipLeadingCoeffCheck {
			lead := kp.H.Coeffs[kp.H.Degree()].Int64()
			factors := DistinctPrimeFactors(lead)
			if len(factors) > 1 || (len(factors) == 1 && factors[0] != lead) {
				rec.KeygenAttempt(false)
				if attempt >= maxKeygenTries-1 {
					return KeyPair{}, Diagnostics{}, fmt.Errorf("%w: leading coefficient health check never passed in %d attempts", ErrKeygenFailed, maxKeygenTries)
				}
				g = GenTernary(src, par.N, par.Dg, par.Dg)
				continue
			}
		}
		rec.KeygenAttempt(true)
		diag := computeDiagnostics(par, kp)
		dbg(os.Stderr, "[KeyEngine] GenerateKeyPair done after %d attempts\n", attempt+1)
		return kp, diag, nil
	}
}

// tryGenerateOnce samples one f for the given g and attempts to invert f.
// ok is false (with no error) when f has no inverse mod p or mod q,
// signaling the caller to resample f.
func tryGenerateOnce(par Params, src RandSource, g RingElement) (KeyPair, bool, error) {
	f := GenTernary(src, par.N, par.Df, par.Df-1)

	fp, err := Invert(f, par.N, par.P)
	if err != nil {
		return KeyPair{}, false, nil
	}
	fq, err := Invert(f, par.N, par.Q)
	if err != nil {
		return KeyPair{}, false, nil
	}

	h := fq.ScalarMul(par.P).Mul(g).Reduce(par.Q)

	return KeyPair{Params: par, F: f, Fp: fp, Fq: fq, G: g, H: h}, true, nil
}

func computeDiagnostics(par Params, kp KeyPair) Diagnostics {
	const threshold = 3
	nonzero := func(e RingElement) int {
		n := 0
		for _, c := range e.Coeffs {
			if c.Sign() != 0 {
				n++
			}
		}
		return n
	}
	space := PossibleKeySpace(par.Df, par.Dg, par.Dr)
	bound := new(big.Int).Lsh(big.NewInt(1), 80)
	return Diagnostics{
		KeySpace:          space,
		ExceedsMITMBound:  space.Cmp(bound) > 0,
		FSparse:           nonzero(kp.F) <= threshold,
		HSparse:           nonzero(kp.H) <= threshold,
		SparsityThreshold: threshold,
	}
}
