package ntru

import "math/big"

// IsPrime reports whether n is prime. It delegates to math/big's
// Baillie-PSW plus Miller-Rabin test, which is exact for the parameter
// sizes NTRU uses (N rarely exceeds a few thousand).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(int64(n)).ProbablyPrime(20)
}

// smallPrimes is the trial-division base used by PrimePowerBase before
// falling back to a primality test of the full value; it covers every
// prime that can appear as the base of a prime power (with k >= 2) below
// 53*53=2809.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// PrimePowerBase reports whether m == base^k for some prime base and
// k >= 1, returning that base. It is used to decide whether inverting a
// ring element modulo m requires Euclidean inversion over F_base[x]
// followed by Hensel lifting (k > 1), or a single Euclidean inversion
// (k == 1, m itself prime).
func PrimePowerBase(m int64) (base int64, k int, ok bool) {
	if m < 2 {
		return 0, 0, false
	}
	rem := m
	for _, p := range smallPrimes {
		if rem%p != 0 {
			continue
		}
		exp := 0
		for rem%p == 0 {
			rem /= p
			exp++
		}
		if rem == 1 {
			return p, exp, true
		}
		return 0, 0, false
	}
	// m has no prime factor up to 47; treat it as prime itself (k=1) if
	// big.Int agrees, otherwise report it as not a prime power (this also
	// covers prime powers of a larger base, such as 53^2).
	if IsPrime(int(m)) {
		return m, 1, true
	}
	return 0, 0, false
}

// DistinctPrimeFactors trial-divides n and returns the set of distinct
// primes dividing it, following the factorint helper the reference
// implementation's security check runs against the leading coefficient
// of the public key.
func DistinctPrimeFactors(n int64) []int64 {
	if n < 0 {
		n = -n
	}
	var factors []int64
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			factors = append(factors, d)
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// PossibleKeySpace estimates the meet-in-the-middle search space
// 2^df*(df+1)^2 * 2^dg*(dg+1) * 2^dr*(dr+1), following the closed form
// published by the reference implementation's security_check module.
func PossibleKeySpace(df, dg, dr int) *big.Int {
	term := func(d, exponent int) *big.Int {
		t := new(big.Int).Lsh(big.NewInt(1), uint(d))
		return t.Mul(t, new(big.Int).Exp(big.NewInt(int64(d+1)), big.NewInt(int64(exponent)), nil))
	}
	space := term(df, 2)
	space.Mul(space, term(dg, 1))
	space.Mul(space, term(dr, 1))
	return space
}
