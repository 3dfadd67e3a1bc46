package ntru

import (
	"encoding/binary"
	"math/big"
	"math/rand"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// RandSource is the randomness collaborator injected into sampling and key
// generation. Swapping implementations lets tests run deterministically
// while production callers get a CSPRNG, without either caller touching
// the sampling algorithm itself.
type RandSource interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
	// Int63 returns a uniform non-negative int64.
	Int63() int64
}

// DeterministicSource is a math/rand-backed RandSource seeded explicitly,
// used by tests that need reproducible key material.
type DeterministicSource struct {
	r *rand.Rand
}

// NewDeterministicSource builds a DeterministicSource from a fixed seed.
func NewDeterministicSource(seed int64) *DeterministicSource {
	return &DeterministicSource{r: rand.New(rand.NewSource(seed))}
}

func (d *DeterministicSource) Intn(n int) int { return d.r.Intn(n) }
func (d *DeterministicSource) Int63() int64   { return d.r.Int63() }

// SecureSource draws from lattigo's keyed PRNG, a ChaCha20-based CSPRNG
// that the library itself uses to sample uniform ring elements. It is the
// default RandSource for production key generation and encryption.
type SecureSource struct {
	prng utils.PRNG
}

// NewSecureSource constructs a SecureSource seeded from the OS entropy
// pool via lattigo's own unkeyed constructor.
func NewSecureSource() (*SecureSource, error) {
	p, err := utils.NewPRNG()
	if err != nil {
		return nil, err
	}
	return &SecureSource{prng: p}, nil
}

func (s *SecureSource) nextUint64() uint64 {
	var buf [8]byte
	if _, err := s.prng.Read(buf[:]); err != nil {
		// utils.PRNG is backed by a stream cipher over OS entropy and
		// does not fail in normal operation; treat failure as fatal to
		// the caller's sampling step rather than silently reusing bytes.
		panic("ntru: secure randomness source failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (s *SecureSource) Intn(n int) int {
	if n <= 0 {
		panic("ntru: Intn called with n<=0")
	}
	// Rejection sampling against the largest multiple of n below 2^64 to
	// avoid modulo bias.
	limit := uint64(n)
	max := ^uint64(0) - (^uint64(0) % limit)
	for {
		v := s.nextUint64()
		if v < max {
			return int(v % limit)
		}
	}
}

func (s *SecureSource) Int63() int64 {
	return int64(s.nextUint64() >> 1)
}

// RandBigInt returns a uniform value in [0, mod) drawn from src one word
// at a time, used when sampling needs a modulus wider than a machine word.
func RandBigInt(src RandSource, mod *big.Int) *big.Int {
	if mod.Sign() <= 0 {
		return new(big.Int)
	}
	bits := mod.BitLen() + 64
	out := new(big.Int)
	word := new(big.Int)
	for i := 0; i < bits/63+1; i++ {
		word.SetInt64(src.Int63())
		out.Lsh(out, 63)
		out.Or(out, word)
	}
	return out.Mod(out, mod)
}
