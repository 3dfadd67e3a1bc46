package ntru

import "errors"

// Sentinel errors returned at the outermost session call. Callers match
// them with errors.Is; internal call sites wrap them with fmt.Errorf's
// %w so context survives without losing the kind.
var (
	// ErrParameterInvalid is returned by NewParams when N is not prime,
	// p and q are not coprime, 8p > q, or a weight exceeds N/2.
	ErrParameterInvalid = errors.New("ntru: parameter invalid")

	// ErrKeygenFailed is returned when MAX_TRIES resamples of f are
	// exhausted without finding one invertible mod both p and q.
	ErrKeygenFailed = errors.New("ntru: key generation failed")

	// ErrInputTooLong is returned by DecryptBlock when the ciphertext's
	// apparent degree is >= N.
	ErrInputTooLong = errors.New("ntru: ciphertext block too long")

	// ErrFramingError is returned when a ciphertext's coefficient count
	// is not a multiple of N, or a key file is malformed.
	ErrFramingError = errors.New("ntru: framing error")

	// ErrIO wraps file I/O failures from the keyfile collaborator.
	ErrIO = errors.New("ntru: io error")

	// ErrNoInverse is returned by Invert when the argument has no
	// inverse for the requested modulus (gcd with x^N-1 is nontrivial).
	ErrNoInverse = errors.New("ntru: no inverse exists")
)
