package ntru

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// RandomSeed draws a seed from the OS entropy pool, falling back to the
// wall clock if the OS source is unavailable. It is meant for callers
// that want a fresh, non-reproducible DeterministicSource (e.g. a
// benchmark run) without reaching for the full SecureSource CSPRNG.
func RandomSeed() int64 {
	var seed int64
	if err := binary.Read(rand.Reader, binary.LittleEndian, &seed); err != nil {
		return time.Now().UnixNano()
	}
	return seed
}
