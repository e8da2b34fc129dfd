package field

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"
)

// Source is the capability an Element draws fresh randomness from. It is
// handed to Random explicitly rather than read off a package-level global:
// production code wires a CryptoSource, tests wire a deterministic one.
type Source interface {
	// Uint32 returns one fresh, uniformly distributed 32-bit word.
	Uint32() (uint32, error)
}

// CryptoSource draws from crypto/rand; it is the Source wired into the
// split and generate code paths.
type CryptoSource struct{}

// Uint32 reads 4 bytes from crypto/rand and interprets them big-endian.
func (CryptoSource) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("field: reading random word: %w", err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// DeterministicSource is a seeded, reproducible Source for tests: it
// expands a fixed seed into an unbounded BLAKE3 output stream and hands out
// 4 bytes per call, so the same seed always produces the same word
// sequence.
type DeterministicSource struct {
	xof *blake3.Digest
}

// NewDeterministicSource builds a Source that is a pure function of seed:
// two sources built from the same seed emit the same word sequence.
func NewDeterministicSource(seed []byte) *DeterministicSource {
	h := blake3.New()
	h.Write(seed)
	return &DeterministicSource{xof: h.Digest()}
}

// Uint32 reads the next 4 bytes off the deterministic output stream.
func (s *DeterministicSource) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := s.xof.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("field: expanding deterministic source: %w", err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
