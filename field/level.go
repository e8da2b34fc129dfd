package field

import (
	"fmt"
	"math/big"
)

// Level identifies one of the five entropy levels a BIP-0039 mnemonic can
// carry, and with it the prime field its Shamir shares are computed over.
type Level int

const (
	Level128 Level = iota
	Level160
	Level192
	Level224
	Level256
)

// levelInfo holds the derived constants for a Level: its bit width, the
// canonical prime (largest prime below 2^bits), and the number of bytes a
// zero-padded Element.ToBytesLE image occupies.
type levelInfo struct {
	bits       int
	subtrahend int64 // prime = 2^bits - subtrahend
	prime      *big.Int
	byteWidth  int
}

// levels is keyed by Level and built once at init time by deriving each
// prime from its "2^bits - subtrahend" expression rather than hardcoding
// the decimal value, so the registry stays auditable against the small
// subtrahend table below.
var levels = map[Level]*levelInfo{
	Level128: {bits: 128, subtrahend: 159},
	Level160: {bits: 160, subtrahend: 47},
	Level192: {bits: 192, subtrahend: 237},
	Level224: {bits: 224, subtrahend: 63},
	Level256: {bits: 256, subtrahend: 189},
}

// wordCountToLevel implements the BIP-0039 word-count to entropy-bit-level
// mapping.
var wordCountToLevel = map[int]Level{
	12: Level128,
	15: Level160,
	18: Level192,
	21: Level224,
	24: Level256,
}

func init() {
	for _, li := range levels {
		p := new(big.Int).Lsh(big.NewInt(1), uint(li.bits))
		p.Sub(p, big.NewInt(li.subtrahend))
		li.prime = p
		li.byteWidth = li.bits / 8
	}
}

// Bits returns the entropy bit width this level represents (128..256).
func (l Level) Bits() int {
	return levels[l].bits
}

// ByteWidth returns the fixed, zero-padded byte length of an Element's
// little-endian serialization at this level: ceil(bit-length(modulus)/8).
// All five canonical primes have a bit-length equal to l.Bits(), so this is
// simply l.Bits()/8.
func (l Level) ByteWidth() int {
	return levels[l].byteWidth
}

// Prime returns the canonical modulus for this level. The returned value
// must not be mutated by callers.
func (l Level) Prime() *big.Int {
	return levels[l].prime
}

// WordCount returns the BIP-0039 mnemonic length (in words) that carries
// exactly this entropy level.
func (l Level) WordCount() int {
	for wc, lvl := range wordCountToLevel {
		if lvl == l {
			return wc
		}
	}
	panic("field: level has no registered word count")
}

// LevelForBits looks up the Level for a supported entropy bit count.
func LevelForBits(bits int) (Level, error) {
	for lvl, li := range levels {
		if li.bits == bits {
			return lvl, nil
		}
	}
	return 0, fmt.Errorf("field: unsupported entropy bit count %d", bits)
}

// LevelForWordCount looks up the Level for a supported mnemonic word count
// (12->128, 15->160, 18->192, 21->224, 24->256 bits).
func LevelForWordCount(words int) (Level, error) {
	lvl, ok := wordCountToLevel[words]
	if !ok {
		return 0, fmt.Errorf("field: unsupported word count %d", words)
	}
	return lvl, nil
}
