package field

import (
	"fmt"
	"math/big"
)

// Element is a value in [0, modulus) for one of the five canonical primes.
// Arithmetic methods never mutate their receiver or argument; each returns a
// fresh Element backed by a fresh *big.Int, so an Element owns its value
// image for its whole lifetime.
type Element struct {
	value *big.Int
	level Level
}

// Zero returns the additive identity at the given level.
func Zero(level Level) Element {
	return Element{value: big.NewInt(0), level: level}
}

// FromUint64 lifts a small non-negative integer into the field, reducing it
// mod the level's prime. Used to lift share indices (x-coordinates) into
// the field for Horner evaluation and Lagrange interpolation.
func FromUint64(v uint64, level Level) Element {
	val := new(big.Int).SetUint64(v)
	val.Mod(val, level.Prime())
	return Element{value: val, level: level}
}

// FromBytesLE interprets bytes as a little-endian non-negative integer and
// reduces it modulo the level's prime. The mnemonic codec calls this with
// the entropy prefix only (the checksum byte never contributes to the
// element's value), so that encoding a secret and decoding it back recovers
// the exact original element.
func FromBytesLE(data []byte, level Level) Element {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	val := new(big.Int).SetBytes(be)
	val.Mod(val, level.Prime())
	return Element{value: val, level: level}
}

// Random draws a uniformly distributed element of the given level from src:
// ceil(bits/32) fresh 32-bit words, interpreted as a non-negative integer
// and reduced mod the prime.
func Random(level Level, src Source) (Element, error) {
	words := (level.Bits() + 31) / 32
	val := new(big.Int)
	for i := 0; i < words; i++ {
		w, err := src.Uint32()
		if err != nil {
			return Element{}, fmt.Errorf("field: sampling random element: %w", err)
		}
		val.Lsh(val, 32)
		val.Or(val, new(big.Int).SetUint64(uint64(w)))
	}
	val.Mod(val, level.Prime())
	return Element{value: val, level: level}, nil
}

// Level reports which prime field this element belongs to.
func (e Element) Level() Level {
	return e.level
}

// mustSameLevel panics on a level mismatch: combining elements of differing
// moduli in a binary operation is a programming error, not a condition
// callers are expected to recover from.
func mustSameLevel(a, b Element) {
	if a.level != b.level {
		panic(fmt.Sprintf("field: level mismatch (%v vs %v)", a.level, b.level))
	}
}

// Add returns (a + b) mod m.
func (a Element) Add(b Element) Element {
	mustSameLevel(a, b)
	v := new(big.Int).Add(a.value, b.value)
	v.Mod(v, a.level.Prime())
	return Element{value: v, level: a.level}
}

// Sub returns (a - b) mod m, computed as (a + m - b) mod m to avoid
// negative intermediate values.
func (a Element) Sub(b Element) Element {
	mustSameLevel(a, b)
	v := new(big.Int).Add(a.value, a.level.Prime())
	v.Sub(v, b.value)
	v.Mod(v, a.level.Prime())
	return Element{value: v, level: a.level}
}

// Mul returns (a * b) mod m.
func (a Element) Mul(b Element) Element {
	mustSameLevel(a, b)
	v := new(big.Int).Mul(a.value, b.value)
	v.Mod(v, a.level.Prime())
	return Element{value: v, level: a.level}
}

// Div returns a * inverse(b) mod m. The inverse is computed via the
// extended Euclidean algorithm (math/big.Int.ModInverse). Behaviour is
// undefined if b is zero; callers must not divide by zero — the sharing
// package's Lagrange interpolation guarantees non-zero denominators by
// construction (distinct share indices), so this is never exercised at a
// zero divisor in practice.
func (a Element) Div(b Element) Element {
	mustSameLevel(a, b)
	inv := new(big.Int).ModInverse(b.value, a.level.Prime())
	v := new(big.Int).Mul(a.value, inv)
	v.Mod(v, a.level.Prime())
	return Element{value: v, level: a.level}
}

// Equal reports whether a and b have the same level and value.
func (a Element) Equal(b Element) bool {
	return a.level == b.level && a.value.Cmp(b.value) == 0
}

// IsZero reports whether the element is the additive identity.
func (a Element) IsZero() bool {
	return a.value.Sign() == 0
}

// ToBytesLE serializes the element little-endian, zero-padded to the
// level's fixed byte width: the width is fixed by the modulus, not by the
// current value, so a small value still serializes to a full-width image.
func (a Element) ToBytesLE() []byte {
	width := a.level.ByteWidth()
	be := a.value.FillBytes(make([]byte, width))
	out := make([]byte, width)
	for i, b := range be {
		out[width-1-i] = b
	}
	return out
}

// String renders the element's decimal value, for debugging.
func (a Element) String() string {
	return a.value.String()
}
