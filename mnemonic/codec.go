package mnemonic

import (
	"fmt"

	"github.com/harpo-project/harpo/field"
	"github.com/harpo-project/harpo/wordlists"
)

// Encode renders secret as a BIP-0039 phrase drawn from wl. secret's own
// little-endian byte image (B/8 bytes) becomes the entropy prefix verbatim;
// the trailing checksum byte is either the plain SHA-256 prefix, or, if
// embedIndex is set, shareIndex (required, 1..MaxEmbeddedShares) folded into
// its top nibble. The returned Phrase carries shareIndex as its external
// Index annotation iff embedIndex is false and shareIndex is non-nil; an
// embedded index is never also attached externally.
func Encode(secret field.Element, shareIndex *uint32, embedIndex bool, wl wordlists.List) (Phrase, error) {
	level := secret.Level()
	wordCount := level.WordCount()
	entropy := secret.ToBytesLE()

	var checksumByte byte
	if embedIndex {
		if shareIndex == nil {
			return Phrase{}, fmt.Errorf("mnemonic: embedding a share index requires one to be supplied")
		}
		if *shareIndex < 1 || *shareIndex > MaxEmbeddedShares {
			return Phrase{}, fmt.Errorf("mnemonic: share index %d is outside the embeddable range [1,%d]", *shareIndex, MaxEmbeddedShares)
		}
		checksumByte = embeddedChecksumByte(entropy, *shareIndex)
	} else {
		checksumByte = sha256ChecksumByte(entropy)
	}

	buf := make([]byte, 0, len(entropy)+1)
	buf = append(buf, entropy...)
	buf = append(buf, checksumByte)

	indices := unpackIndices(buf, wordCount)
	words := make([]string, wordCount)
	for i, idx := range indices {
		w, err := wl.WordAt(idx)
		if err != nil {
			return Phrase{}, fmt.Errorf("mnemonic: encoding word %d: %w", i, err)
		}
		words[i] = w
	}

	p := Phrase{Words: words}
	if !embedIndex && shareIndex != nil {
		v := *shareIndex
		p.Index = &v
	}
	return p, nil
}

// wordsToBuffer maps p's words back to their 11-bit positions in wl and
// packs them MSB-first into the level's ⌈11L/8⌉-byte buffer.
func wordsToBuffer(p Phrase, wl wordlists.List) ([]byte, field.Level, error) {
	wordCount := len(p.Words)
	level, err := field.LevelForWordCount(wordCount)
	if err != nil {
		return nil, 0, fmt.Errorf("mnemonic: %w", err)
	}

	indices := make([]int, wordCount)
	for i, w := range p.Words {
		idx, ok := wl.IndexOf(w)
		if !ok {
			return nil, 0, fmt.Errorf("mnemonic: word %d (%q) is not in the word list", i, w)
		}
		indices[i] = idx
	}
	return packIndices(indices, wordCount), level, nil
}

// Decode is the inverse of Encode. The returned element is built from the
// entropy prefix alone (buffer[0 .. B/8]), interpreted
// directly as the element's little-endian byte image: the trailing checksum
// byte never contributes to the recovered value, which is what lets encoding
// without embedding round-trip back to the exact original element. The
// returned index is p's external annotation if present, else the checksum
// byte's top nibble plus one.
func Decode(p Phrase, wl wordlists.List) (field.Element, uint32, error) {
	buf, level, err := wordsToBuffer(p, wl)
	if err != nil {
		return field.Element{}, 0, err
	}

	entropy := buf[:level.ByteWidth()]
	secret := field.FromBytesLE(entropy, level)

	if p.Index != nil {
		return secret, *p.Index, nil
	}
	checksumByte := buf[level.ByteWidth()]
	return secret, embeddedIndex(checksumByte), nil
}

// IsCompliant reports whether p is a well-formed, checksum-valid BIP-0039
// phrase over wl. It has no notion of index embedding: an embedded share is
// expected to fail this check.
func IsCompliant(p Phrase, wl wordlists.List) bool {
	buf, level, err := wordsToBuffer(p, wl)
	if err != nil {
		return false
	}
	byteWidth := level.ByteWidth()
	entropy := buf[:byteWidth]
	checksumByte := buf[byteWidth]
	c := checksumBitCount(len(p.Words), level.Bits())
	return checksumCompliant(entropy, checksumByte, c)
}
