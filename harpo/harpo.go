package harpo

import (
	"fmt"

	"github.com/harpo-project/harpo/field"
	"github.com/harpo-project/harpo/mnemonic"
	"github.com/harpo-project/harpo/sharing"
	"github.com/harpo-project/harpo/wordlists"
)

// Create splits phrase into numShares BIP-0039 share phrases, any threshold
// of which reconstruct it, using the default English word list.
func Create(phrase mnemonic.Phrase, threshold, numShares int, embedIndices bool) ([]mnemonic.Phrase, error) {
	return CreateWithList(phrase, threshold, numShares, embedIndices, wordlists.English)
}

// CreateWithList is Create parameterised over an explicit word list.
func CreateWithList(phrase mnemonic.Phrase, threshold, numShares int, embedIndices bool, wl wordlists.List) ([]mnemonic.Phrase, error) {
	if threshold < 1 || threshold > numShares {
		return nil, invalidParameter(fmt.Sprintf("threshold %d must satisfy 1 <= t <= n (n=%d)", threshold, numShares), nil)
	}
	if embedIndices && numShares > mnemonic.MaxEmbeddedShares {
		return nil, invalidParameter(fmt.Sprintf("index embedding requires num_shares <= %d, got %d", mnemonic.MaxEmbeddedShares, numShares), nil)
	}
	if !mnemonic.IsCompliant(phrase, wl) {
		return nil, invalidSeedPhrase("input seed phrase is not BIP-0039 compliant", nil)
	}

	secret, _, err := mnemonic.Decode(phrase, wl)
	if err != nil {
		return nil, invalidSeedPhrase("decoding input seed phrase", err)
	}

	shares, err := sharing.BuildShares(secret, threshold, numShares, field.CryptoSource{})
	if err != nil {
		return nil, invalidParameter("building shares", err)
	}

	out := make([]mnemonic.Phrase, len(shares))
	for i, s := range shares {
		idx := s.Index
		p, err := mnemonic.Encode(s.Element, &idx, embedIndices, wl)
		if err != nil {
			return nil, invalidParameter(fmt.Sprintf("encoding share %d", idx), err)
		}
		out[i] = p
	}
	return out, nil
}

// Reconstruct combines share phrases back into the original seed phrase,
// using the default English word list. Given at least one decodable share
// phrase, it succeeds and returns some phrase regardless of how many
// genuine shares were supplied; an empty input is an error. Correctness is only
// guaranteed once at least the original threshold's worth of distinct,
// genuine shares are present.
func Reconstruct(phrases []mnemonic.Phrase) (mnemonic.Phrase, error) {
	return ReconstructWithList(phrases, wordlists.English)
}

// ReconstructWithList is Reconstruct parameterised over an explicit word
// list.
func ReconstructWithList(phrases []mnemonic.Phrase, wl wordlists.List) (mnemonic.Phrase, error) {
	if len(phrases) == 0 {
		return mnemonic.Phrase{}, invalidSeedPhrase("no share phrases supplied", nil)
	}

	wordCount := len(phrases[0].Words)
	if _, err := field.LevelForWordCount(wordCount); err != nil {
		return mnemonic.Phrase{}, invalidSeedPhrase(fmt.Sprintf("unsupported share phrase length %d", wordCount), err)
	}
	for i, p := range phrases {
		if len(p.Words) != wordCount {
			return mnemonic.Phrase{}, invalidSeedPhrase(fmt.Sprintf("share %d has length %d, want %d", i, len(p.Words), wordCount), nil)
		}
	}

	shares := make([]sharing.Share, len(phrases))
	for i, p := range phrases {
		elem, idx, err := mnemonic.Decode(p, wl)
		if err != nil {
			return mnemonic.Phrase{}, invalidSeedPhrase(fmt.Sprintf("decoding share %d", i), err)
		}
		shares[i] = sharing.Share{Index: idx, Element: elem}
	}

	secret, err := sharing.Reconstruct(shares)
	if err != nil {
		return mnemonic.Phrase{}, invalidSeedPhrase("reconstructing secret from shares", err)
	}

	p, err := mnemonic.Encode(secret, nil, false, wl)
	if err != nil {
		return mnemonic.Phrase{}, invalidParameter("re-encoding reconstructed secret", err)
	}
	return p, nil
}

// Generate samples a fresh, BIP-0039-compliant seed phrase of the given
// word length, using the default English word list.
func Generate(length int) (mnemonic.Phrase, error) {
	return GenerateWithList(length, wordlists.English)
}

// GenerateWithList is Generate parameterised over an explicit word list.
func GenerateWithList(length int, wl wordlists.List) (mnemonic.Phrase, error) {
	level, err := field.LevelForWordCount(length)
	if err != nil {
		return mnemonic.Phrase{}, invalidParameter(fmt.Sprintf("unsupported seed phrase length %d", length), err)
	}

	secret, err := field.Random(level, field.CryptoSource{})
	if err != nil {
		return mnemonic.Phrase{}, invalidParameter("sampling random element", err)
	}

	p, err := mnemonic.Encode(secret, nil, false, wl)
	if err != nil {
		return mnemonic.Phrase{}, invalidParameter("encoding generated element", err)
	}
	return p, nil
}

// Validate reports whether phrase is a well-formed, checksum-valid
// BIP-0039 seed phrase under the default English word list.
func Validate(phrase mnemonic.Phrase) error {
	return ValidateWithList(phrase, wordlists.English)
}

// ValidateWithList is Validate parameterised over an explicit word list.
func ValidateWithList(phrase mnemonic.Phrase, wl wordlists.List) error {
	if mnemonic.IsCompliant(phrase, wl) {
		return nil
	}
	return invalidSeedPhrase("seed phrase is not BIP-0039 compliant", nil)
}
