package harpo_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/harpo-project/harpo/harpo"
	"github.com/harpo-project/harpo/mnemonic"
	"github.com/harpo-project/harpo/wordlists"
)

func mustParse(t *testing.T, text string) mnemonic.Phrase {
	t.Helper()
	p, err := mnemonic.ParsePhrase(text)
	require.NoError(t, err)
	return p
}

// TestSplitCombineCorrectness checks that for valid (T, N) and both
// embedding modes, splitting and then combining any T of the N shares
// recovers the original phrase.
func TestSplitCombineCorrectness(t *testing.T) {
	original := mustParse(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	for _, embed := range []bool{false, true} {
		shares, err := harpo.Create(original, 3, 5, embed)
		require.NoError(t, err)
		require.Len(t, shares, 5)

		subset := shares[1:4] // exactly threshold-many
		recovered, err := harpo.Reconstruct(subset)
		require.NoError(t, err)
		require.Equal(t, original.Words, recovered.Words)

		all, err := harpo.Reconstruct(shares)
		require.NoError(t, err)
		require.Equal(t, original.Words, all.Words)
	}
}

// TestBelowThresholdDoesNotReconstruct checks that with fewer than the
// threshold, the observed mnemonic differs from the original (not a
// statistical claim, just inequality).
func TestBelowThresholdDoesNotReconstruct(t *testing.T) {
	original := mustParse(t, "letter advice cage absurd amount doctor acoustic avoid letter advice cage above")
	shares, err := harpo.Create(original, 4, 6, false)
	require.NoError(t, err)

	recovered, err := harpo.Reconstruct(shares[:2])
	require.NoError(t, err)
	require.NotEqual(t, original.Words, recovered.Words)
}

// TestDuplicateIndexPolicyLastWins checks end to end that duplicating a
// share index in the reconstruction input must not error, and must
// resolve to the last-provided value for that index.
func TestDuplicateIndexPolicyLastWins(t *testing.T) {
	original := mustParse(t, "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong")
	shares, err := harpo.Create(original, 2, 3, false)
	require.NoError(t, err)

	// A forged duplicate of share 2's index carrying share 1's payload:
	// reconstruction should behave as if only the last occurrence (here,
	// the genuine share 2) was supplied at that index.
	forged := shares[0]
	forged.Index = shares[1].Index

	withDuplicate := []mnemonic.Phrase{forged, shares[1], shares[2]}
	recovered, err := harpo.Reconstruct(withDuplicate)
	require.NoError(t, err)

	withoutForged := []mnemonic.Phrase{shares[1], shares[2]}
	expected, err := harpo.Reconstruct(withoutForged)
	require.NoError(t, err)

	require.Equal(t, expected.Words, recovered.Words)
}

// TestVectorS6 reconstructs the original's exact two embedded-index share
// phrases from the scenario table.
func TestVectorS6(t *testing.T) {
	shareA := mustParse(t, "coil reunion immune ignore custom gallery dutch trouble snake ball wrong bike")
	shareB := mustParse(t, "stable biology key post fiction concert hill step vibrant ocean punch car")

	recovered, err := harpo.Reconstruct([]mnemonic.Phrase{shareA, shareB})
	require.NoError(t, err)
	require.Equal(t, "letter advice cage absurd amount doctor acoustic avoid letter advice cage above", phraseText(recovered))
}

func phraseText(p mnemonic.Phrase) string {
	out := ""
	for i, w := range p.Words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}

// TestBelowThresholdObservableSecrecyAcrossManyTrials strengthens the
// below-threshold check beyond a single inequality: across many independent
// splits, the fraction of below-threshold reconstructions that happen to
// collide with the original phrase should be a small minority, not a
// fluke-sized sample. This does not assert statistical uniformity of the
// underlying secret-sharing scheme, only that the observed mismatch rate
// summarized via stats.Mean stays in the expected range.
func TestBelowThresholdObservableSecrecyAcrossManyTrials(t *testing.T) {
	const trials = 32
	mismatches := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		original, err := harpo.Generate(12)
		require.NoError(t, err)

		shares, err := harpo.Create(original, 3, 5, false)
		require.NoError(t, err)

		recovered, err := harpo.Reconstruct(shares[:2])
		require.NoError(t, err)

		if !cmp.Equal(original.Words, recovered.Words) {
			mismatches = append(mismatches, 1)
		} else {
			mismatches = append(mismatches, 0)
		}
	}

	mean, err := stats.Mean(mismatches)
	require.NoError(t, err)
	require.Greaterf(t, mean, 0.9, "expected the overwhelming majority of below-threshold reconstructions to mismatch, got rate %.3f", mean)
}

// TestReconstructDiffOnMismatch documents, via an explicit structural diff,
// how a below-threshold reconstruction differs word-for-word from the
// original — useful context a bare require.NotEqual discards.
func TestReconstructDiffOnMismatch(t *testing.T) {
	original := mustParse(t, "letter advice cage absurd amount doctor acoustic avoid letter advice cage above")
	shares, err := harpo.Create(original, 4, 6, false)
	require.NoError(t, err)

	recovered, err := harpo.Reconstruct(shares[:2])
	require.NoError(t, err)

	diff := cmp.Diff(original.Words, recovered.Words)
	require.NotEmpty(t, diff, "expected a below-threshold reconstruction to differ from the original")
}

func TestCreateRejectsThresholdOutOfRange(t *testing.T) {
	original := mustParse(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	_, err := harpo.Create(original, 0, 3, false)
	require.Error(t, err)
	var herr *harpo.Error
	require.ErrorAs(t, err, &herr)
	require.Equal(t, harpo.KindInvalidParameter, herr.Kind)

	_, err = harpo.Create(original, 4, 3, false)
	require.Error(t, err)
}

func TestCreateRejectsEmbeddingOverMaxShares(t *testing.T) {
	original := mustParse(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	_, err := harpo.Create(original, 2, mnemonic.MaxEmbeddedShares+1, true)
	require.Error(t, err)
	var herr *harpo.Error
	require.ErrorAs(t, err, &herr)
	require.Equal(t, harpo.KindInvalidParameter, herr.Kind)
}

func TestCreateRejectsNonCompliantInput(t *testing.T) {
	bogus := mnemonic.Phrase{Words: []string{
		"abandon", "abandon", "abandon", "abandon", "abandon", "abandon",
		"abandon", "abandon", "abandon", "abandon", "abandon", "zoo",
	}}
	_, err := harpo.Create(bogus, 2, 3, false)
	require.Error(t, err)
	var herr *harpo.Error
	require.ErrorAs(t, err, &herr)
	require.Equal(t, harpo.KindInvalidSeedPhrase, herr.Kind)
}

func TestValidate(t *testing.T) {
	good := mustParse(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	require.NoError(t, harpo.Validate(good))

	bad := mnemonic.Phrase{Words: append(append([]string(nil), good.Words[:11]...), "zoo")}
	err := harpo.Validate(bad)
	require.Error(t, err)
	var herr *harpo.Error
	require.ErrorAs(t, err, &herr)
	require.Equal(t, harpo.KindInvalidSeedPhrase, herr.Kind)
}

func TestGenerateProducesCompliantPhraseOfRequestedLength(t *testing.T) {
	for _, l := range []int{12, 15, 18, 21, 24} {
		p, err := harpo.Generate(l)
		require.NoError(t, err)
		require.Len(t, p.Words, l)
		require.NoError(t, harpo.Validate(p))
	}
}

func TestGenerateRejectsUnsupportedLength(t *testing.T) {
	_, err := harpo.Generate(13)
	require.Error(t, err)
	var herr *harpo.Error
	require.ErrorAs(t, err, &herr)
	require.Equal(t, harpo.KindInvalidParameter, herr.Kind)
}

func TestWithListVariantsAcceptCustomList(t *testing.T) {
	words := make([]string, wordlists.WordCount)
	for i := range words {
		words[i] = padWord(i)
	}
	wl, err := wordlists.New(words)
	require.NoError(t, err)

	p, err := harpo.GenerateWithList(12, wl)
	require.NoError(t, err)
	require.NoError(t, harpo.ValidateWithList(p, wl))

	shares, err := harpo.CreateWithList(p, 2, 3, false, wl)
	require.NoError(t, err)
	recovered, err := harpo.ReconstructWithList(shares, wl)
	require.NoError(t, err)
	require.Equal(t, p.Words, recovered.Words)
}

func padWord(i int) string {
	return "w" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}
