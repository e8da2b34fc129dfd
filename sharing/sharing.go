package sharing

import (
	"fmt"

	"github.com/harpo-project/harpo/field"
)

// Share is a single point (index, element) on the secret polynomial.
// Indices are positive integers starting at 1; index 0 is reserved for the
// secret itself and is never emitted as a share.
type Share struct {
	Index   uint32
	Element field.Element
}

// BuildShares constructs a degree-(threshold-1) polynomial with constant
// term secret and evaluates it at x = 1..n, returning the n shares in
// index order. This is the split-side half of Shamir secret sharing.
func BuildShares(secret field.Element, threshold, n int, src field.Source) ([]Share, error) {
	if threshold < 1 || threshold > n {
		return nil, fmt.Errorf("sharing: threshold %d must be in [1, %d]", threshold, n)
	}
	p, err := newPolynomial(secret, threshold, src)
	if err != nil {
		return nil, err
	}
	defer p.zero()

	shares := make([]Share, n)
	for i := 0; i < n; i++ {
		idx := uint32(i + 1)
		x := field.FromUint64(uint64(idx), secret.Level())
		shares[i] = Share{Index: idx, Element: p.evaluate(x)}
	}
	return shares, nil
}

// Reconstruct recovers the secret via Lagrange interpolation at x=0 over
// the given shares:
//
//	secret = sum_j y_j * prod_{k!=j} x_k / (x_k - x_j)
//
// Shares sharing the same index are deduplicated with the *last*-provided
// value winning; Reconstruct performs no threshold check of its own and
// will compute a result from however many distinct shares are given, the
// guarantee of correctness only holding once at least the original
// threshold's worth of genuine shares are present.
func Reconstruct(shares []Share) (field.Element, error) {
	if len(shares) == 0 {
		return field.Element{}, fmt.Errorf("sharing: cannot reconstruct from zero shares")
	}

	deduped := dedupeLastWins(shares)
	level := deduped[0].Element.Level()

	xs := make([]field.Element, len(deduped))
	for i, s := range deduped {
		xs[i] = field.FromUint64(uint64(s.Index), level)
	}

	zero := field.Zero(level)
	result := zero
	for j, sj := range deduped {
		basis := field.FromUint64(1, level)
		for k, xk := range xs {
			if k == j {
				continue
			}
			// term = x_k / (x_k - x_j), evaluated at the interpolation
			// point x=0, so the numerator is simply x_k.
			denom := xk.Sub(xs[j])
			term := xk.Div(denom)
			basis = basis.Mul(term)
		}
		result = result.Add(sj.Element.Mul(basis))
	}
	return result, nil
}

// dedupeLastWins collapses shares with duplicate indices, keeping the
// value of the last occurrence in input order.
func dedupeLastWins(shares []Share) []Share {
	byIndex := make(map[uint32]Share, len(shares))
	order := make([]uint32, 0, len(shares))
	for _, s := range shares {
		if _, seen := byIndex[s.Index]; !seen {
			order = append(order, s.Index)
		}
		byIndex[s.Index] = s
	}
	out := make([]Share, len(order))
	for i, idx := range order {
		out[i] = byIndex[idx]
	}
	return out
}
