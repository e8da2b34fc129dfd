package sharing

import (
	"fmt"

	"github.com/harpo-project/harpo/field"
)

// polynomial is an ordered coefficient list [c0, c1, ..., cd] in one field;
// c0 is the secret and c1..cd are sampled uniformly at random. It is
// constructed fresh per split and discarded once shares are emitted.
type polynomial struct {
	coefficients []field.Element
}

// newPolynomial builds a degree (threshold-1) polynomial with constant term
// secret, sampling the remaining coefficients from src. threshold=1 yields
// a degree-0 polynomial, i.e. every share equals the secret.
func newPolynomial(secret field.Element, threshold int, src field.Source) (*polynomial, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("sharing: threshold must be >= 1, got %d", threshold)
	}
	coeffs := make([]field.Element, threshold)
	coeffs[0] = secret
	for i := 1; i < threshold; i++ {
		c, err := field.Random(secret.Level(), src)
		if err != nil {
			return nil, fmt.Errorf("sharing: sampling polynomial coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return &polynomial{coefficients: coeffs}, nil
}

// evaluate computes f(x) via Horner's scheme:
// f(x) = ((c_d*x + c_{d-1})*x + ... )*x + c0.
func (p *polynomial) evaluate(x field.Element) field.Element {
	d := len(p.coefficients) - 1
	out := p.coefficients[d]
	for i := d - 1; i >= 0; i-- {
		out = out.Mul(x).Add(p.coefficients[i])
	}
	return out
}

// zero overwrites the polynomial's coefficients in place. Best-effort
// defence-in-depth; not required for correctness.
func (p *polynomial) zero() {
	zero := field.Zero(p.coefficients[0].Level())
	for i := range p.coefficients {
		p.coefficients[i] = zero
	}
}
