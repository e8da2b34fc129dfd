// Package harpo is the public library surface: Create splits a seed phrase
// into Shamir shares, Reconstruct combines shares back into a phrase,
// Generate samples a fresh compliant phrase, and Validate checks compliance.
// Each has a *WithList variant taking an explicit word list; the plain
// variant uses wordlists.English.
package harpo
