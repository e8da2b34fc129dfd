// Package field implements modular arithmetic over the five prime fields
// that back harpo's Shamir sharing layer, one per supported BIP-0039
// entropy level (128/160/192/224/256 bits).
//
// Every Element carries its own modulus; combining two elements from
// different levels is a programming error, not a runtime-reported one, the
// same contract math/big.Int itself uses for operand shape.
package field
