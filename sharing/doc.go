// Package sharing implements Shamir secret sharing over a field.Element:
// random polynomial construction, Horner-scheme evaluation at share
// indices, and Lagrange interpolation at x=0 to reconstruct the secret.
package sharing
