// Package wordlists defines the word-list abstraction the mnemonic codec
// is parameterized over, plus the embedded default BIP-0039 English list.
// Building or reconstructing a List validates the exactly-2048-distinct-
// entries invariant once, at construction time, rather than on every
// lookup.
package wordlists
