// Package mnemonic implements the BIP-0039 codec: the bijective mapping
// between a seed phrase and a field.Element, including the standard
// checksum discipline and harpo's optional 4-bit share-index embedding
// stolen from the checksum byte. This is the hard core of the system —
// every other package either feeds it (field, wordlists) or is driven by
// it (harpo).
package mnemonic
