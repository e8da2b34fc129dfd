package mnemonic

import (
	"fmt"
	"strconv"
	"strings"
)

// Phrase is a BIP-0039 seed phrase as exchanged at harpo's boundaries: a
// sequence of words, plus an optional leading share index used by the
// "<i>: w1 w2 ... wL" text format. Index here is the text-format annotation
// a caller supplies alongside a share, not the 4-bit value a share may
// additionally carry embedded in its checksum byte — those are tracked
// separately by Decode's return value.
type Phrase struct {
	Words []string
	Index *uint32
}

// String renders p back into the text format it was parsed from: the
// "<i>: " prefix is included only when Index is set.
func (p Phrase) String() string {
	body := strings.Join(p.Words, " ")
	if p.Index == nil {
		return body
	}
	return fmt.Sprintf("%d: %s", *p.Index, body)
}

// ParsePhrase parses a single line of the "<i>: w1 w2 ... wL" or bare
// "w1 w2 ... wL" text format. Words are lower-cased, matching the
// case-insensitivity the wordlists package assumes of its default list.
func ParsePhrase(line string) (Phrase, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Phrase{}, fmt.Errorf("mnemonic: empty phrase line")
	}

	var index *uint32
	if i := strings.Index(line, ":"); i >= 0 {
		prefix := strings.TrimSpace(line[:i])
		if n, err := strconv.ParseUint(prefix, 10, 32); err == nil {
			v := uint32(n)
			index = &v
			line = strings.TrimSpace(line[i+1:])
		}
	}

	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return Phrase{}, fmt.Errorf("mnemonic: phrase has no words")
	}
	return Phrase{Words: words, Index: index}, nil
}
