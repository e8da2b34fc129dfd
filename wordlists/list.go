package wordlists

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// WordCount is the fixed size every List must have.
const WordCount = 2048

// List is an ordered set of exactly 2048 distinct words, injected into the
// mnemonic codec as the dictionary word indices are drawn from.
type List struct {
	words  []string
	index  map[string]int
	sorted bool // enables binary search
}

// New validates words and wraps them in a List. It is the general
// constructor for a caller-supplied word list (e.g. loaded from a file by
// the CLI). It records whether words are sorted; IndexOf binary searches a
// sorted list and looks an unsorted one up in the precomputed map (a
// caller-supplied list may contain diacritics or other entries that do not
// compare well under default string ordering).
func New(words []string) (List, error) {
	if len(words) != WordCount {
		return List{}, fmt.Errorf("wordlists: need exactly %d words, got %d", WordCount, len(words))
	}
	idx := make(map[string]int, len(words))
	for i, w := range words {
		if _, dup := idx[w]; dup {
			return List{}, fmt.Errorf("wordlists: duplicate word %q", w)
		}
		idx[w] = i
	}
	return List{words: append([]string(nil), words...), index: idx, sorted: slices.IsSorted(words)}, nil
}

// Len reports the number of words in the list (always WordCount for a
// validly-constructed List).
func (l List) Len() int {
	return len(l.words)
}

// WordAt returns the word at position i (0-based).
func (l List) WordAt(i int) (string, error) {
	if i < 0 || i >= len(l.words) {
		return "", fmt.Errorf("wordlists: index %d out of range", i)
	}
	return l.words[i], nil
}

// IndexOf looks up word's position. For a sorted list (such as the default
// English list) it binary searches; for any other list it falls back to a
// lookup through the precomputed map, since such a list cannot be assumed
// to sort well under default string comparison.
func (l List) IndexOf(word string) (int, bool) {
	if l.sorted {
		i, found := slices.BinarySearch(l.words, word)
		if found {
			return i, true
		}
		return 0, false
	}
	i, found := l.index[word]
	return i, found
}

// ParseFile reads a word-list text file: one word per line, no header,
// optional trailing newline, exactly 2048 distinct lines. Words are not
// lower-cased here; a BIP-0039 word list is expected to already be
// lower-case.
func ParseFile(contents string) (List, error) {
	lines := strings.Split(strings.ReplaceAll(contents, "\r\n", "\n"), "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return New(words)
}

// English is the default BIP-0039 English word list, embedded as package
// data so a runnable library has a default without requiring a
// caller-supplied list.
var English = mustBuildEnglish()

func mustBuildEnglish() List {
	words := strings.Fields(rawEnglish)
	l, err := New(words)
	if err != nil {
		panic(fmt.Sprintf("wordlists: embedded English list is invalid: %v", err))
	}
	return l
}
