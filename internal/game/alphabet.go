package game

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// alphabet is the fixed set of letters guesses and targets may use:
// the 26 base Latin letters plus the Swedish Å, Ä and Ö.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZÅÄÖ"

// Alphabet returns the letters in keyboard order.
func Alphabet() []string {
	out := make([]string, 0, utf8.RuneCountInString(alphabet))
	for _, r := range alphabet {
		out = append(out, string(r))
	}
	return out
}

// Normalize folds s to the canonical form used for comparisons:
// composed (NFC) and upper case. A decomposed "a" + ring is treated as "Å".
func Normalize(s string) string {
	// cases.Caser is stateful, so build one per call.
	return cases.Upper(language.Swedish).String(norm.NFC.String(s))
}

// InAlphabet reports whether every rune of an already normalized word is a
// member of the alphabet.
func InAlphabet(word string) bool {
	for _, r := range word {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}
