// Package naturalkey normalizes the human-readable names (club names, player
// first names) that records are looked up by.
package naturalkey

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key returns the lookup form of raw: trimmed, inner whitespace collapsed to a
// single space, case-folded. Two names that differ only in case or spacing
// share a key.
func Key(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// Display returns raw with whitespace collapsed and the first letter of every
// word upper-cased. The remainder of each word is left as given, so "AC Milan"
// stays intact while "napoli" becomes "Napoli".
//
// Case is only ever raised on word starts, so an acronym typed in lower case
// is not restored: "ac milan" becomes "Ac Milan". Upstream name matching then
// decides whether that form is found; callers that need an exact upstream
// name must send it as upstream spells it.
func Display(raw string) string {
	words := strings.Fields(raw)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}
