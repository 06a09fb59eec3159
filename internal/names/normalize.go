package names

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize converts a raw input line into display form: each
// whitespace-delimited word capitalized (first letter upper, rest lower),
// rejoined with single spaces. An input that is blank after trimming
// yields "".
func Normalize(raw string) string {
	words := strings.Fields(raw)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
