package names

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"jane doe", "Jane Doe"},
		{"  JANE   DOE  ", "Jane Doe"},
		{"jAnE", "Jane"},
		{"mary ann smith", "Mary Ann Smith"},
		{"", ""},
		{"   \t  ", ""},
		{"o", "O"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "input %q", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"Jane", "Doe", "Smith"} {
		assert.Equal(t, s, Normalize(s))
		assert.Equal(t, s, Normalize(Normalize(s)))
	}
}

func TestNormalizeWordShape(t *testing.T) {
	inputs := []string{"jane doe", "JOHN QUINCY ADAMS", "a b c"}
	for _, in := range inputs {
		out := Normalize(in)
		outWords := strings.Fields(out)
		assert.Len(t, outWords, len(strings.Fields(in)))
		for _, w := range outWords {
			runes := []rune(w)
			assert.True(t, unicode.IsUpper(runes[0]), "word %q", w)
			for _, r := range runes[1:] {
				assert.True(t, unicode.IsLower(r), "word %q", w)
			}
		}
	}
}
