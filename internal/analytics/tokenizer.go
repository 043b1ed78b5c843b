package analytics

import (
	"strings"
	"unicode"
)

// minTokenLength excludes short filler words; tokens shorter than this are
// dropped.
const minTokenLength = 3

// Tokenize splits raw text into lowercase alphabetic candidate keywords.
// Punctuation and digits are stripped, tokens shorter than three letters and
// stopwords are dropped. No stemming: exact string matching only. The
// function is restartable and has no side effects.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	var b strings.Builder
	runes := 0
	flush := func() {
		if runes >= minTokenLength {
			token := b.String()
			if _, stop := stopwords[token]; !stop {
				tokens = append(tokens, token)
			}
		}
		b.Reset()
		runes = 0
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()

	return tokens
}
