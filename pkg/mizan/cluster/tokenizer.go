// Package cluster implements fine-grained cluster selection: a keyword
// picker, TF-IDF fingerprints built from cluster example snippets, a cosine
// similarity matcher, and the two-tier selection policy combining them.
package cluster

import (
	"strings"
	"unicode"
)

// DefaultStopwords returns the fixed set of common English function words
// excluded from term vectors.
func DefaultStopwords() []string {
	return strings.Fields("the is and of a in to for with on that this it " +
		"he she they you we be are was were will would could should has had " +
		"have do does did but not so if then than as at by an or from")
}

// Tokenizer normalizes free text into term tokens for vector building.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize lowercases the text, splits it into Unicode letter/number runs,
// and drops tokens of length <= 2 and stopwords.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if len([]rune(word)) <= 2 {
			return
		}
		if _, stop := t.stopwords[word]; stop {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// Bag returns the term-frequency bag for the text.
func (t *Tokenizer) Bag(text string) map[string]int {
	bag := make(map[string]int)
	for _, tok := range t.Tokenize(text) {
		bag[tok]++
	}
	return bag
}
