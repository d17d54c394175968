// Package score implements the keyword-weighted category scorer.
package score

import (
	"regexp"

	"github.com/sunnahlabs/mizan/pkg/mizan/taxonomy"
)

// Scorer assigns a non-negative score per top-level category by counting
// whole-word keyword occurrences weighted by subcategory importance.
// Patterns are compiled once at construction; scoring is purely additive
// and deterministic.
type Scorer struct {
	index      *taxonomy.Index
	categories []string // declaration order, fixes the tie-break
	patterns   map[string]*regexp.Regexp
}

// NewScorer builds a scorer for the given taxonomy. Keyword text is escaped
// into literal word-boundary patterns, so arbitrary keyword strings can
// never be interpreted as pattern syntax.
func NewScorer(set *taxonomy.Set, index *taxonomy.Index) *Scorer {
	s := &Scorer{
		index:      index,
		categories: set.CategoryIDs(),
		patterns:   make(map[string]*regexp.Regexp, index.Len()),
	}
	for _, e := range index.Entries() {
		s.patterns[e.Keyword] = compileKeyword(e.Keyword)
	}
	return s
}

func compileKeyword(kw string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
}

// Score returns a score for every declared category, defaulting to 0. Each
// whole-word keyword occurrence adds that keyword's weight to its owning
// category.
func (s *Scorer) Score(text string) map[string]float64 {
	scores := make(map[string]float64, len(s.categories))
	for _, cat := range s.categories {
		scores[cat] = 0
	}

	for _, e := range s.index.Entries() {
		matches := s.patterns[e.Keyword].FindAllStringIndex(text, -1)
		if len(matches) > 0 {
			scores[e.Category] += float64(len(matches)) * e.Weight
		}
	}
	return scores
}

// Best returns the category with the highest score, walking categories in
// taxonomy declaration order so that ties keep the first-declared category.
// Returns "" when every score is zero.
func (s *Scorer) Best(scores map[string]float64) string {
	best := ""
	highest := 0.0
	for _, cat := range s.categories {
		if scores[cat] > highest {
			highest = scores[cat]
			best = cat
		}
	}
	return best
}

// MatchedKeywords returns the keywords of the given category that occur in
// the text, in taxonomy declaration order, capped at max entries. These are
// the evidence strings recorded alongside a categorization.
func (s *Scorer) MatchedKeywords(text, categoryID string, max int) []string {
	var matched []string
	for _, e := range s.index.Entries() {
		if e.Category != categoryID {
			continue
		}
		if s.patterns[e.Keyword].MatchString(text) {
			matched = append(matched, e.Keyword)
			if max > 0 && len(matched) >= max {
				break
			}
		}
	}
	return matched
}
