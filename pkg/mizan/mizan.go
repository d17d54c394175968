// Package mizan is a heuristic, deterministic, explainable categorizer for
// short religious texts. It assigns each text a top-level category via
// weighted keyword scoring and, where evidence allows, a fine-grained
// cluster via keyword matching with a gated TF-IDF cosine fallback.
package mizan

import (
	"math"
	"strings"

	"github.com/sunnahlabs/mizan/pkg/mizan/cluster"
	"github.com/sunnahlabs/mizan/pkg/mizan/score"
	"github.com/sunnahlabs/mizan/pkg/mizan/taxonomy"
)

// DefaultCatchAll is the category assigned when no keyword scores at all.
const DefaultCatchAll = "general"

// DefaultMaxKeywords caps the evidence keyword list per result.
const DefaultMaxKeywords = 10

// Options configures an Engine.
type Options struct {
	Set       *taxonomy.Set
	Stopwords []string // nil → built-in English list

	// SemanticFallback enables the cosine-similarity cluster fallback for
	// texts the keyword layer could not place.
	SemanticFallback bool

	// MinSimilarity is the acceptance threshold for a fallback match;
	// 0 → cluster.DefaultMinSimilarity.
	MinSimilarity float64

	// CatchAll overrides the category used when all scores are zero;
	// "" → DefaultCatchAll.
	CatchAll string

	// MaxKeywords overrides the evidence keyword cap; 0 → DefaultMaxKeywords.
	MaxKeywords int
}

// Result is the annotation produced for one text.
type Result struct {
	CategoryID  string
	Subcategory string // cluster id, "" for none
	Confidence  int    // 0–100
	Keywords    []string
}

// Engine categorizes texts against a fixed taxonomy. It is deterministic:
// identical input always yields a bit-identical Result.
type Engine struct {
	set         *taxonomy.Set
	scorer      *score.Scorer
	picker      *cluster.KeywordPicker
	policy      *cluster.Policy
	catchAll    string
	maxKeywords int
}

// New creates an Engine from the given taxonomy and tunables.
func New(opts Options) *Engine {
	stopwords := opts.Stopwords
	if stopwords == nil {
		stopwords = cluster.DefaultStopwords()
	}
	minSim := opts.MinSimilarity
	if minSim == 0 {
		minSim = cluster.DefaultMinSimilarity
	}
	catchAll := opts.CatchAll
	if catchAll == "" {
		catchAll = DefaultCatchAll
	}
	maxKeywords := opts.MaxKeywords
	if maxKeywords == 0 {
		maxKeywords = DefaultMaxKeywords
	}

	index := taxonomy.BuildIndex(opts.Set)
	tok := cluster.NewTokenizer(stopwords)
	matcher := cluster.NewMatcher(cluster.NewFingerprintIndex(opts.Set, tok), tok)

	return &Engine{
		set:         opts.Set,
		scorer:      score.NewScorer(opts.Set, index),
		picker:      cluster.NewKeywordPicker(opts.Set),
		policy:      cluster.NewPolicy(matcher, opts.SemanticFallback, minSim),
		catchAll:    catchAll,
		maxKeywords: maxKeywords,
	}
}

// Categorize assigns a category, an optional cluster, a confidence score,
// and the matched evidence keywords for one text.
func (e *Engine) Categorize(text string) Result {
	scores := e.scorer.Score(text)

	categoryID := e.scorer.Best(scores)
	winningScore := scores[categoryID]
	if categoryID == "" {
		categoryID = e.catchAll
	}

	keywordClusterID := e.picker.Best(text)
	clusterID := e.policy.Pick(text, categoryID, keywordClusterID)

	return Result{
		CategoryID:  categoryID,
		Subcategory: clusterID,
		Confidence:  confidence(winningScore, text),
		Keywords:    e.scorer.MatchedKeywords(text, categoryID, e.maxKeywords),
	}
}

// KeywordCluster returns the keyword-only cluster choice for a text, ""
// when no cluster's keywords appear. The pipeline compares it with the
// final result to count how often the semantic fallback changed the
// outcome.
func (e *Engine) KeywordCluster(text string) string {
	return e.picker.Best(text)
}

// confidence scales the winning score by the text's whitespace word count
// into 0–100. Empty text yields 0, never a division error.
func confidence(winningScore float64, text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	c := int(math.Round(winningScore / float64(words) * 100))
	if c > 100 {
		c = 100
	}
	return c
}
