package cluster

// DefaultMinSimilarity is the cosine similarity floor for accepting a
// semantic fallback match.
const DefaultMinSimilarity = 0.15

// Policy is the two-tier cluster selection rule: keyword evidence is
// trusted outright when present; cosine similarity fires only as a
// fallback, and only above a minimum similarity bar. This trades recall
// for precision.
type Policy struct {
	matcher *Matcher

	// SemanticFallback gates the cosine tier entirely. When false, Pick is
	// a pass-through of the keyword result and performs no vector work.
	SemanticFallback bool

	// MinSimilarity is the acceptance threshold for a fallback match.
	MinSimilarity float64
}

// NewPolicy creates a selection policy over the given matcher.
func NewPolicy(matcher *Matcher, semanticFallback bool, minSimilarity float64) *Policy {
	return &Policy{
		matcher:          matcher,
		SemanticFallback: semanticFallback,
		MinSimilarity:    minSimilarity,
	}
}

// Pick resolves the final cluster for a text given the winning category and
// the keyword picker's result ("" for none). Returns "" when no cluster
// qualifies.
func (p *Policy) Pick(text, categoryID, keywordClusterID string) string {
	if !p.SemanticFallback {
		return keywordClusterID
	}
	if keywordClusterID != "" {
		return keywordClusterID
	}
	match, ok := p.matcher.BestCluster(text, categoryID)
	if ok && match.Similarity >= p.MinSimilarity {
		return match.ClusterID
	}
	return ""
}
