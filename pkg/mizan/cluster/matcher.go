package cluster

import "math"

// Match is a cluster candidate with its cosine similarity to the query.
type Match struct {
	ClusterID  string
	Similarity float64 // in [0,1]
}

// Matcher selects the cluster whose fingerprint is most similar to a text.
type Matcher struct {
	index *FingerprintIndex
	tok   *Tokenizer
}

// NewMatcher creates a matcher over the given fingerprint index.
func NewMatcher(index *FingerprintIndex, tok *Tokenizer) *Matcher {
	return &Matcher{index: index, tok: tok}
}

// BestCluster vectorizes the text and returns the cluster in the category
// with the strictly highest cosine similarity. Ties keep whichever cluster
// is declared first. Returns false when the category has no clusters.
func (m *Matcher) BestCluster(text, categoryID string) (Match, bool) {
	fps := m.index.ForCategory(categoryID)
	if len(fps) == 0 {
		return Match{}, false
	}

	query := queryVector(m.tok.Bag(text))
	best := Match{ClusterID: fps[0].ClusterID, Similarity: cosine(query, fps[0].Vector)}
	for _, fp := range fps[1:] {
		if sim := cosine(query, fp.Vector); sim > best.Similarity {
			best = Match{ClusterID: fp.ClusterID, Similarity: sim}
		}
	}
	return best, true
}

// cosine returns the cosine similarity of two sparse vectors: dot product
// over shared terms divided by the product of Euclidean norms. It is 0, not
// undefined, when either vector is empty.
func cosine(a, b Vector) float64 {
	var dot, normA, normB float64
	for term, w := range a {
		dot += w * b[term]
		normA += w * w
	}
	for _, w := range b {
		normB += w * w
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
