package cluster

import (
	"math"
	"sync"

	"github.com/sunnahlabs/mizan/pkg/mizan/taxonomy"
)

// Vector is a sparse term-weight vector.
type Vector map[string]float64

// Fingerprint is the aggregated TF-IDF vector representing one cluster,
// built from its example snippets.
type Fingerprint struct {
	ClusterID string
	Vector    Vector
}

// FingerprintIndex lazily builds and caches cluster fingerprints per
// category. The first call for a category builds the fingerprints; every
// later call returns the cached result. Entries are never evicted or
// recomputed for the life of the process.
type FingerprintIndex struct {
	set *taxonomy.Set
	tok *Tokenizer

	mu    sync.Mutex
	cache map[string][]Fingerprint
}

// NewFingerprintIndex creates an empty index over the given taxonomy.
func NewFingerprintIndex(set *taxonomy.Set, tok *Tokenizer) *FingerprintIndex {
	return &FingerprintIndex{
		set:   set,
		tok:   tok,
		cache: make(map[string][]Fingerprint),
	}
}

// ForCategory returns the fingerprints for a category in declared cluster
// order, building them on first use. Returns nil when the category has no
// clusters.
func (ix *FingerprintIndex) ForCategory(categoryID string) []Fingerprint {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if fps, ok := ix.cache[categoryID]; ok {
		return fps
	}
	fps := ix.build(categoryID)
	ix.cache[categoryID] = fps
	return fps
}

func (ix *FingerprintIndex) build(categoryID string) []Fingerprint {
	clusters := ix.set.ClustersFor(categoryID)
	if len(clusters) == 0 {
		return nil
	}

	// Document frequency is counted per cluster, not per example: a term's
	// df is the number of clusters whose examples mention it. totalDocs is
	// the example count summed over the whole category.
	docFreq := make(map[string]int)
	totalDocs := 0
	for _, c := range clusters {
		totalDocs += len(c.Examples)
		seen := make(map[string]struct{})
		for _, ex := range c.Examples {
			for term := range ix.tok.Bag(ex) {
				seen[term] = struct{}{}
			}
		}
		for term := range seen {
			docFreq[term]++
		}
	}

	fps := make([]Fingerprint, 0, len(clusters))
	for _, c := range clusters {
		merged := make(Vector)
		for _, ex := range c.Examples {
			for term, w := range tfidf(ix.tok.Bag(ex), docFreq, totalDocs) {
				merged[term] += w
			}
		}
		fps = append(fps, Fingerprint{ClusterID: c.ID, Vector: merged})
	}
	return fps
}

// tfidf weights a term bag: term frequency normalized by the bag's own max
// count, multiplied by ln(totalDocs/df). df is floored at 1.
func tfidf(bag map[string]int, docFreq map[string]int, totalDocs int) Vector {
	vec := make(Vector, len(bag))
	maxTf := 1
	for _, tf := range bag {
		if tf > maxTf {
			maxTf = tf
		}
	}
	for term, tf := range bag {
		df := docFreq[term]
		if df < 1 {
			df = 1
		}
		idf := math.Log(float64(totalDocs) / float64(df))
		vec[term] = float64(tf) / float64(maxTf) * idf
	}
	return vec
}

// queryVector weights a term bag with TF only. The query is a single
// document outside the corpus, so it takes no part in document-frequency
// statistics and gets no IDF discount.
func queryVector(bag map[string]int) Vector {
	vec := make(Vector, len(bag))
	maxTf := 1
	for _, tf := range bag {
		if tf > maxTf {
			maxTf = tf
		}
	}
	for term, tf := range bag {
		vec[term] = float64(tf) / float64(maxTf)
	}
	return vec
}
