package cluster

import (
	"sort"
	"strings"

	"github.com/sunnahlabs/mizan/pkg/mizan/taxonomy"
)

// KeywordPicker chooses a cluster by keyword evidence alone. Unlike the
// cosine matcher it is category-agnostic: every cluster in the taxonomy is
// eligible.
type KeywordPicker struct {
	clusters []taxonomy.Cluster // declaration order across all categories
}

// NewKeywordPicker creates a picker over all clusters in the taxonomy.
func NewKeywordPicker(set *taxonomy.Set) *KeywordPicker {
	return &KeywordPicker{clusters: set.AllClusters()}
}

// Top returns up to max cluster ids ranked by how many of each cluster's
// keywords occur in the text (case-insensitive substring match). Clusters
// with no keyword hits are excluded; ties keep declaration order.
func (p *KeywordPicker) Top(text string, max int) []string {
	lower := strings.ToLower(text)

	type hit struct {
		id    string
		count int
	}
	var hits []hit
	for _, c := range p.clusters {
		count := 0
		for _, kw := range c.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				count++
			}
		}
		if count > 0 {
			hits = append(hits, hit{id: c.ID, count: count})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].count > hits[j].count
	})
	if max > 0 && len(hits) > max {
		hits = hits[:max]
	}

	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}

// Best returns the single best keyword cluster, or "" when no cluster's
// keywords appear in the text.
func (p *KeywordPicker) Best(text string) string {
	top := p.Top(text, 1)
	if len(top) == 0 {
		return ""
	}
	return top[0]
}
