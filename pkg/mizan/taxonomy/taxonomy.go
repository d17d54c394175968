package taxonomy

import "strings"

// Subcategory weights. The subcategory conventionally named "primary"
// carries double weight when scoring.
const (
	PrimarySubcategory = "primary"
	PrimaryWeight      = 2.0
	SecondaryWeight    = 1.0
)

// Subcategory is an ordered keyword group inside a category.
type Subcategory struct {
	ID       string
	Keywords []string
}

// Cluster is a fine-grained topical subdivision within a category.
// Examples are short illustrative snippets used to seed the cluster's
// vector-space fingerprint; they are not drawn from the corpus.
type Cluster struct {
	ID       string
	Title    string
	Keywords []string
	Examples []string
}

// Category is a top-level topical label with its keyword groups and
// fine-grained clusters, all in declaration order.
type Category struct {
	ID            string
	Subcategories []Subcategory
	Clusters      []Cluster
}

// Set is the full taxonomy. It is read-only configuration: built once at
// startup and never mutated afterwards. Category order is significant; it
// fixes the tie-break order for scoring.
type Set struct {
	Categories []Category
}

// CategoryIDs returns the category ids in declaration order.
func (s *Set) CategoryIDs() []string {
	ids := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		ids[i] = c.ID
	}
	return ids
}

// Category returns the category with the given id.
func (s *Set) Category(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ClustersFor returns the declared cluster list for a category, or nil if
// the category is unknown or has no clusters.
func (s *Set) ClustersFor(categoryID string) []Cluster {
	c, ok := s.Category(categoryID)
	if !ok {
		return nil
	}
	return c.Clusters
}

// AllClusters returns every cluster in the taxonomy, category declaration
// order first, cluster declaration order within a category.
func (s *Set) AllClusters() []Cluster {
	var out []Cluster
	for _, c := range s.Categories {
		out = append(out, c.Clusters...)
	}
	return out
}

// Weight returns the scoring weight for a subcategory id.
func Weight(subcategoryID string) float64 {
	if subcategoryID == PrimarySubcategory {
		return PrimaryWeight
	}
	return SecondaryWeight
}

// Entry maps one keyword to its owning category and subcategory.
type Entry struct {
	Keyword     string // lowercased
	Category    string
	Subcategory string
	Weight      float64
}

// Index is the flattened keyword lookup table. Keys are lowercased and
// globally unique: when the same keyword appears under more than one
// category or subcategory, the first declaration wins and later duplicates
// are dropped.
type Index struct {
	entries map[string]Entry
	order   []string // lowercased keywords in declaration order
}

// BuildIndex flattens a taxonomy into a keyword index. Iteration follows
// the declared category, subcategory, and keyword order, so rebuilding from
// the same taxonomy always yields the same index.
func BuildIndex(set *Set) *Index {
	ix := &Index{entries: make(map[string]Entry)}
	for _, cat := range set.Categories {
		for _, sub := range cat.Subcategories {
			w := Weight(sub.ID)
			for _, kw := range sub.Keywords {
				key := strings.ToLower(kw)
				if _, exists := ix.entries[key]; exists {
					continue
				}
				ix.entries[key] = Entry{
					Keyword:     key,
					Category:    cat.ID,
					Subcategory: sub.ID,
					Weight:      w,
				}
				ix.order = append(ix.order, key)
			}
		}
	}
	return ix
}

// Lookup returns the entry for a keyword (case-insensitive).
func (ix *Index) Lookup(keyword string) (Entry, bool) {
	e, ok := ix.entries[strings.ToLower(keyword)]
	return e, ok
}

// Entries returns all entries in declaration order.
func (ix *Index) Entries() []Entry {
	out := make([]Entry, len(ix.order))
	for i, key := range ix.order {
		out[i] = ix.entries[key]
	}
	return out
}

// Len returns the number of distinct keywords in the index.
func (ix *Index) Len() int {
	return len(ix.order)
}
