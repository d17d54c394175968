package config

import (
	"fmt"

	"github.com/sunnahlabs/mizan/pkg/mizan/cluster"
	"github.com/sunnahlabs/mizan/pkg/mizan/internalerr"
	"github.com/sunnahlabs/mizan/pkg/mizan/taxonomy"
)

// Loader reads the taxonomy assets and assembles the engine's data model.
type Loader struct {
	TaxonomyPath  string
	ClustersPath  string
	StopwordsPath string // optional, defaults to the built-in English list
}

// Components holds the assembled, validated configuration.
type Components struct {
	Set       *taxonomy.Set
	Stopwords []string
}

// Load reads and validates all configuration files.
func (l *Loader) Load() (*Components, error) {
	tf, err := LoadTaxonomy(l.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	set, err := buildSet(tf)
	if err != nil {
		return nil, err
	}

	if l.ClustersPath != "" {
		cf, err := LoadClusters(l.ClustersPath)
		if err != nil {
			return nil, fmt.Errorf("load clusters: %w", err)
		}
		if err := attachClusters(set, cf); err != nil {
			return nil, err
		}
	}

	stopwords := cluster.DefaultStopwords()
	if l.StopwordsPath != "" {
		sw, err := LoadStopwords(l.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		stopwords = sw.Terms
	}

	return &Components{Set: set, Stopwords: stopwords}, nil
}

func buildSet(tf *TaxonomyFile) (*taxonomy.Set, error) {
	if len(tf.Categories) == 0 {
		return nil, fmt.Errorf("%w: taxonomy declares no categories", internalerr.ErrInvalidConfig)
	}

	seen := make(map[string]struct{})
	set := &taxonomy.Set{Categories: make([]taxonomy.Category, 0, len(tf.Categories))}
	for _, cc := range tf.Categories {
		if cc.ID == "" {
			return nil, fmt.Errorf("%w: category with empty id", internalerr.ErrInvalidConfig)
		}
		if _, dup := seen[cc.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category id %q", internalerr.ErrInvalidConfig, cc.ID)
		}
		seen[cc.ID] = struct{}{}

		cat := taxonomy.Category{ID: cc.ID}
		subSeen := make(map[string]struct{})
		for _, sc := range cc.Subcategories {
			if sc.ID == "" {
				return nil, fmt.Errorf("%w: category %q has a subcategory with empty id", internalerr.ErrInvalidConfig, cc.ID)
			}
			if _, dup := subSeen[sc.ID]; dup {
				return nil, fmt.Errorf("%w: category %q declares subcategory %q twice", internalerr.ErrInvalidConfig, cc.ID, sc.ID)
			}
			subSeen[sc.ID] = struct{}{}
			if len(sc.Keywords) == 0 {
				return nil, fmt.Errorf("%w: subcategory %s/%s has no keywords", internalerr.ErrInvalidConfig, cc.ID, sc.ID)
			}
			cat.Subcategories = append(cat.Subcategories, taxonomy.Subcategory{
				ID:       sc.ID,
				Keywords: sc.Keywords,
			})
		}
		set.Categories = append(set.Categories, cat)
	}
	return set, nil
}

func attachClusters(set *taxonomy.Set, cf *ClustersFile) error {
	clusterSeen := make(map[string]struct{})
	for _, cc := range cf.Categories {
		idx := -1
		for i := range set.Categories {
			if set.Categories[i].ID == cc.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: clusters declared for unknown category %q", internalerr.ErrInvalidConfig, cc.ID)
		}

		for _, c := range cc.Clusters {
			if c.ID == "" {
				return fmt.Errorf("%w: category %q has a cluster with empty id", internalerr.ErrInvalidConfig, cc.ID)
			}
			if _, dup := clusterSeen[c.ID]; dup {
				return fmt.Errorf("%w: duplicate cluster id %q", internalerr.ErrInvalidConfig, c.ID)
			}
			clusterSeen[c.ID] = struct{}{}
			if len(c.Examples) == 0 {
				return fmt.Errorf("%w: cluster %q has no examples", internalerr.ErrInvalidConfig, c.ID)
			}
			set.Categories[idx].Clusters = append(set.Categories[idx].Clusters, taxonomy.Cluster{
				ID:       c.ID,
				Title:    c.Title,
				Keywords: c.Keywords,
				Examples: c.Examples,
			})
		}
	}
	return nil
}
