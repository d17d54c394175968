// Package config loads the static taxonomy assets: category keyword maps,
// per-category cluster definitions, and the stop-word list. Assets are YAML
// files authored outside this module; this package only parses and
// validates them.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// TaxonomyFile is the on-disk shape of the category keyword map. Lists,
// not maps, so declaration order survives parsing; that order fixes the
// scorer's tie-break.
type TaxonomyFile struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// CategoryConfig declares one top-level category.
type CategoryConfig struct {
	ID            string              `yaml:"id"`
	Subcategories []SubcategoryConfig `yaml:"subcategories"`
}

// SubcategoryConfig declares one keyword group. The group with id
// "primary" carries double scoring weight.
type SubcategoryConfig struct {
	ID       string   `yaml:"id"`
	Keywords []string `yaml:"keywords"`
}

// LoadTaxonomy loads the category keyword map from a YAML file.
func LoadTaxonomy(path string) (*TaxonomyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf TaxonomyFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}
	return &tf, nil
}

// ClustersFile is the on-disk shape of the per-category cluster lists.
type ClustersFile struct {
	Categories []ClusterCategoryConfig `yaml:"categories"`
}

// ClusterCategoryConfig holds the ordered cluster list of one category.
type ClusterCategoryConfig struct {
	ID       string          `yaml:"id"`
	Clusters []ClusterConfig `yaml:"clusters"`
}

// ClusterConfig declares one fine-grained cluster.
type ClusterConfig struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Keywords []string `yaml:"keywords"`
	Examples []string `yaml:"examples"`
}

// LoadClusters loads the cluster definitions from a YAML file.
func LoadClusters(path string) (*ClustersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf ClustersFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Stopwords is the on-disk shape of the stop-word list.
type Stopwords struct {
	Terms []string `yaml:"terms"`
}

// LoadStopwords loads stop words from a YAML file.
func LoadStopwords(path string) (*Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sw Stopwords
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, err
	}
	return &sw, nil
}
