package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sunnahlabs/mizan/pkg/mizan/internalerr"
)

const taxonomyYAML = `
categories:
  - id: worship
    subcategories:
      - id: primary
        keywords: [prayer, fasting]
      - id: giving
        keywords: [charity]
  - id: ethics
    subcategories:
      - id: primary
        keywords: [honesty]
`

const clustersYAML = `
categories:
  - id: worship
    clusters:
      - id: salah-times
        title: Prescribed prayers
        keywords: [fajr, maghrib]
        examples:
          - Pray at dawn before the sun rises
          - The evening prayer has its fixed time
`

func writeAsset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssemblesComponents(t *testing.T) {
	loader := Loader{
		TaxonomyPath: writeAsset(t, "taxonomy.yaml", taxonomyYAML),
		ClustersPath: writeAsset(t, "clusters.yaml", clustersYAML),
	}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ids := comp.Set.CategoryIDs()
	if len(ids) != 2 || ids[0] != "worship" || ids[1] != "ethics" {
		t.Errorf("category order = %v", ids)
	}

	clusters := comp.Set.ClustersFor("worship")
	if len(clusters) != 1 || clusters[0].ID != "salah-times" {
		t.Errorf("clusters = %+v", clusters)
	}
	if len(clusters[0].Examples) != 2 {
		t.Errorf("examples = %v", clusters[0].Examples)
	}

	if len(comp.Stopwords) == 0 {
		t.Error("stopwords should default to the built-in list")
	}
}

func TestLoaderCustomStopwords(t *testing.T) {
	loader := Loader{
		TaxonomyPath:  writeAsset(t, "taxonomy.yaml", taxonomyYAML),
		StopwordsPath: writeAsset(t, "stopwords.yaml", "terms: [foo, bar]\n"),
	}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(comp.Stopwords) != 2 || comp.Stopwords[0] != "foo" {
		t.Errorf("stopwords = %v", comp.Stopwords)
	}
}

func TestLoaderMissingTaxonomyFile(t *testing.T) {
	loader := Loader{TaxonomyPath: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, err := loader.Load(); err == nil {
		t.Error("expected an error for a missing taxonomy file")
	}
}

func TestLoaderRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name     string
		taxonomy string
		clusters string
	}{
		{
			name:     "no categories",
			taxonomy: "categories: []\n",
		},
		{
			name: "duplicate category",
			taxonomy: `
categories:
  - id: worship
    subcategories: [{id: primary, keywords: [prayer]}]
  - id: worship
    subcategories: [{id: primary, keywords: [fasting]}]
`,
		},
		{
			name: "empty keyword list",
			taxonomy: `
categories:
  - id: worship
    subcategories: [{id: primary, keywords: []}]
`,
		},
		{
			name:     "cluster for unknown category",
			taxonomy: taxonomyYAML,
			clusters: `
categories:
  - id: nonexistent
    clusters:
      - id: foo
        examples: [some example]
`,
		},
		{
			name:     "cluster without examples",
			taxonomy: taxonomyYAML,
			clusters: `
categories:
  - id: worship
    clusters:
      - id: foo
        keywords: [bar]
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loader := Loader{TaxonomyPath: writeAsset(t, "taxonomy.yaml", tc.taxonomy)}
			if tc.clusters != "" {
				loader.ClustersPath = writeAsset(t, "clusters.yaml", tc.clusters)
			}
			_, err := loader.Load()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
