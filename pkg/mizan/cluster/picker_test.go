package cluster

import (
	"testing"

	"github.com/sunnahlabs/mizan/pkg/mizan/taxonomy"
)

func pickerSet() *taxonomy.Set {
	return &taxonomy.Set{Categories: []taxonomy.Category{
		{
			ID: "worship",
			Clusters: []taxonomy.Cluster{
				{ID: "salah-times", Keywords: []string{"fajr", "dhuhr", "maghrib"}},
				{ID: "fasting", Keywords: []string{"ramadan", "suhur", "iftar"}},
			},
		},
		{
			ID: "ethics",
			Clusters: []taxonomy.Cluster{
				{ID: "truthfulness", Keywords: []string{"truth", "lie"}},
			},
		},
	}}
}

func TestPickerBestByKeywordHits(t *testing.T) {
	p := NewKeywordPicker(pickerSet())

	// Two fasting keywords versus one salah keyword.
	best := p.Best("take suhur before fajr and break with iftar")
	if best != "fasting" {
		t.Errorf("best = %q, want 'fasting'", best)
	}
}

func TestPickerCategoryAgnostic(t *testing.T) {
	p := NewKeywordPicker(pickerSet())

	// Keywords from a different category's cluster are still eligible.
	if best := p.Best("never tell a lie"); best != "truthfulness" {
		t.Errorf("best = %q, want 'truthfulness'", best)
	}
}

func TestPickerNoHits(t *testing.T) {
	p := NewKeywordPicker(pickerSet())

	if best := p.Best("the weather is nice"); best != "" {
		t.Errorf("best = %q, want none", best)
	}
	if top := p.Top("the weather is nice", 5); len(top) != 0 {
		t.Errorf("top = %v, want empty", top)
	}
}

func TestPickerTiesKeepDeclarationOrder(t *testing.T) {
	p := NewKeywordPicker(pickerSet())

	// One hit each: declaration order decides.
	top := p.Top("fajr prayer in ramadan", 5)
	if len(top) != 2 || top[0] != "salah-times" || top[1] != "fasting" {
		t.Errorf("top = %v, want [salah-times fasting]", top)
	}
}

func TestPickerMaxResults(t *testing.T) {
	p := NewKeywordPicker(pickerSet())

	top := p.Top("fajr ramadan truth", 2)
	if len(top) != 2 {
		t.Errorf("top capped at %d entries, got %v", 2, top)
	}
}
