package taxonomy

import "testing"

func testSet() *Set {
	return &Set{Categories: []Category{
		{
			ID: "worship",
			Subcategories: []Subcategory{
				{ID: "primary", Keywords: []string{"prayer", "fasting"}},
				{ID: "charity", Keywords: []string{"charity", "alms"}},
			},
		},
		{
			ID: "ethics",
			Subcategories: []Subcategory{
				{ID: "primary", Keywords: []string{"honesty", "charity"}},
			},
		},
	}}
}

func TestBuildIndexFlattens(t *testing.T) {
	ix := BuildIndex(testSet())

	entry, ok := ix.Lookup("prayer")
	if !ok {
		t.Fatal("'prayer' should be in the index")
	}
	if entry.Category != "worship" || entry.Subcategory != "primary" {
		t.Errorf("'prayer' mapped to %s/%s", entry.Category, entry.Subcategory)
	}
	if entry.Weight != PrimaryWeight {
		t.Errorf("primary keyword weight = %v, want %v", entry.Weight, PrimaryWeight)
	}

	entry, ok = ix.Lookup("alms")
	if !ok {
		t.Fatal("'alms' should be in the index")
	}
	if entry.Weight != SecondaryWeight {
		t.Errorf("secondary keyword weight = %v, want %v", entry.Weight, SecondaryWeight)
	}
}

func TestBuildIndexFirstDeclarationWins(t *testing.T) {
	ix := BuildIndex(testSet())

	// "charity" appears under worship/charity first, then ethics/primary.
	entry, ok := ix.Lookup("charity")
	if !ok {
		t.Fatal("'charity' should be in the index")
	}
	if entry.Category != "worship" {
		t.Errorf("duplicate keyword kept category %q, want first-declared 'worship'", entry.Category)
	}
	if entry.Weight != SecondaryWeight {
		t.Errorf("duplicate keyword weight = %v, want %v from first declaration", entry.Weight, SecondaryWeight)
	}
}

func TestBuildIndexCaseInsensitive(t *testing.T) {
	set := &Set{Categories: []Category{
		{ID: "worship", Subcategories: []Subcategory{
			{ID: "primary", Keywords: []string{"Prayer"}},
		}},
	}}
	ix := BuildIndex(set)

	if _, ok := ix.Lookup("PRAYER"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	entry, _ := ix.Lookup("prayer")
	if entry.Keyword != "prayer" {
		t.Errorf("stored keyword = %q, want lowercased", entry.Keyword)
	}
}

func TestBuildIndexDeterministic(t *testing.T) {
	a := BuildIndex(testSet())
	b := BuildIndex(testSet())

	ea, eb := a.Entries(), b.Entries()
	if len(ea) != len(eb) {
		t.Fatalf("rebuild changed size: %d vs %d", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i] != eb[i] {
			t.Errorf("entry %d differs between rebuilds: %+v vs %+v", i, ea[i], eb[i])
		}
	}
}

func TestEntriesDeclarationOrder(t *testing.T) {
	ix := BuildIndex(testSet())

	want := []string{"prayer", "fasting", "charity", "alms", "honesty"}
	entries := ix.Entries()
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, kw := range want {
		if entries[i].Keyword != kw {
			t.Errorf("entry %d = %q, want %q", i, entries[i].Keyword, kw)
		}
	}
}

func TestSetAccessors(t *testing.T) {
	set := &Set{Categories: []Category{
		{ID: "worship", Clusters: []Cluster{{ID: "salah"}}},
		{ID: "ethics"},
	}}

	ids := set.CategoryIDs()
	if len(ids) != 2 || ids[0] != "worship" || ids[1] != "ethics" {
		t.Errorf("CategoryIDs = %v", ids)
	}

	if got := set.ClustersFor("worship"); len(got) != 1 || got[0].ID != "salah" {
		t.Errorf("ClustersFor(worship) = %v", got)
	}
	if got := set.ClustersFor("ethics"); got != nil {
		t.Errorf("ClustersFor(ethics) = %v, want nil", got)
	}
	if got := set.ClustersFor("nope"); got != nil {
		t.Errorf("ClustersFor(nope) = %v, want nil", got)
	}
}
