package cluster

import "testing"

func TestPickKeywordHitPreemptsFallback(t *testing.T) {
	p := NewPolicy(newMatcher(aqeedahSet()), true, DefaultMinSimilarity)

	// Even with the fallback enabled, a keyword result passes through
	// untouched.
	if got := p.Pick("Allah is merciful to all creation", "aqeedah", "qadar"); got != "qadar" {
		t.Errorf("pick = %q, want keyword result 'qadar'", got)
	}
}

func TestPickSemanticFallback(t *testing.T) {
	p := NewPolicy(newMatcher(aqeedahSet()), true, DefaultMinSimilarity)

	// No keyword hit: the cosine fallback places the text in the mercy
	// cluster, clearing the similarity floor.
	if got := p.Pick("Allah is merciful to all creation", "aqeedah", ""); got != "mercy" {
		t.Errorf("pick = %q, want fallback 'mercy'", got)
	}
}

func TestPickBelowThreshold(t *testing.T) {
	p := NewPolicy(newMatcher(aqeedahSet()), true, DefaultMinSimilarity)

	if got := p.Pick("completely unrelated gardening advice", "aqeedah", ""); got != "" {
		t.Errorf("pick = %q, want none below similarity floor", got)
	}
}

func TestPickToggleOffNeverTouchesMatcher(t *testing.T) {
	// A nil matcher would panic if the cosine tier ran: with the fallback
	// disabled, Pick must be a pure pass-through.
	p := NewPolicy(nil, false, DefaultMinSimilarity)

	if got := p.Pick("Allah is merciful to all creation", "aqeedah", ""); got != "" {
		t.Errorf("pick = %q, want none with fallback disabled", got)
	}
	if got := p.Pick("any text", "aqeedah", "mercy"); got != "mercy" {
		t.Errorf("pick = %q, want pass-through 'mercy'", got)
	}
}
