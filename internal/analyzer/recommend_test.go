package analyzer

import (
	"testing"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

func TestRecommend_CleanCode(t *testing.T) {
	recs := Recommend(nil, domain.Metrics{Complexity: 1, Maintainability: 100})
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations for clean code, got %v", recs)
	}
}

func TestRecommend_SecurityIssues(t *testing.T) {
	issues := []domain.Issue{{Type: domain.CategorySecurity, Severity: domain.SeverityHigh}}
	recs := Recommend(issues, domain.Metrics{Complexity: 1, Maintainability: 100})

	if len(recs) != 1 || recs[0] != RecommendFixSecurity {
		t.Errorf("Expected [%q], got %v", RecommendFixSecurity, recs)
	}
}

func TestRecommend_Thresholds(t *testing.T) {
	// at the boundary: 10 and 50 do not trigger
	recs := Recommend(nil, domain.Metrics{Complexity: 10, Maintainability: 50})
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations at thresholds, got %v", recs)
	}

	recs = Recommend(nil, domain.Metrics{Complexity: 11, Maintainability: 100})
	if len(recs) != 1 || recs[0] != RecommendSplitCode {
		t.Errorf("Expected [%q] for complexity 11, got %v", RecommendSplitCode, recs)
	}

	recs = Recommend(nil, domain.Metrics{Complexity: 1, Maintainability: 49})
	if len(recs) != 1 || recs[0] != RecommendMaintain {
		t.Errorf("Expected [%q] for maintainability 49, got %v", RecommendMaintain, recs)
	}
}

func TestRecommend_CriticalIssues(t *testing.T) {
	issues := []domain.Issue{{Type: domain.CategoryBestPractice, Severity: domain.SeverityCritical}}
	recs := Recommend(issues, domain.Metrics{Complexity: 1, Maintainability: 100})

	if len(recs) != 1 || recs[0] != RecommendCritical {
		t.Errorf("Expected [%q], got %v", RecommendCritical, recs)
	}
}

func TestRecommend_AllInFixedOrder(t *testing.T) {
	issues := []domain.Issue{{Type: domain.CategorySecurity, Severity: domain.SeverityCritical}}
	recs := Recommend(issues, domain.Metrics{Complexity: 20, Maintainability: 10})

	expected := []string{RecommendFixSecurity, RecommendSplitCode, RecommendMaintain, RecommendCritical}
	if len(recs) != len(expected) {
		t.Fatalf("Expected %d recommendations, got %d: %v", len(expected), len(recs), recs)
	}
	for i := range expected {
		if recs[i] != expected[i] {
			t.Errorf("Recommendation %d: expected %q, got %q", i, expected[i], recs[i])
		}
	}
}

func TestDedupeOrdered(t *testing.T) {
	merged := DedupeOrdered(
		[]string{"a", "b"},
		[]string{"b", "c", "a"},
		[]string{"c", "d"},
	)

	expected := []string{"a", "b", "c", "d"}
	if len(merged) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, merged)
	}
	for i := range expected {
		if merged[i] != expected[i] {
			t.Errorf("Position %d: expected %q, got %q", i, expected[i], merged[i])
		}
	}
}

func TestDedupeOrdered_Empty(t *testing.T) {
	if merged := DedupeOrdered(); len(merged) != 0 {
		t.Errorf("Expected empty result, got %v", merged)
	}
	if merged := DedupeOrdered(nil, []string{}); len(merged) != 0 {
		t.Errorf("Expected empty result, got %v", merged)
	}
}
