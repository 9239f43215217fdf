package analyzer

import (
	"strings"
	"testing"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

func TestComputeComplexity_Baseline(t *testing.T) {
	if c := computeComplexity(""); c != 1 {
		t.Errorf("Expected complexity 1 for empty source, got %d", c)
	}
	if c := computeComplexity("const x = 1;"); c != 1 {
		t.Errorf("Expected complexity 1 for straight-line code, got %d", c)
	}
}

func TestComputeComplexity_CountsBranches(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected int
	}{
		{"single if", "if (a) { }", 2},
		{"if else", "if (a) { } else { }", 3},
		{"logical and", "if (a && b) { }", 3},
		{"logical or", "a || b;", 2},
		{"ternary", "const v = a ? 1 : 2;", 2},
		{"loop keywords", "for (;;) { } while (x) { }", 3},
		{"switch cases", "switch (v) { case 1: break; case 2: break; }", 4},
		{"catch", "try { } catch (e) { }", 2},
		{"no partial words", "const iffy = elsewhere;", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := computeComplexity(tt.source); c != tt.expected {
				t.Errorf("Expected complexity %d, got %d", tt.expected, c)
			}
		})
	}
}

func TestComputeMaintainability_EmptySource(t *testing.T) {
	metrics := ComputeMetrics("")
	if metrics.Complexity != 1 {
		t.Errorf("Expected complexity 1, got %d", metrics.Complexity)
	}
	// 100 - 2*1 - 1/10 + 0 = 97.9 -> 98
	if metrics.Maintainability != 98 {
		t.Errorf("Expected maintainability 98, got %d", metrics.Maintainability)
	}
}

func TestComputeMaintainability_FunctionsRaiseScore(t *testing.T) {
	without := computeMaintainability("const x = 1;", 1)
	with := computeMaintainability("function f() { return 1; }", 1)
	if with <= without {
		t.Errorf("Expected function declaration to raise maintainability: %d <= %d", with, without)
	}
}

func TestComputeMaintainability_CappedAtHundred(t *testing.T) {
	source := strings.Repeat("const f = () => 1;\n", 10)
	if m := computeMaintainability(source, 1); m != 100 {
		t.Errorf("Expected maintainability capped at 100, got %d", m)
	}
}

func TestComputeMaintainability_ClampedAtZero(t *testing.T) {
	if m := computeMaintainability("x", 200); m != 0 {
		t.Errorf("Expected maintainability clamped at 0, got %d", m)
	}
}

func TestComputeMaintainability_MoreLinesNeverHigher(t *testing.T) {
	short := computeMaintainability(strings.Repeat("x;\n", 10), 1)
	long := computeMaintainability(strings.Repeat("x;\n", 100), 1)
	if long > short {
		t.Errorf("Expected longer source to score no higher: %d > %d", long, short)
	}
}

func TestMeanMetrics_Empty(t *testing.T) {
	mean := MeanMetrics(nil)
	if mean.Complexity != 1 || mean.Maintainability != 100 {
		t.Errorf("Expected neutral metrics {1 100}, got %+v", mean)
	}
}

func TestMeanMetrics_Average(t *testing.T) {
	mean := MeanMetrics([]domain.Metrics{
		{Complexity: 2, Maintainability: 80},
		{Complexity: 4, Maintainability: 90},
	})
	if mean.Complexity != 3 {
		t.Errorf("Expected mean complexity 3, got %d", mean.Complexity)
	}
	if mean.Maintainability != 85 {
		t.Errorf("Expected mean maintainability 85, got %d", mean.Maintainability)
	}
}

func TestMeanMetrics_RoundsOnceAfterAveraging(t *testing.T) {
	mean := MeanMetrics([]domain.Metrics{
		{Complexity: 1, Maintainability: 90},
		{Complexity: 2, Maintainability: 91},
	})
	// 1.5 rounds half away from zero
	if mean.Complexity != 2 {
		t.Errorf("Expected mean complexity 2, got %d", mean.Complexity)
	}
	// 90.5 -> 91
	if mean.Maintainability != 91 {
		t.Errorf("Expected mean maintainability 91, got %d", mean.Maintainability)
	}
}
