package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

// Branch-count tokens. Keyword tokens are matched as whole words; operator
// tokens are counted as raw substrings.
var branchKeywordPattern = regexp.MustCompile(`\b(if|else|while|for|switch|case|catch)\b`)

var functionKeywordPattern = regexp.MustCompile(`\bfunction\b`)

// ComputeMetrics calculates the complexity and maintainability heuristics
// for a source text. Both values are pure functions of the text.
func ComputeMetrics(source string) domain.Metrics {
	complexity := computeComplexity(source)
	return domain.Metrics{
		Complexity:      complexity,
		Maintainability: computeMaintainability(source, complexity),
	}
}

// computeComplexity returns 1 plus the count of branch constructs. Each
// occurrence adds 1 regardless of nesting.
func computeComplexity(source string) int {
	complexity := 1
	complexity += len(branchKeywordPattern.FindAllStringIndex(source, -1))
	complexity += strings.Count(source, "&&")
	complexity += strings.Count(source, "||")
	complexity += strings.Count(source, "?")
	return complexity
}

// computeMaintainability returns round(100 − 2·complexity − lines/10 +
// 5·functions), clamped into [0, 100]. Functions are counted as `function`
// keyword occurrences plus arrow-function markers.
func computeMaintainability(source string, complexity int) int {
	lineCount := strings.Count(source, "\n") + 1
	functionCount := len(functionKeywordPattern.FindAllStringIndex(source, -1)) +
		strings.Count(source, "=>")

	value := 100.0 - 2.0*float64(complexity) - float64(lineCount)/10.0 + 5.0*float64(functionCount)
	rounded := int(math.Round(math.Max(0, value)))
	if rounded > 100 {
		return 100
	}
	return rounded
}

// MeanMetrics returns the arithmetic mean of per-file metrics, unweighted by
// file size. Rounding happens once, after averaging.
func MeanMetrics(metrics []domain.Metrics) domain.Metrics {
	if len(metrics) == 0 {
		return domain.Metrics{Complexity: 1, Maintainability: 100}
	}

	var complexitySum, maintainabilitySum float64
	for _, m := range metrics {
		complexitySum += float64(m.Complexity)
		maintainabilitySum += float64(m.Maintainability)
	}

	n := float64(len(metrics))
	return domain.Metrics{
		Complexity:      int(math.Round(complexitySum / n)),
		Maintainability: int(math.Round(maintainabilitySum / n)),
	}
}
