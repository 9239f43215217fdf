package analyzer

import (
	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

// Recommendation messages
const (
	RecommendFixSecurity = "Review and fix security vulnerabilities immediately"
	RecommendSplitCode   = "Consider breaking down complex functions into smaller, more manageable pieces"
	RecommendMaintain    = "Improve code maintainability by reducing complexity and adding documentation"
	RecommendCritical    = "Address critical issues before deploying to production"
)

// advice pairs a predicate with its message. The list is evaluated in fixed
// order and every predicate is checked; there is no short-circuiting.
type advice struct {
	when    func(issues []domain.Issue, metrics domain.Metrics) bool
	message string
}

var adviceList = []advice{
	{
		when: func(issues []domain.Issue, _ domain.Metrics) bool {
			return anyIssue(issues, func(i domain.Issue) bool { return i.Type == domain.CategorySecurity })
		},
		message: RecommendFixSecurity,
	},
	{
		when: func(_ []domain.Issue, metrics domain.Metrics) bool {
			return metrics.Complexity > 10
		},
		message: RecommendSplitCode,
	},
	{
		when: func(_ []domain.Issue, metrics domain.Metrics) bool {
			return metrics.Maintainability < 50
		},
		message: RecommendMaintain,
	},
	{
		when: func(issues []domain.Issue, _ domain.Metrics) bool {
			return anyIssue(issues, func(i domain.Issue) bool { return i.Severity == domain.SeverityCritical })
		},
		message: RecommendCritical,
	},
}

// Recommend evaluates the fixed advice list against the issue set and
// metrics, appending each message whose predicate holds.
func Recommend(issues []domain.Issue, metrics domain.Metrics) []string {
	var recommendations []string
	for _, a := range adviceList {
		if a.when(issues, metrics) {
			recommendations = append(recommendations, a.message)
		}
	}
	return recommendations
}

// DedupeOrdered concatenates recommendation lists and removes duplicates
// while preserving first-seen order.
func DedupeOrdered(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, list := range lists {
		for _, message := range list {
			if _, ok := seen[message]; ok {
				continue
			}
			seen[message] = struct{}{}
			merged = append(merged, message)
		}
	}
	return merged
}

func anyIssue(issues []domain.Issue, pred func(domain.Issue) bool) bool {
	for _, issue := range issues {
		if pred(issue) {
			return true
		}
	}
	return false
}
