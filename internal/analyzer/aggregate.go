package analyzer

import (
	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

// Summarize counts issues by severity and derives the batch score:
// 100 − 25·critical − 10·high − 5·medium − 1·low, clamped at 0.
// For multi-file review the caller concatenates issues from all files first;
// the score reflects the whole batch, not a per-file average.
func Summarize(issues []domain.Issue) domain.Summary {
	summary := domain.Summary{TotalIssues: len(issues)}

	for _, issue := range issues {
		switch issue.Severity {
		case domain.SeverityCritical:
			summary.CriticalIssues++
		case domain.SeverityHigh:
			summary.HighIssues++
		case domain.SeverityMedium:
			summary.MediumIssues++
		case domain.SeverityLow:
			summary.LowIssues++
		}
	}

	score := 100 -
		summary.CriticalIssues*domain.SeverityCritical.Weight() -
		summary.HighIssues*domain.SeverityHigh.Weight() -
		summary.MediumIssues*domain.SeverityMedium.Weight() -
		summary.LowIssues*domain.SeverityLow.Weight()
	if score < 0 {
		score = 0
	}
	summary.Score = score

	return summary
}
