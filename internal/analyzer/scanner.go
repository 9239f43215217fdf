// Package analyzer implements the pure analysis functions of the review
// engine: pattern scanning, complexity/maintainability metrics, issue
// aggregation, and recommendation synthesis. Everything in this package is a
// pure function of its inputs; the only shared state is the read-only rule
// registry.
package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
	"github.com/Mr2cool/chimeragpt-sub002/internal/rules"
)

// Match is one non-overlapping occurrence of a pattern in a source text
type Match struct {
	// Start is the byte offset of the match
	Start int

	// Text is the matched substring
	Text string
}

// findAllMatches returns every non-overlapping occurrence of pattern in text.
// A fresh matcher is compiled on every call: no match-position state survives
// between scans, so repeated scans of the same rule against different files
// always start from the beginning of the text.
func findAllMatches(pattern, text string) ([]Match, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	indexes := re.FindAllStringIndex(text, -1)
	matches := make([]Match, 0, len(indexes))
	for _, loc := range indexes {
		matches = append(matches, Match{Start: loc[0], Text: text[loc[0]:loc[1]]})
	}
	return matches, nil
}

// lineAt returns the 1-based line number of a byte offset in text
func lineAt(text string, offset int) int {
	return 1 + strings.Count(text[:offset], "\n")
}

// Scan applies every rule of the given category to the source text and
// returns one issue per occurrence. Issues appear in rule-definition order,
// then match order within the text. Identical issues on the same line are
// not deduplicated.
func Scan(category domain.Category, source, filePath string) ([]domain.Issue, error) {
	var issues []domain.Issue

	for _, rule := range rules.ForCategory(category) {
		matches, err := findAllMatches(rule.Pattern, source)
		if err != nil {
			return nil, domain.NewAnalysisError(fmt.Sprintf("rule %s failed", rule.ID), err)
		}

		var exclude *regexp.Regexp
		if rule.Exclude != "" {
			exclude, err = regexp.Compile(rule.Exclude)
			if err != nil {
				return nil, domain.NewAnalysisError(fmt.Sprintf("rule %s has invalid exclude pattern", rule.ID), err)
			}
		}

		for _, m := range matches {
			if exclude != nil && exclude.MatchString(m.Text) {
				continue
			}
			issues = append(issues, domain.Issue{
				Type:       rule.Category,
				Severity:   rule.Severity,
				File:       filePath,
				Line:       lineAt(source, m.Start),
				Message:    rule.Message,
				Suggestion: rule.Suggestion,
				Rule:       rule.ID,
				Evidence:   m.Text,
			})
		}
	}

	return issues, nil
}

// ScanCategories runs Scan for each category in order and concatenates the
// results, preserving category-scan order.
func ScanCategories(categories []domain.Category, source, filePath string) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, category := range categories {
		categoryIssues, err := Scan(category, source, filePath)
		if err != nil {
			return nil, err
		}
		issues = append(issues, categoryIssues...)
	}
	return issues, nil
}
