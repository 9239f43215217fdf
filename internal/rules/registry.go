// Package rules holds the static detection rule registry. Rule lists are
// defined once, never mutated at runtime, and shared read-only across all
// scan invocations. Rules carry regex source strings, not compiled matchers:
// the scanner compiles a fresh matcher per scan so no match-position state
// can leak between calls or between concurrent tasks.
package rules

import (
	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

// Rule is a named pattern with the metadata needed to classify a match
type Rule struct {
	// ID is the stable rule identifier (e.g. "no-eval")
	ID string

	// Category is the rule category this rule belongs to
	Category domain.Category

	// Pattern is the regex source applied to the raw source text
	Pattern string

	// Exclude, when non-empty, is a regex tested against the matched
	// substring; occurrences where it matches are suppressed. Used for
	// "lacking X" rules that RE2 cannot express without lookahead.
	Exclude string

	// Message describes the violation
	Message string

	// Suggestion is the remediation hint
	Suggestion string

	// Severity is the default severity for issues produced by this rule
	Severity domain.Severity
}

var securityRules = []Rule{
	{
		ID:         "no-eval",
		Category:   domain.CategorySecurity,
		Pattern:    `\beval\s*\(`,
		Message:    "Use of eval() can lead to code injection vulnerabilities",
		Suggestion: "Avoid eval(); use JSON.parse() or a safe expression evaluator instead",
		Severity:   domain.SeverityCritical,
	},
	{
		ID:         "no-inner-html",
		Category:   domain.CategorySecurity,
		Pattern:    `\.innerHTML\s*=`,
		Message:    "Direct innerHTML assignment can enable XSS attacks",
		Suggestion: "Use textContent, or sanitize the markup before assigning it",
		Severity:   domain.SeverityHigh,
	},
	{
		ID:         "no-document-write",
		Category:   domain.CategorySecurity,
		Pattern:    `document\.write\s*\(`,
		Message:    "document.write() is a script injection vector",
		Suggestion: "Manipulate the DOM through createElement/appendChild instead",
		Severity:   domain.SeverityHigh,
	},
	{
		ID:         "no-raw-env",
		Category:   domain.CategorySecurity,
		Pattern:    `process\.env\.[A-Za-z_][A-Za-z0-9_]*`,
		Message:    "Bare environment variable access may leak secrets into client code",
		Suggestion: "Access environment variables through a validated config module",
		Severity:   domain.SeverityMedium,
	},
}

var performanceRules = []Rule{
	{
		ID:         "use-effect-deps",
		Category:   domain.CategoryPerformance,
		Pattern:    `useEffect\s*\([\s\S]*?,\s*\[\s*\]\s*\)`,
		Message:    "useEffect with an empty dependency array runs only on mount; verify that is intended",
		Suggestion: "List every value the effect reads in the dependency array",
		Severity:   domain.SeverityMedium,
	},
	{
		ID:         "no-chained-map-filter",
		Category:   domain.CategoryPerformance,
		Pattern:    `\.map\s*\([^)]*\)\s*\.filter\s*\(`,
		Message:    "Chained .map().filter() iterates the collection twice",
		Suggestion: "Combine into a single reduce() or filter first, then map",
		Severity:   domain.SeverityLow,
	},
	{
		ID:         "console-statements",
		Category:   domain.CategoryPerformance,
		Pattern:    `console\.(log|warn|error|info|debug|trace)\s*\(`,
		Message:    "Console statement left in source",
		Suggestion: "Remove console calls or route them through a logger",
		Severity:   domain.SeverityLow,
	},
}

var bestPracticeRules = []Rule{
	{
		ID:         "no-var",
		Category:   domain.CategoryBestPractice,
		Pattern:    `\bvar\s+[A-Za-z_$]`,
		Message:    "var declarations are function-scoped and hoisted",
		Suggestion: "Use const or let instead of var",
		Severity:   domain.SeverityMedium,
	},
	{
		ID:         "eqeqeq",
		Category:   domain.CategoryBestPractice,
		Pattern:    `[^=!<>]==[^=]`,
		Message:    "Loose equality performs implicit type coercion",
		Suggestion: "Use strict equality (===) instead of ==",
		Severity:   domain.SeverityMedium,
	},
	{
		ID:         "component-naming",
		Category:   domain.CategoryBestPractice,
		Pattern:    `\bfunction\s+[A-Z][A-Za-z0-9_]*`,
		Message:    "Uppercase function declaration; component conventions apply",
		Suggestion: "Keep component files focused and colocate their styles and tests",
		Severity:   domain.SeverityLow,
	},
}

var accessibilityRules = []Rule{
	{
		ID:         "img-alt",
		Category:   domain.CategoryAccessibility,
		Pattern:    `<img\b[^>]*>`,
		Exclude:    `\balt\s*=`,
		Message:    "<img> tag without an alt attribute",
		Suggestion: "Add a descriptive alt attribute (empty alt for decorative images)",
		Severity:   domain.SeverityMedium,
	},
	{
		ID:         "button-label",
		Category:   domain.CategoryAccessibility,
		Pattern:    `<button\b[^>]*>\s*</button>`,
		Exclude:    `aria-label\s*=`,
		Message:    "<button> with neither aria-label nor visible text",
		Suggestion: "Give the button visible text or an aria-label",
		Severity:   domain.SeverityMedium,
	},
}

var testingRules = []Rule{
	{
		ID:         "no-focused-tests",
		Category:   domain.CategoryTesting,
		Pattern:    `\b(describe|it|test)\.only\s*\(`,
		Message:    "Focused test disables the rest of the suite",
		Suggestion: "Remove .only before committing",
		Severity:   domain.SeverityHigh,
	},
	{
		ID:         "no-skipped-tests",
		Category:   domain.CategoryTesting,
		Pattern:    `\b(describe|it|test)\.skip\s*\(`,
		Message:    "Skipped test hides a failing or unfinished case",
		Suggestion: "Fix or delete the skipped test",
		Severity:   domain.SeverityLow,
	},
	{
		ID:         "no-empty-test",
		Category:   domain.CategoryTesting,
		Pattern:    `\b(it|test)\s*\(\s*['"][^'"]*['"]\s*,\s*\(\s*\)\s*=>\s*\{\s*\}\s*\)`,
		Message:    "Empty test body asserts nothing",
		Suggestion: "Add assertions or remove the placeholder test",
		Severity:   domain.SeverityMedium,
	},
}

var documentationRules = []Rule{
	{
		ID:         "todo-comment",
		Category:   domain.CategoryDocumentation,
		Pattern:    `//\s*(TODO|FIXME|HACK)\b`,
		Message:    "Unresolved TODO/FIXME marker",
		Suggestion: "Track the follow-up in an issue or resolve it",
		Severity:   domain.SeverityLow,
	},
	{
		ID:         "no-lint-disable",
		Category:   domain.CategoryDocumentation,
		Pattern:    `eslint-disable`,
		Message:    "Lint suppression without documented justification",
		Suggestion: "Fix the underlying warning or document why it is suppressed",
		Severity:   domain.SeverityLow,
	},
}

var byCategory = map[domain.Category][]Rule{
	domain.CategorySecurity:      securityRules,
	domain.CategoryPerformance:   performanceRules,
	domain.CategoryBestPractice:  bestPracticeRules,
	domain.CategoryAccessibility: accessibilityRules,
	domain.CategoryTesting:       testingRules,
	domain.CategoryDocumentation: documentationRules,
}

// ForCategory returns the fixed, ordered rule list for a category.
// Callers must treat the returned slice as read-only.
func ForCategory(category domain.Category) []Rule {
	return byCategory[category]
}

// Categories returns every category with registered rules, in scan order
func Categories() []domain.Category {
	return []domain.Category{
		domain.CategorySecurity,
		domain.CategoryPerformance,
		domain.CategoryBestPractice,
		domain.CategoryAccessibility,
		domain.CategoryTesting,
		domain.CategoryDocumentation,
	}
}

// Lookup returns the rule with the given ID, or nil if not registered
func Lookup(id string) *Rule {
	for _, category := range Categories() {
		for i := range byCategory[category] {
			if byCategory[category][i].ID == id {
				return &byCategory[category][i]
			}
		}
	}
	return nil
}
