package service

import (
	"context"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
	"github.com/Mr2cool/chimeragpt-sub002/internal/constants"
)

// Agent is one analyzer in the pattern-match/classify/score/recommend
// family. The code-review agent is the canonical member; the others are
// simplified variants pinned to a single rule category.
type Agent interface {
	// Type returns the result type the agent produces
	Type() string

	// Execute runs one task and returns the result envelope
	Execute(ctx context.Context, task domain.Task) domain.AgentResult
}

// NewPerformanceAgent creates the simplified performance analyzer
func NewPerformanceAgent() *ReviewServiceImpl {
	return &ReviewServiceImpl{
		label:           "Performance analysis",
		resultType:      constants.ResultTypePerformance,
		fixedCategories: []domain.Category{domain.CategoryPerformance},
	}
}

// NewTestQualityAgent creates the simplified test-quality analyzer
func NewTestQualityAgent() *ReviewServiceImpl {
	return &ReviewServiceImpl{
		label:           "Test quality analysis",
		resultType:      constants.ResultTypeTestQuality,
		fixedCategories: []domain.Category{domain.CategoryTesting},
	}
}

// NewDocumentationAgent creates the simplified documentation analyzer
func NewDocumentationAgent() *ReviewServiceImpl {
	return &ReviewServiceImpl{
		label:           "Documentation analysis",
		resultType:      constants.ResultTypeDocumentation,
		fixedCategories: []domain.Category{domain.CategoryDocumentation},
	}
}

// Agents returns every registered agent keyed by result type
func Agents() map[string]Agent {
	agents := []Agent{
		NewReviewService(),
		NewPerformanceAgent(),
		NewTestQualityAgent(),
		NewDocumentationAgent(),
	}
	byType := make(map[string]Agent, len(agents))
	for _, agent := range agents {
		byType[agent.Type()] = agent
	}
	return byType
}
