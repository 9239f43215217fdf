package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

// ReviewRequest describes one CLI-driven review run
type ReviewRequest struct {
	// Paths are the input files or directories to review
	Paths []string

	// Recursive controls whether directories are walked recursively
	Recursive bool

	// ExcludePatterns are file patterns to skip during collection
	ExcludePatterns []string

	// Config optionally overrides parts of the default review configuration
	Config *domain.ConfigPatch
}

// ReviewUseCase orchestrates the review workflow: collect files, build the
// task envelope, and hand it to the review service.
type ReviewUseCase struct {
	service    domain.ReviewService
	fileHelper *FileHelper
}

// NewReviewUseCase creates a new review use case
func NewReviewUseCase(service domain.ReviewService) *ReviewUseCase {
	return &ReviewUseCase{
		service:    service,
		fileHelper: NewFileHelper(),
	}
}

// NewReviewUseCaseWithFileHelper creates a use case with an explicit helper
func NewReviewUseCaseWithFileHelper(service domain.ReviewService, fileHelper *FileHelper) *ReviewUseCase {
	return &ReviewUseCase{
		service:    service,
		fileHelper: fileHelper,
	}
}

// Execute collects source files for the request and runs them through the
// review service as one multi-file task.
func (uc *ReviewUseCase) Execute(ctx context.Context, req ReviewRequest) (domain.AgentResult, error) {
	if len(req.Paths) == 0 {
		return domain.AgentResult{}, domain.NewInvalidInputError("no input paths specified", nil)
	}

	paths, err := uc.fileHelper.CollectSourceFiles(req.Paths, req.Recursive, req.ExcludePatterns)
	if err != nil {
		return domain.AgentResult{}, domain.NewFileNotFoundError("failed to collect files", err)
	}

	if len(paths) == 0 {
		return domain.AgentResult{}, domain.NewInvalidInputError("no JavaScript/TypeScript files found in the specified paths", nil)
	}

	files := make([]domain.SourceFile, 0, len(paths))
	for _, path := range paths {
		content, readErr := uc.fileHelper.ReadFile(path)
		if readErr != nil {
			return domain.AgentResult{}, domain.NewFileNotFoundError(path, readErr)
		}
		files = append(files, domain.SourceFile{Path: path, Content: string(content)})
	}

	task := domain.Task{
		ID:        time.Now().UnixNano(),
		StartTime: time.Now().UnixMilli(),
		Input:     domain.TaskInput{Files: files},
		Config:    req.Config,
	}

	return uc.service.Execute(ctx, task), nil
}

// ExecuteCode reviews a single inline code string
func (uc *ReviewUseCase) ExecuteCode(ctx context.Context, code string, patch *domain.ConfigPatch) (domain.AgentResult, error) {
	task := domain.Task{
		ID:        time.Now().UnixNano(),
		StartTime: time.Now().UnixMilli(),
		Input:     domain.TaskInput{Code: &code},
		Config:    patch,
	}
	return uc.service.Execute(ctx, task), nil
}

// ExecuteFile reviews a single file
func (uc *ReviewUseCase) ExecuteFile(ctx context.Context, filePath string, patch *domain.ConfigPatch) (domain.AgentResult, error) {
	if !uc.fileHelper.IsValidSourceFile(filePath) {
		return domain.AgentResult{}, domain.NewInvalidInputError(fmt.Sprintf("not a valid JavaScript/TypeScript file: %s", filePath), nil)
	}

	exists, err := uc.fileHelper.FileExists(filePath)
	if err != nil {
		return domain.AgentResult{}, domain.NewFileNotFoundError(filePath, err)
	}
	if !exists {
		return domain.AgentResult{}, domain.NewFileNotFoundError(filePath, fmt.Errorf("file does not exist"))
	}

	return uc.Execute(ctx, ReviewRequest{Paths: []string{filePath}, Config: patch})
}
