// Package testutil provides helper functions for testing crev components
package testutil

import (
	"testing"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

// AssertFalse fails the test if condition is true
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}

// CodeTask builds a task with an inline code input
func CodeTask(id int64, code string) domain.Task {
	return domain.Task{
		ID:        id,
		StartTime: 0,
		Input:     domain.TaskInput{Code: &code},
	}
}

// FilesTask builds a task with a multi-file input
func FilesTask(id int64, files ...domain.SourceFile) domain.Task {
	return domain.Task{
		ID:        id,
		StartTime: 0,
		Input:     domain.TaskInput{Files: files},
	}
}

// CountIssuesByRule counts issues produced by the given rule ID
func CountIssuesByRule(issues []domain.Issue, ruleID string) int {
	count := 0
	for _, issue := range issues {
		if issue.Rule == ruleID {
			count++
		}
	}
	return count
}

// ContainsString reports whether list contains s
func ContainsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
