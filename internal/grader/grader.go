package grader

import (
	"context"
	"encoding/json"
)

// Grader submits a repository to the grading service.
type Grader interface {
	// Grade posts the repository URL and returns the decoded Grade Report.
	// Failures are reported as *TransportError, *GradingError or
	// *InvalidResponseError.
	Grade(ctx context.Context, repoURL string) (*Report, error)
}

// Report is the Grade Report returned by the service for one submission.
type Report struct {
	// TotalScore is the overall percentage (0-100) computed by the service.
	TotalScore float64 `json:"total_score"`

	// Grades maps rubric item names to awarded points. Items that were not
	// evaluated are absent.
	Grades map[string]float64 `json:"grades"`

	// Explanations maps rubric item names to markdown justifications.
	Explanations map[string]string `json:"explanations"`

	// Timings maps stage names to elapsed seconds. Nil when the service
	// does not report timings.
	Timings map[string]float64 `json:"timings,omitempty"`
}

// Envelope is the outer JSON object every grading response is wrapped in.
type Envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type gradeRequest struct {
	RepoURL string `json:"repoUrl"`
}
