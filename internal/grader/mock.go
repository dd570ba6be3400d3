package grader

import (
	"context"
	"errors"
	"sync"
)

// MockResponse is a canned response for the MockGrader.
type MockResponse struct {
	Report *Report
	Err    error
}

// MockGrader is a deterministic Grader for testing.
// It returns canned responses in FIFO order and records all submitted URLs.
type MockGrader struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []string
}

// NewMockGrader creates a MockGrader with the given canned responses.
func NewMockGrader(responses ...MockResponse) *MockGrader {
	return &MockGrader{responses: responses}
}

// Grade returns the next canned response, or a TransportError if the queue
// is empty.
func (m *MockGrader) Grade(_ context.Context, repoURL string) (*Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, repoURL)

	if len(m.responses) == 0 {
		return nil, &TransportError{Err: errors.New("mock: no responses queued")}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Report, nil
}

// AddResponse appends a canned response to the queue.
func (m *MockGrader) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Grade calls made.
func (m *MockGrader) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
