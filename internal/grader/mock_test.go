package grader

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMockGrader_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockGrader(
		MockResponse{Report: &Report{TotalScore: 1}},
		MockResponse{Err: &GradingError{Message: "nope"}},
	)

	r, err := mock.Grade(context.Background(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalScore != 1 {
		t.Fatalf("TotalScore = %v, want 1", r.TotalScore)
	}

	_, err = mock.Grade(context.Background(), "b")
	var ge *GradingError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GradingError, got %T", err)
	}

	_, err = mock.Grade(context.Background(), "c")
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError from empty queue, got %T", err)
	}

	if mock.CallCount() != 3 || mock.Calls[1] != "b" {
		t.Fatalf("unexpected calls: %v", mock.Calls)
	}
}

func TestLoggingGrader_LogsOutcome(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := WithLogging(NewMockGrader(
		MockResponse{Report: &Report{TotalScore: 42, Grades: map[string]float64{"Title": 2}}},
		MockResponse{Err: &TransportError{StatusCode: 503}},
	), zap.New(core))

	ctx := WithRequestID(context.Background(), "rid")
	if _, err := g.Grade(ctx, "u"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.Grade(ctx, "u"); err == nil {
		t.Fatal("expected error")
	}

	done := logs.FilterMessage("grading complete").All()
	if len(done) != 1 {
		t.Fatalf("expected 1 completion log, got %d", len(done))
	}
	if done[0].ContextMap()["request_id"] != "rid" {
		t.Errorf("request_id = %v, want rid", done[0].ContextMap()["request_id"])
	}

	failed := logs.FilterMessage("grading failed").All()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failure log, got %d", len(failed))
	}
	if failed[0].ContextMap()["status"] != int64(503) {
		t.Errorf("status = %v, want 503", failed[0].ContextMap()["status"])
	}
}
