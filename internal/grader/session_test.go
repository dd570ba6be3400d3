package grader

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingGrader holds every Grade call until release is closed.
type blockingGrader struct {
	started chan struct{}
	release chan struct{}
	gotID   string
}

func (b *blockingGrader) Grade(ctx context.Context, _ string) (*Report, error) {
	b.gotID = RequestIDFrom(ctx)
	close(b.started)
	<-b.release
	return &Report{}, nil
}

type panickingGrader struct{}

func (panickingGrader) Grade(context.Context, string) (*Report, error) {
	panic("boom")
}

func TestSession_RejectsSecondSubmitWhileBusy(t *testing.T) {
	g := &blockingGrader{started: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(g)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.Submit(context.Background(), "first")
		assert.NoError(t, err)
	}()

	<-g.started
	assert.True(t, s.Busy())

	_, err := s.Submit(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)

	close(g.release)
	wg.Wait()
	assert.False(t, s.Busy())
	assert.NotEmpty(t, g.gotID, "session should assign a request id")
}

func TestSession_ReleasesOnEveryPath(t *testing.T) {
	tests := []struct {
		name    string
		resp    MockResponse
		wantErr bool
	}{
		{"success", MockResponse{Report: &Report{TotalScore: 10}}, false},
		{"grading error", MockResponse{Err: &GradingError{Message: "repo not found"}}, true},
		{"transport error", MockResponse{Err: &TransportError{StatusCode: 503}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(NewMockGrader(tt.resp))
			var events []bool
			s.OnBusyChange = func(b bool) { events = append(events, b) }

			_, err := s.Submit(context.Background(), "u")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.False(t, s.Busy())
			assert.Equal(t, []bool{true, false}, events)
		})
	}
}

func TestSession_ReleasesOnPanic(t *testing.T) {
	s := NewSession(panickingGrader{})
	assert.Panics(t, func() { _, _ = s.Submit(context.Background(), "u") })
	assert.False(t, s.Busy())
}

func TestSession_KeepsCallerRequestID(t *testing.T) {
	g := &blockingGrader{started: make(chan struct{}), release: make(chan struct{})}
	close(g.release)
	s := NewSession(g)

	_, err := s.Submit(WithRequestID(context.Background(), "abc"), "u")
	require.NoError(t, err)
	assert.Equal(t, "abc", g.gotID)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"grading", &GradingError{Message: "repo not found"}, "repo not found"},
		{"wrapped grading", errors.Join(errors.New("ctx"), &GradingError{Message: "x"}), "x"},
		{"busy", ErrBusy, "a submission is already in progress"},
		{"status with detail", &TransportError{StatusCode: 500, Detail: "boom"}, "grading service returned 500: boom"},
		{"invalid", &InvalidResponseError{Err: errors.New("bad")}, "invalid grading response: bad"},
		{"other", errors.New("plain"), "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
