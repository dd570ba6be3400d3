package grader

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
)

// Session owns the busy state of one submission surface. At most one
// submission is in flight per Session; the flag is released on every exit
// path, including panics in the underlying grader.
type Session struct {
	grader Grader
	busy   atomic.Bool

	// OnBusyChange, when set, is called with true when a submission starts
	// and false when it ends. Set it before the first Submit.
	OnBusyChange func(busy bool)
}

// NewSession creates a Session that submits through g.
func NewSession(g Grader) *Session {
	return &Session{grader: g}
}

// Busy reports whether a submission is in flight.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Submit grades repoURL. It returns ErrBusy without contacting the service
// when another submission is still in flight.
func (s *Session) Submit(ctx context.Context, repoURL string) (*Report, error) {
	if !s.acquire() {
		return nil, ErrBusy
	}
	defer s.release()

	if RequestIDFrom(ctx) == "" {
		ctx = WithRequestID(ctx, uuid.NewString())
	}
	return s.grader.Grade(ctx, repoURL)
}

func (s *Session) acquire() bool {
	if !s.busy.CompareAndSwap(false, true) {
		return false
	}
	if s.OnBusyChange != nil {
		s.OnBusyChange(true)
	}
	return true
}

func (s *Session) release() {
	s.busy.Store(false)
	if s.OnBusyChange != nil {
		s.OnBusyChange(false)
	}
}
