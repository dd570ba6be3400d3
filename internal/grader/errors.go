package grader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// FallbackMessage is surfaced when the service reports failure without a message.
const FallbackMessage = "An error occurred while grading the repository"

// ErrBusy is returned when a submission is attempted while another one is in flight.
var ErrBusy = errors.New("a submission is already in progress")

// TransportError indicates the request failed before a grading verdict was
// received: the service was unreachable, timed out, or answered with a
// non-2xx status.
type TransportError struct {
	// StatusCode is the HTTP status, or 0 when no response arrived.
	StatusCode int
	// Detail is the service's error text when a non-2xx body carried one.
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Detail != "":
		return fmt.Sprintf("grading service returned %d: %s", e.StatusCode, e.Detail)
	case e.StatusCode != 0:
		return fmt.Sprintf("grading service returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	case errors.Is(e.Err, context.DeadlineExceeded):
		return "grading service timed out"
	case e.Err != nil:
		return fmt.Sprintf("grading service unreachable: %v", e.Err)
	default:
		return "grading service unreachable"
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// GradingError indicates the service answered but reported a logical
// failure (success: false).
type GradingError struct {
	Message string
}

func (e *GradingError) Error() string {
	return e.Message
}

// InvalidResponseError indicates the service answered with a body that is
// not a well-formed grading envelope.
type InvalidResponseError struct {
	Body []byte
	Err  error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid grading response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// UserMessage converts any submission error into the single message shown
// to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ge *GradingError
	if errors.As(err, &ge) {
		return ge.Message
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Error()
	}
	var ie *InvalidResponseError
	if errors.As(err, &ie) {
		return ie.Error()
	}
	return err.Error()
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}
