package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Options configures an HTTPGrader.
type Options struct {
	// Endpoint is the full URL of the grading API.
	Endpoint string

	// Timeout bounds a single submission. Zero means no timeout beyond
	// the caller's context.
	Timeout time.Duration

	// Client is the HTTP client to use. Default: a new http.Client.
	Client *http.Client
}

// HTTPGrader talks to the grading service over HTTP.
type HTTPGrader struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

// NewHTTPGrader creates a grader for the given endpoint.
func NewHTTPGrader(opts Options) (*HTTPGrader, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("grading endpoint is required")
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPGrader{
		endpoint: opts.Endpoint,
		timeout:  opts.Timeout,
		client:   client,
	}, nil
}

// Endpoint returns the URL submissions are posted to.
func (g *HTTPGrader) Endpoint() string {
	return g.endpoint
}

func (g *HTTPGrader) Grade(ctx context.Context, repoURL string) (*Report, error) {
	body, err := json.Marshal(gradeRequest{RepoURL: repoURL})
	if err != nil {
		return nil, fmt.Errorf("marshal grade request: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{StatusCode: res.StatusCode, Err: err}
	}

	if res.StatusCode/100 != 2 {
		return nil, &TransportError{
			StatusCode: res.StatusCode,
			Detail:     errorDetail(raw),
		}
	}

	return decodeEnvelope(raw)
}
