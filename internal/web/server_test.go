package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/repograde/internal/grader"
	"github.com/abhisek/repograde/internal/report"
)

func sampleReport() *grader.Report {
	return &grader.Report{
		TotalScore: 42.5,
		Grades:     map[string]float64{"Title": 2, "Abstract": 0},
		Explanations: map[string]string{
			"Title": "Clear and **informative**.",
		},
	}
}

func postForm(t *testing.T, h http.Handler, repoURL string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"repoUrl": {repoURL}}
	req := httptest.NewRequest(http.MethodPost, "/grade", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	h := NewHandler(grader.NewMockGrader(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="repoUrl"`)
	assert.Contains(t, body, `onclick="this.disabled=true`)
	assert.NotContains(t, body, `id="results"`)
}

func TestGradeForm_Success(t *testing.T) {
	mock := grader.NewMockGrader(grader.MockResponse{Report: sampleReport()})
	h := NewHandler(mock, zap.NewNop())

	rec := postForm(t, h, "https://github.com/o/r")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="results"`)
	assert.Contains(t, body, "Overall Score: 42.50%")
	assert.Contains(t, body, "<strong>informative</strong>")
	assert.Contains(t, body, `value="https://github.com/o/r"`)
	assert.Equal(t, []string{"https://github.com/o/r"}, mock.Calls)
}

func TestGradeForm_GradingError(t *testing.T) {
	mock := grader.NewMockGrader(grader.MockResponse{Err: &grader.GradingError{Message: "repo not found"}})
	h := NewHandler(mock, zap.NewNop())

	rec := postForm(t, h, "https://github.com/o/missing")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<div class="error">repo not found</div>`)
	assert.NotContains(t, body, `id="results"`)
}

func TestGradeForm_EscapesInput(t *testing.T) {
	mock := grader.NewMockGrader(grader.MockResponse{Err: &grader.GradingError{Message: "<b>bad</b>"}})
	h := NewHandler(mock, zap.NewNop())

	rec := postForm(t, h, `"><script>x</script>`)

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>x</script>")
	assert.NotContains(t, body, "<b>bad</b>")
}

type idCapture struct {
	ids []string
}

func (c *idCapture) Grade(ctx context.Context, _ string) (*grader.Report, error) {
	c.ids = append(c.ids, grader.RequestIDFrom(ctx))
	return sampleReport(), nil
}

func TestGradeForm_PropagatesRequestID(t *testing.T) {
	capture := &idCapture{}
	h := NewHandler(capture, zap.NewNop())

	form := url.Values{"repoUrl": {"https://github.com/o/r"}}
	req := httptest.NewRequest(http.MethodPost, "/grade", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-Id", "req-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, capture.ids, 1)
	assert.Equal(t, "req-123", capture.ids[0])
}

func TestGradeJSON(t *testing.T) {
	mock := grader.NewMockGrader(grader.MockResponse{Report: sampleReport()})
	h := NewHandler(mock, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(`{"repoUrl":"https://github.com/o/r"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var doc report.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, 42.5, doc.TotalScore)
	assert.NotEmpty(t, doc.Sections)
}

func TestGradeJSON_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mockErr  error
		wantCode int
		wantMsg  string
	}{
		{"malformed body", `{`, nil, http.StatusBadRequest, ""},
		{"missing url", `{}`, nil, http.StatusBadRequest, "Repository URL is required"},
		{"upstream failure", `{"repoUrl":"x"}`, &grader.TransportError{StatusCode: 502}, http.StatusBadGateway, "grading service returned 502 Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := grader.NewMockGrader()
			if tt.mockErr != nil {
				mock.AddResponse(grader.MockResponse{Err: tt.mockErr})
			}
			h := NewHandler(mock, zap.NewNop())

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp errResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Error)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	h := NewHandler(grader.NewMockGrader(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := NewHandler(grader.NewMockGrader(), zap.New(core))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/healthz", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := NewHTTPServer("127.0.0.1:0", NewHandler(grader.NewMockGrader(), zap.NewNop()), time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv, zap.NewNop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
