package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	m "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/repograde/internal/grader"
	"github.com/abhisek/repograde/internal/render"
	"github.com/abhisek/repograde/internal/report"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

const shutdownGrace = 5 * time.Second

// Server hosts the grading page. Each request submits through its own
// grader.Session, so concurrent visitors never block each other.
type Server struct {
	grader grader.Grader
	logger *zap.Logger
}

type pageData struct {
	RepoURL string
	Report  template.HTML
	Error   string
}

type gradeReq struct {
	RepoURL string `json:"repoUrl"`
}

type errResp struct {
	Error string `json:"error"`
}

// NewHandler builds the chi router for the grading page.
func NewHandler(g grader.Grader, logger *zap.Logger) http.Handler {
	s := &Server{grader: g, logger: logger}

	r := chi.NewRouter()
	r.Use(m.RequestID, m.RealIP, requestLogger(logger), m.Recoverer)

	r.Get("/", s.index)
	r.Post("/grade", s.gradeForm)
	r.Post("/api/report", s.gradeJSON)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// NewHTTPServer wraps handler in an http.Server whose write timeout leaves
// room for a full grading round trip.
func NewHTTPServer(addr string, handler http.Handler, gradeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      gradeTimeout + 10*time.Second,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, pageData{})
}

func (s *Server) gradeForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writePage(w, http.StatusBadRequest, pageData{Error: err.Error()})
		return
	}
	repoURL := r.PostFormValue("repoUrl")
	data := pageData{RepoURL: repoURL}

	rep, err := s.submit(r, repoURL)
	if err != nil {
		data.Error = grader.UserMessage(err)
		s.writePage(w, http.StatusBadGateway, data)
		return
	}

	html, err := render.HTML(report.Build(rep))
	if err != nil {
		s.logger.Error("render report", zap.Error(err))
		data.Error = err.Error()
		s.writePage(w, http.StatusInternalServerError, data)
		return
	}
	data.Report = html
	s.writePage(w, http.StatusOK, data)
}

func (s *Server) gradeJSON(w http.ResponseWriter, r *http.Request) {
	var req gradeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{err.Error()})
		return
	}
	if req.RepoURL == "" {
		writeJSON(w, http.StatusBadRequest, errResp{"Repository URL is required"})
		return
	}

	rep, err := s.submit(r, req.RepoURL)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errResp{grader.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, report.Build(rep))
}

func (s *Server) submit(r *http.Request, repoURL string) (*grader.Report, error) {
	ctx := r.Context()
	if id := m.GetReqID(ctx); id != "" {
		ctx = grader.WithRequestID(ctx, id)
	}
	return grader.NewSession(s.grader).Submit(ctx, repoURL)
}

func (s *Server) writePage(w http.ResponseWriter, code int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
