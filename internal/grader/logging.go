package grader

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingGrader is a decorator that logs every submission.
type LoggingGrader struct {
	inner  Grader
	logger *zap.Logger
}

// WithLogging wraps a Grader with structured logging.
func WithLogging(g Grader, logger *zap.Logger) Grader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingGrader{inner: g, logger: logger}
}

func (l *LoggingGrader) Grade(ctx context.Context, repoURL string) (*Report, error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("request_id", RequestIDFrom(ctx)),
		zap.String("repo_url", repoURL),
	}
	l.logger.Debug("submitting repository", fields...)

	report, err := l.inner.Grade(ctx, repoURL)

	fields = append(fields, zap.Duration("latency", time.Since(start)))
	if err != nil {
		if code := StatusCode(err); code != 0 {
			fields = append(fields, zap.Int("status", code))
		}
		l.logger.Warn("grading failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	l.logger.Info("grading complete", append(fields,
		zap.Float64("total_score", report.TotalScore),
		zap.Int("graded_items", len(report.Grades)),
	)...)
	return report, nil
}

// New builds the production grader: HTTP transport wrapped with logging.
func New(opts Options, logger *zap.Logger) (Grader, error) {
	base, err := NewHTTPGrader(opts)
	if err != nil {
		return nil, err
	}
	return WithLogging(base, logger), nil
}
