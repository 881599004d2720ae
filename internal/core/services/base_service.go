package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/SscSPs/tallypro_backend/internal/middleware"
	"github.com/go-playground/validator/v10"
)

// requestValidator applies the DTOs' `binding` tags outside of gin.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func validateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return apperrors.NewValidationError("%s", err.Error())
	}
	return nil
}

// BaseService provides common functionality for all services
type BaseService struct {
	// ReportCache is invalidated after every successful write. Optional.
	ReportCache portsrepo.ReportCache
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// ServiceOption is a functional option for the shared service settings.
type ServiceOption func(*BaseService)

// WithReportCache makes writes invalidate cached reports.
func WithReportCache(cache portsrepo.ReportCache) ServiceOption {
	return func(s *BaseService) {
		s.ReportCache = cache
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{Clock: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock().UTC()
}

// Today returns the current calendar date at UTC midnight.
func (s *BaseService) Today() time.Time {
	y, m, d := s.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// InvalidateReports marks cached reports stale. A failing cache only costs
// freshness until its TTL, so the error is logged and not returned.
func (s *BaseService) InvalidateReports(ctx context.Context) {
	if s.ReportCache == nil {
		return
	}
	if err := s.ReportCache.Invalidate(ctx); err != nil {
		s.LogError(ctx, err, "Failed to invalidate report cache")
	}
}
