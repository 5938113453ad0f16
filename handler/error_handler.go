package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rowfilter/pkg/logger"
	"github.com/dmitrymomot/rowfilter/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the error for regular requests. Plain text is used when nil.
	ErrorPage func(ErrorPageParams) TemplComponent
}

// classify maps err to a status code and a message safe to show to users.
func classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Key
	}
	return http.StatusInternalServerError, ErrInternalServerError.Key
}

// NewErrorHandler returns an ErrorHandler that logs the error with request
// details (warn for 4xx, error otherwise) and replies with the status code.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		code, message := classify(err)

		level := slog.LevelError
		if code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if cfg.ErrorPage == nil || IsDataStar(r) {
			http.Error(w, message, code)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(code)
		page := cfg.ErrorPage(ErrorPageParams{
			Error:      message,
			StatusCode: code,
			RequestID:  requestid.FromContext(r.Context()),
		})
		if err := page.Render(r.Context(), w); err != nil {
			log.ErrorContext(r.Context(), "failed to render error page", logger.Error(err))
		}
	}
}
