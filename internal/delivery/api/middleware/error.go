package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"guardian/internal/delivery/api/response"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.requestLogger(c).Error("Request failed", slog.Any("error", err))
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	// Request loggers wrap plain handler errors in a 500 HTTPError carrying the cause
	// as Internal. Those are unhandled errors, not echo's own HTTP errors.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && (httpErr.Internal == nil || httpErr.Code < http.StatusInternalServerError) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.requestLogger(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, domainerrors.ErrInternalError.HTTPCode(), domainerrors.ErrInternalError.ErrorCode(),
		"Internal server error, please try again later", nil)
}

func (m *ErrorMiddleware) requestLogger(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
