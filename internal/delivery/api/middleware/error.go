package middleware

import (
	"log/slog"

	"huddle/internal/delivery/api/response"
	deliverycontext "huddle/internal/delivery/context"
	domainerrors "huddle/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
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

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.HandleAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Internal details stay in the log
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
