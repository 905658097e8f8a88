// Package response writes the JSON envelopes of the guardian API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/errors"
)

// DataEnvelope wraps a successful result. Data may be null, for instance the monitor
// status before the first fix.
type DataEnvelope struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// ErrorEnvelope wraps a failed request
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
	Meta  Meta      `json:"meta"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta carries the request id echoed in X-Request-Id
type Meta struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, DataEnvelope{Data: data, Meta: meta(c)})
}

// NoContent acknowledges a request that returns nothing
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	// Details are withheld for server errors and for authentication failures
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorEnvelope{
		Error: ErrorBody{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BindingError returns a 400 for a body that could not be decoded
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// HandleAppError converts domain errors to their HTTP response and passes anything
// else on to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}
