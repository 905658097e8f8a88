package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/response"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"
)

// ParentHandlerParams holds dependencies for ParentHandler, injected by Fx.
type ParentHandlerParams struct {
	fx.In

	AuthUC         usecase.ParentalAuthUsecase
	TokenSvc       service.TokenService
	AuthMiddleware *middleware.ParentAuthMiddleware
}

// ParentHandler serves the parent PIN and parent mode session endpoints
type ParentHandler struct {
	authUC         usecase.ParentalAuthUsecase
	tokenSvc       service.TokenService
	authMiddleware *middleware.ParentAuthMiddleware
}

// NewParentHandler is the constructor for ParentHandler
func NewParentHandler(params ParentHandlerParams) *ParentHandler {
	return &ParentHandler{
		authUC:         params.AuthUC,
		tokenSvc:       params.TokenSvc,
		authMiddleware: params.AuthMiddleware,
	}
}

// PinRequest carries a parent PIN. Its format is checked by the use case so the caller
// gets the PIN specific error.
type PinRequest struct {
	Pin string `json:"pin"`
}

// SessionResponse is returned when parent mode is entered or refreshed
type SessionResponse struct {
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expiresAt"`
	FirstTimeSetup bool      `json:"firstTimeSetup"`
}

// SessionStatusResponse describes the parent mode state
type SessionStatusResponse struct {
	ParentMode bool `json:"parentMode"`
	HasPin     bool `json:"hasPin"`
}

// SetPin stores a new parent PIN. Setting the first PIN is open; changing it needs parent mode.
func (h *ParentHandler) SetPin(c echo.Context) error {
	ctx := c.Request().Context()

	hasPin, err := h.authUC.HasPin(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if hasPin && !h.authMiddleware.Authorize(c) {
		return response.HandleAppError(c, domainerrors.ErrParentModeRequired)
	}

	var req PinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid PIN input")
	}

	if err := h.authUC.SetParentPin(ctx, req.Pin); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// OpenSession authenticates with the PIN and returns a parent token
func (h *ParentHandler) OpenSession(c echo.Context) error {
	var req PinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid PIN input")
	}

	session, err := h.authUC.AuthenticateParentMode(c.Request().Context(), req.Pin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.tokenSvc.GenerateParentToken(session.ExpiresAt)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		Token:          token,
		ExpiresAt:      session.ExpiresAt,
		FirstTimeSetup: session.FirstTimeSetup,
	})
}

// RefreshSession restarts the inactivity timer and issues a token for the new expiry
func (h *ParentHandler) RefreshSession(c echo.Context) error {
	session, err := h.authUC.RefreshSession()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.tokenSvc.GenerateParentToken(session.ExpiresAt)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, SessionResponse{Token: token, ExpiresAt: session.ExpiresAt})
}

// CloseSession leaves parent mode
func (h *ParentHandler) CloseSession(c echo.Context) error {
	h.authUC.ExitParentMode()

	return response.NoContent(c)
}

// SessionStatus reports whether parent mode is on and a PIN exists
func (h *ParentHandler) SessionStatus(c echo.Context) error {
	hasPin, err := h.authUC.HasPin(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionStatusResponse{
		ParentMode: h.authUC.IsParentMode(),
		HasPin:     hasPin,
	})
}
