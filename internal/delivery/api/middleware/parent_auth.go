package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"guardian/internal/delivery/api/response"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"
)

// ParentAuthMiddleware guards routes that need an unlocked parent mode. A request is
// authorized when it carries a valid parent token and the server side session is still
// open, so exiting parent mode revokes every issued token.
type ParentAuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.ParentalAuthUsecase
}

// NewParentAuthMiddleware is the constructor for ParentAuthMiddleware.
func NewParentAuthMiddleware(tokenSvc service.TokenService, authUC usecase.ParentalAuthUsecase) *ParentAuthMiddleware {
	return &ParentAuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// RequireParent rejects requests made outside parent mode.
func (m *ParentAuthMiddleware) RequireParent(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.Authorize(c) {
			return response.HandleAppError(c, domainerrors.ErrParentModeRequired)
		}

		return next(c)
	}
}

// Authorize checks the bearer token and records the session on c. Handlers with mixed
// access (for instance the first PIN setup) call it directly.
func (m *ParentAuthMiddleware) Authorize(c echo.Context) bool {
	if _, ok := deliverycontext.ParentSession(c); ok {
		return true
	}

	token, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found {
		// Browsers cannot set headers on a WebSocket upgrade.
		token = c.QueryParam("access_token")
	}
	if token == "" {
		return false
	}

	claims, err := m.tokenSvc.ValidateToken(token)
	if err != nil || !m.authUC.IsParentMode() {
		return false
	}

	if claims.ExpiresAt != nil {
		deliverycontext.SetParentSession(c, claims.ExpiresAt.Time)
	}

	return true
}
