package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"guardian/internal/delivery/api/response"
	"guardian/internal/domain/entity"
	"guardian/internal/usecase"
)

// ParentalHandlerParams holds dependencies for ParentalHandler, injected by Fx.
type ParentalHandlerParams struct {
	fx.In

	ParentalUC usecase.ParentalUsecase
}

// ParentalHandler serves settings, dashboard, check-in and device ping endpoints
type ParentalHandler struct {
	parentalUC usecase.ParentalUsecase
}

// NewParentalHandler is the constructor for ParentalHandler
func NewParentalHandler(params ParentalHandlerParams) *ParentalHandler {
	return &ParentalHandler{parentalUC: params.ParentalUC}
}

// SettingsRequest is the full settings document; a plaintext PIN is not accepted
type SettingsRequest struct {
	RequirePinForParentMode      bool                      `json:"requirePinForParentMode"`
	AllowChildCategoryCreation   bool                      `json:"allowChildCategoryCreation"`
	RequireApprovalForCategories bool                      `json:"requireApprovalForCategories"`
	MaxCustomCategories          int                       `json:"maxCustomCategories" validate:"gte=0,lte=100"`
	SafeZoneAlerts               bool                      `json:"safeZoneAlerts"`
	CheckInReminders             bool                      `json:"checkInReminders"`
	EmergencyContacts            []entity.EmergencyContact `json:"emergencyContacts" validate:"dive"`
}

// CheckInRequestBody asks the child to check in
type CheckInRequestBody struct {
	Message  string `json:"message" validate:"required,max=280"`
	IsUrgent bool   `json:"isUrgent"`
}

// CompleteCheckInBody is sent by the child device to answer a check-in
type CompleteCheckInBody struct {
	Location *entity.CheckInLocation `json:"location"`
}

// PingRequestBody asks the device to report, ring or show a message
type PingRequestBody struct {
	Type    entity.DevicePingType `json:"type" validate:"required,oneof=location ring message"`
	Message string                `json:"message" validate:"max=280"`
}

// AcknowledgePingBody is sent by the child device to answer a ping
type AcknowledgePingBody struct {
	Location *entity.Coordinate `json:"location"`
}

// GetSettings returns the parental settings
func (h *ParentalHandler) GetSettings(c echo.Context) error {
	settings, err := h.parentalUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// SaveSettings replaces the parental settings
func (h *ParentalHandler) SaveSettings(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.parentalUC.SaveSettings(c.Request().Context(), &entity.ParentalSettings{
		RequirePinForParentMode:      req.RequirePinForParentMode,
		AllowChildCategoryCreation:   req.AllowChildCategoryCreation,
		RequireApprovalForCategories: req.RequireApprovalForCategories,
		MaxCustomCategories:          req.MaxCustomCategories,
		SafeZoneAlerts:               req.SafeZoneAlerts,
		CheckInReminders:             req.CheckInReminders,
		EmergencyContacts:            req.EmergencyContacts,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// AddContact adds an emergency contact
func (h *ParentalHandler) AddContact(c echo.Context) error {
	var req usecase.EmergencyContactInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.parentalUC.AddEmergencyContact(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, contact)
}

// UpdateContact replaces an emergency contact
func (h *ParentalHandler) UpdateContact(c echo.Context) error {
	var req usecase.EmergencyContactInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.parentalUC.UpdateEmergencyContact(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contact)
}

// DeleteContact removes an emergency contact
func (h *ParentalHandler) DeleteContact(c echo.Context) error {
	if err := h.parentalUC.DeleteEmergencyContact(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// GetDashboard returns recent check-ins, safe zone activity and the last known location
func (h *ParentalHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.parentalUC.GetDashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// ListCheckIns returns every check-in request
func (h *ParentalHandler) ListCheckIns(c echo.Context) error {
	requests, err := h.parentalUC.ListCheckInRequests(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// RequestCheckIn asks the child to check in
func (h *ParentalHandler) RequestCheckIn(c echo.Context) error {
	var req CheckInRequestBody
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.parentalUC.RequestCheckIn(c.Request().Context(), req.Message, req.IsUrgent)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// CompleteCheckIn answers a check-in from the child side
func (h *ParentalHandler) CompleteCheckIn(c echo.Context) error {
	var req CompleteCheckInBody
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid check-in input")
	}

	ctx := c.Request().Context()

	request, err := h.parentalUC.CompleteCheckIn(ctx, c.Param("id"), req.Location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.parentalUC.AddCheckInToDashboard(ctx, request.DashboardEntry()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// ListPings returns every device ping
func (h *ParentalHandler) ListPings(c echo.Context) error {
	pings, err := h.parentalUC.ListDevicePings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pings)
}

// SendPing sends a ping to the child device
func (h *ParentalHandler) SendPing(c echo.Context) error {
	var req PingRequestBody
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid ping input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ping, err := h.parentalUC.SendDevicePing(c.Request().Context(), req.Type, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ping)
}

// AcknowledgePing answers a ping from the child side
func (h *ParentalHandler) AcknowledgePing(c echo.Context) error {
	var req AcknowledgePingBody
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid ping input")
	}

	ping, err := h.parentalUC.AcknowledgePing(c.Request().Context(), c.Param("id"), req.Location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ping)
}
