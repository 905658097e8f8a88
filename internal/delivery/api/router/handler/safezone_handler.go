package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"guardian/internal/delivery/api/response"
	"guardian/internal/usecase"
)

// SafeZoneHandlerParams holds dependencies for SafeZoneHandler, injected by Fx.
type SafeZoneHandlerParams struct {
	fx.In

	SafeZoneUC usecase.SafeZoneUsecase
	MonitorUC  usecase.SafeZoneMonitorUsecase
}

// SafeZoneHandler serves safe zone management and monitoring endpoints
type SafeZoneHandler struct {
	safeZoneUC usecase.SafeZoneUsecase
	monitorUC  usecase.SafeZoneMonitorUsecase
}

// NewSafeZoneHandler is the constructor for SafeZoneHandler
func NewSafeZoneHandler(params SafeZoneHandlerParams) *SafeZoneHandler {
	return &SafeZoneHandler{
		safeZoneUC: params.SafeZoneUC,
		monitorUC:  params.MonitorUC,
	}
}

// MonitoringResponse reports whether the location stream is attached
type MonitoringResponse struct {
	IsMonitoring bool `json:"isMonitoring"`
}

// ListSafeZones returns every safe zone
func (h *SafeZoneHandler) ListSafeZones(c echo.Context) error {
	zones, err := h.safeZoneUC.ListSafeZones(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones)
}

// AddSafeZone creates a safe zone
func (h *SafeZoneHandler) AddSafeZone(c echo.Context) error {
	var req usecase.SafeZoneInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid safe zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	zone, err := h.safeZoneUC.AddSafeZone(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, zone)
}

// UpdateSafeZone changes the given fields of a safe zone
func (h *SafeZoneHandler) UpdateSafeZone(c echo.Context) error {
	var req usecase.SafeZoneUpdate
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid safe zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	zone, err := h.safeZoneUC.UpdateSafeZone(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// ToggleSafeZone flips the active flag of a safe zone
func (h *SafeZoneHandler) ToggleSafeZone(c echo.Context) error {
	zone, err := h.safeZoneUC.ToggleSafeZone(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// DeleteSafeZone removes a safe zone
func (h *SafeZoneHandler) DeleteSafeZone(c echo.Context) error {
	if err := h.safeZoneUC.DeleteSafeZone(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListActivity returns the safe zone activity log, most recent first
func (h *SafeZoneHandler) ListActivity(c echo.Context) error {
	activity, err := h.safeZoneUC.ListSafeZoneActivity(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activity)
}

// Status returns the monitor status; data is null before the first fix
func (h *SafeZoneHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.monitorUC.CurrentSafeZoneStatus())
}

// StartMonitoring attaches the location stream
func (h *SafeZoneHandler) StartMonitoring(c echo.Context) error {
	if err := h.monitorUC.StartMonitoring(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MonitoringResponse{IsMonitoring: h.monitorUC.IsMonitoring()})
}

// StopMonitoring detaches the location stream
func (h *SafeZoneHandler) StopMonitoring(c echo.Context) error {
	h.monitorUC.StopMonitoring()

	return response.Success(c, http.StatusOK, MonitoringResponse{IsMonitoring: h.monitorUC.IsMonitoring()})
}
