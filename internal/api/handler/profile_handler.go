package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/ports"
)

// notificationSettings holds a user's notification preferences. Defaults are
// all-on for a fresh account.
type notificationSettings struct {
	EmailLeads     bool `json:"email_leads"`
	EmailCampaigns bool `json:"email_campaigns"`
	EmailTraining  bool `json:"email_training"`
}

func defaultSettings() notificationSettings {
	return notificationSettings{EmailLeads: true, EmailCampaigns: true, EmailTraining: true}
}

// ProfileHandler serves the account profile and settings pages.
type ProfileHandler struct {
	authService ports.AuthService

	mu       sync.RWMutex
	settings map[string]notificationSettings
}

func NewProfileHandler(authService ports.AuthService) *ProfileHandler {
	return &ProfileHandler{
		authService: authService,
		settings:    make(map[string]notificationSettings),
	}
}

// Get handles GET /v1/dashboard/profile.
//
// @Summary      Get the session profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Router       /v1/dashboard/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /v1/dashboard/profile. Changes are written back to the
// session, so subsequent requests on the same token see the new values.
//
// @Summary      Update the session profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile changes"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /v1/dashboard/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), sessionToken(c), req.Name, req.Avatar)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Settings handles GET /v1/dashboard/settings.
//
// @Summary      Get notification settings
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notificationSettings
// @Router       /v1/dashboard/settings [get]
func (h *ProfileHandler) Settings(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	h.mu.RLock()
	settings, ok := h.settings[user.ID]
	h.mu.RUnlock()
	if !ok {
		settings = defaultSettings()
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /v1/dashboard/settings.
//
// @Summary      Update notification settings
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      notificationSettings  true  "Preferences"
// @Success      200   {object}  notificationSettings
// @Failure      400   {object}  errorResponse
// @Router       /v1/dashboard/settings [put]
func (h *ProfileHandler) UpdateSettings(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var settings notificationSettings
	if err := c.Bind(&settings); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	h.mu.Lock()
	h.settings[user.ID] = settings
	h.mu.Unlock()
	return c.JSON(http.StatusOK, settings)
}
