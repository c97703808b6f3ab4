package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/service"
)

// DashboardHandler serves the role-scoped overview shown on the dashboard
// landing page.
type DashboardHandler struct {
	analytics *service.AnalyticsService
}

func NewDashboardHandler(analytics *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// Overview handles GET /v1/dashboard/analytics. Counts and pipeline values
// are scoped the same way the list endpoints are.
//
// @Summary      Get the dashboard overview
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.Overview
// @Router       /v1/dashboard/analytics [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	overview, err := h.analytics.Overview(c.Request().Context(), user.Role, user.ID, factoryNameOf(user))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
