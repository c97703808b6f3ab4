package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/service"
)

// AdminHandler serves the restricted dashboard pages: the marketer roster
// for factories and admins, and the content catalog and platform inbox
// for admins.
type AdminHandler struct {
	analytics *service.AnalyticsService
	campaigns *service.CampaignService
	training  *service.TrainingService
	messages  []*domain.Message
}

func NewAdminHandler(analytics *service.AnalyticsService, campaigns *service.CampaignService, training *service.TrainingService, messages []*domain.Message) *AdminHandler {
	return &AdminHandler{
		analytics: analytics,
		campaigns: campaigns,
		training:  training,
		messages:  messages,
	}
}

// Marketers handles GET /v1/dashboard/marketers. A factory sees just the
// marketers working its products.
//
// @Summary      List marketer activity
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  service.MarketerStats
// @Router       /v1/dashboard/marketers [get]
func (h *AdminHandler) Marketers(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.analytics.Marketers(c.Request().Context(), user.Role, factoryNameOf(user))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

type contentResponse struct {
	Campaigns []*domain.Campaign       `json:"campaigns"`
	Modules   []*domain.TrainingModule `json:"modules"`
}

// Content handles GET /v1/dashboard/content: everything the platform
// publishes to marketers, in one admin view.
//
// @Summary      List managed content
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  contentResponse
// @Router       /v1/dashboard/content [get]
func (h *AdminHandler) Content(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, contentResponse{
		Campaigns: h.campaigns.List(ctx, ""),
		Modules:   h.training.Modules(ctx),
	})
}

// Messages handles GET /v1/dashboard/messages: the platform inbox behind
// the admin sidebar's Messages entry.
//
// @Summary      List platform messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Message
// @Router       /v1/dashboard/messages [get]
func (h *AdminHandler) Messages(c echo.Context) error {
	return c.JSON(http.StatusOK, h.messages)
}
