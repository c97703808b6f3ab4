package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/service"
)

// CampaignHandler serves the marketing campaign board.
type CampaignHandler struct {
	service *service.CampaignService
}

func NewCampaignHandler(service *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// List handles GET /v1/dashboard/campaigns.
//
// @Summary      List campaigns
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Campaign status filter"
// @Success      200  {array}  domain.Campaign
// @Router       /v1/dashboard/campaigns [get]
func (h *CampaignHandler) List(c echo.Context) error {
	campaigns := h.service.List(c.Request().Context(), c.QueryParam("status"))
	return c.JSON(http.StatusOK, campaigns)
}

// Get handles GET /v1/dashboard/campaigns/:id.
//
// @Summary      Get a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Campaign ID"
// @Success      200  {object}  domain.Campaign
// @Failure      404  {object}  errorResponse
// @Router       /v1/dashboard/campaigns/{id} [get]
func (h *CampaignHandler) Get(c echo.Context) error {
	campaign, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaign)
}
