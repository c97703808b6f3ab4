package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/service"
)

// DirectoryHandler serves the public factory directory. These routes sit
// outside the guarded dashboard group.
type DirectoryHandler struct {
	service *service.DirectoryService
}

func NewDirectoryHandler(service *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// List handles GET /v1/directory/factories.
//
// @Summary      List factories
// @Tags         directory
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Param        search    query  string  false  "Match on name or location"
// @Success      200  {array}  domain.FactoryProfile
// @Router       /v1/directory/factories [get]
func (h *DirectoryHandler) List(c echo.Context) error {
	factories := h.service.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("search"))
	return c.JSON(http.StatusOK, factories)
}

// Get handles GET /v1/directory/factories/:id.
//
// @Summary      Get a factory profile
// @Tags         directory
// @Produce      json
// @Param        id   path      string  true  "Factory ID"
// @Success      200  {object}  domain.FactoryProfile
// @Failure      404  {object}  errorResponse
// @Router       /v1/directory/factories/{id} [get]
func (h *DirectoryHandler) Get(c echo.Context) error {
	factory, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, factory)
}
