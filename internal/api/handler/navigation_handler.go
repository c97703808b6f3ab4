package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// NavigationHandler serves the sidebar menu for the caller's role.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

type navigationResponse struct {
	Role domain.Role       `json:"role"`
	Menu []domain.MenuItem `json:"menu"`
}

// Menu handles GET /v1/navigation. The menu is derived from the
// session role alone, so two users with the same role always see the same
// entries.
//
// @Summary      Get the role navigation menu
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Menu(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, navigationResponse{
		Role: user.Role,
		Menu: domain.MenuFor(user.Role),
	})
}
