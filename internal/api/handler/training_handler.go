package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/service"
)

// TrainingHandler serves the marketer training center.
type TrainingHandler struct {
	service *service.TrainingService
}

func NewTrainingHandler(service *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

// List handles GET /v1/dashboard/training. Modules are annotated with the
// caller's progress and lock state.
//
// @Summary      List training modules
// @Tags         training
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ModuleProgress
// @Router       /v1/dashboard/training [get]
func (h *TrainingHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	modules := h.service.List(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, modules)
}

// Complete handles POST /v1/dashboard/training/:id/complete. Completing a
// module unlocks the ones that require it.
//
// @Summary      Complete a training module
// @Tags         training
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Module ID"
// @Success      200  {object}  domain.ModuleProgress
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/dashboard/training/{id}/complete [post]
func (h *TrainingHandler) Complete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	progress, err := h.service.Complete(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, progress)
}
