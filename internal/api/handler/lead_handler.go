package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/api/metrics"
	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

// LeadHandler handles HTTP requests for buyer inquiries.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// List handles GET /v1/dashboard/leads. Visibility is role-scoped:
// marketers see their own leads, factories see leads on their products,
// admins see everything.
//
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Lead status filter"
// @Param        search  query     string  false  "Match on client or product"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  listLeadsResponse
// @Router       /v1/dashboard/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListLeadsInput{
		Role:        user.Role,
		UserID:      user.ID,
		FactoryName: factoryNameOf(user),
		Status:      c.QueryParam("status"),
		Search:      c.QueryParam("search"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listLeadsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/dashboard/leads/:id.
//
// @Summary      Get a lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  domain.Lead
// @Failure      404  {object}  errorResponse
// @Router       /v1/dashboard/leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	lead, err := h.service.Get(c.Request().Context(), c.Param("id"), user.Role, user.ID, factoryNameOf(user))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}

// Submit handles POST /v1/dashboard/leads. Marketer only: the lead is
// attributed to the calling marketer.
//
// @Summary      Submit a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitLeadRequest  true  "Lead details"
// @Success      201   {object}  domain.Lead
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/dashboard/leads [post]
func (h *LeadHandler) Submit(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleMarketer {
		return domain.ErrForbidden
	}

	var req submitLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	lead, err := h.service.Submit(c.Request().Context(), ports.SubmitLeadInput{
		ClientName:   req.ClientName,
		Country:      req.Country,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Value:        req.Value,
		Notes:        req.Notes,
		MarketerID:   user.ID,
		MarketerName: user.Name,
	})
	if err != nil {
		return err
	}

	metrics.LeadsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, lead)
}

// UpdateStatus handles PATCH /v1/dashboard/leads/:id. Factories and admins
// move a lead along its lifecycle; invalid transitions are rejected.
//
// @Summary      Update a lead's status
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Lead ID"
// @Param        body  body      updateLeadStatusRequest  true  "New status"
// @Success      200   {object}  domain.Lead
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/dashboard/leads/{id} [patch]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	lead, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.LeadStatus(req.Status), user.Role, factoryNameOf(user))
	if err != nil {
		return err
	}

	metrics.LeadTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, lead)
}
