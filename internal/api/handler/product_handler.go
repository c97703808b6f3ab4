package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /v1/dashboard/products. Marketers and admins browse the
// whole catalog; factory callers see their own listings.
//
// @Summary      Browse products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category       query     string  false  "Category filter"
// @Param        status         query     string  false  "Listing status filter"
// @Param        target_market  query     string  false  "Target market filter"
// @Param        search         query     string  false  "Match on name or factory"
// @Param        page           query     int     false  "Page (1-based)"
// @Param        limit          query     int     false  "Page size"
// @Success      200            {object}  listProductsResponse
// @Router       /v1/dashboard/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Role:         user.Role,
		UserID:       user.ID,
		Category:     c.QueryParam("category"),
		Status:       c.QueryParam("status"),
		TargetMarket: c.QueryParam("target_market"),
		Search:       c.QueryParam("search"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/dashboard/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/dashboard/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /v1/dashboard/products. Factory only: the listing is
// attributed to the calling factory, never to payload fields.
//
// @Summary      List a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/dashboard/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleFactory {
		return domain.ErrForbidden
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		Commission:    req.Commission,
		TargetMarkets: req.TargetMarkets,
		Image:         req.Image,
		FactoryID:     user.ID,
		FactoryName:   factoryNameOf(user),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// UpdateStatus handles PATCH /v1/dashboard/products/:id.
//
// @Summary      Update a product's listing status
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Product ID"
// @Param        body  body      updateProductStatusRequest  true  "New status"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/dashboard/products/{id} [patch]
func (h *ProductHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProductStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ProductStatus(req.Status), user.Role, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /v1/dashboard/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product ID"
// @Success      204  "deleted"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/dashboard/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.Role, user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
