package handler

import "github.com/exportbase/marketplace-api/internal/core/domain"

type createProductRequest struct {
	Name          string   `json:"name"           validate:"required"`
	Category      string   `json:"category"       validate:"required"`
	Description   string   `json:"description"    validate:"required"`
	Price         float64  `json:"price"          validate:"required,gt=0"`
	Commission    float64  `json:"commission"     validate:"required,gt=0"`
	TargetMarkets []string `json:"target_markets" validate:"required,min=1"`
	Image         string   `json:"image"          validate:"omitempty,url"`
}

type updateProductStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused archived"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listProductsResponse struct {
	Data       []*domain.Product  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
