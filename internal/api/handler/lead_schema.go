package handler

import "github.com/exportbase/marketplace-api/internal/core/domain"

type submitLeadRequest struct {
	ClientName string  `json:"client_name" validate:"required"`
	Country    string  `json:"country"     validate:"required"`
	ProductID  string  `json:"product_id"  validate:"required"`
	Quantity   int     `json:"quantity"    validate:"required,gt=0"`
	Value      float64 `json:"value"       validate:"required,gt=0"`
	Notes      string  `json:"notes"`
}

type updateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted sample_requested negotiating closed lost"`
}

type listLeadsResponse struct {
	Data       []*domain.Lead     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
