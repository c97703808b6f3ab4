package domain

import (
	"errors"
	"time"
)

// ProductStatus represents the listing state of a product.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductPaused   ProductStatus = "paused"
	ProductArchived ProductStatus = "archived"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a factory listing that marketers can promote.
type Product struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	Name          string        `json:"name" bson:"name"`
	Category      string        `json:"category" bson:"category"`
	Description   string        `json:"description" bson:"description"`
	Price         float64       `json:"price" bson:"price"`
	Commission    float64       `json:"commission" bson:"commission"`
	Status        ProductStatus `json:"status" bson:"status"`
	TargetMarkets []string      `json:"target_markets" bson:"target_markets"`
	FactoryID     string        `json:"factory_id,omitempty" bson:"factory_id,omitempty"`
	FactoryName   string        `json:"factory_name" bson:"factory_name"`
	Image         string        `json:"image,omitempty" bson:"image,omitempty"`
	MarketerCount int           `json:"marketer_count" bson:"marketer_count"`
	LeadCount     int           `json:"lead_count" bson:"lead_count"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
}
