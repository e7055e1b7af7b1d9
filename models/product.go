package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. The bson keys mirror the storefront's wire
// format so documents round-trip unchanged between the API and the database.
type Product struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Slug          string             `json:"slug" bson:"slug"`
	Price         float64            `json:"price" bson:"price"`
	OriginalPrice *float64           `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Image         string             `json:"image" bson:"image"`
	Images        []string           `json:"images" bson:"images"`
	Category      string             `json:"category" bson:"category"`
	Rating        float64            `json:"rating" bson:"rating"`
	InStock       bool               `json:"inStock" bson:"inStock"`
	Discount      *float64           `json:"discount,omitempty" bson:"discount,omitempty"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	SKU           string             `json:"sku,omitempty" bson:"sku,omitempty"`
	Tags          []string           `json:"tags" bson:"tags"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
