package services

// ProductCreateRequest is the payload for creating a product. Pointer fields
// distinguish "absent" from zero values.
type ProductCreateRequest struct {
	Name          string   `json:"name" validate:"required"`
	Slug          string   `json:"slug"`
	Price         *float64 `json:"price" validate:"required"`
	OriginalPrice *float64 `json:"originalPrice"`
	Image         string   `json:"image" validate:"required"`
	Images        []string `json:"images"`
	Category      string   `json:"category" validate:"required"`
	Rating        *float64 `json:"rating"`
	InStock       *bool    `json:"inStock"`
	Discount      *float64 `json:"discount"`
	Description   string   `json:"description"`
	SKU           string   `json:"sku"`
	Tags          []string `json:"tags"`
}

// ProductListParams contains the storefront listing filters.
type ProductListParams struct {
	Category string
	Search   string
	Limit    int64
}

// ProductCounts summarizes the catalog for the admin dashboard.
type ProductCounts struct {
	Total      int64 `json:"total"`
	InStock    int64 `json:"inStock"`
	Discounted int64 `json:"discounted"`
}

// CategoryCreateRequest is the payload for creating a category.
type CategoryCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// CategoryUpdateRequest is an explicit optional-field patch: only non-nil
// fields are written, so unspecified fields are never nulled out.
type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}
