package seller

// ==================== REQUEST STRUCTS ====================

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64 `json:"originalPrice" validate:"omitempty,gt=0"`
	Category      string  `json:"category" validate:"required"`
	Stock         int     `json:"stock" validate:"gte=0"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	IsNewArrival  bool    `json:"isNewArrival"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gt=0"`
	Category      *string  `json:"category"`
	Stock         *int     `json:"stock" validate:"omitempty,gte=0"`
	Image         *string  `json:"image"`
	Description   *string  `json:"description"`
	IsNewArrival  *bool    `json:"isNewArrival"`
}

// ==================== RESPONSE STRUCTS ====================

type ProductResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Category      string  `json:"category"`
	Stock         int     `json:"stock"`
	InStock       bool    `json:"inStock"`
	Image         string  `json:"image,omitempty"`
	Description   string  `json:"description,omitempty"`
	IsNewArrival  bool    `json:"isNewArrival"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type StatsResponse struct {
	TotalProducts int `json:"totalProducts"`
	InStock       int `json:"inStock"`
	OutOfStock    int `json:"outOfStock"`
	NewArrivals   int `json:"newArrivals"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
