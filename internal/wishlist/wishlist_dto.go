package wishlist

import "time"

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type WishlistItemResponse struct {
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Image         string    `json:"image"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	InStock       bool      `json:"inStock"`
	AddedAt       time.Time `json:"addedAt"`
}

type WishlistResponse struct {
	UserID    string                 `json:"userId"`
	Items     []WishlistItemResponse `json:"items"`
	ItemCount int                    `json:"itemCount"`
}

type AddItemResponse struct {
	Message string `json:"message"`
}
