package cart

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type UpdateQtyRequest struct {
	Qty int `json:"qty"`
}

// ==================== RESPONSE STRUCTS ====================

type CartItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"lineTotal"`
}

type CartDetailResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	Subtotal   float64            `json:"subtotal"`
}

type CountResponse struct {
	Count int `json:"count"`
}
