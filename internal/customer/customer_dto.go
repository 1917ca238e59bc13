package customer

import "github.com/Latha-Maheswari/modern-buy-easy/internal/auth"

// ==================== REQUEST STRUCTS ====================

// UpdateProfileRequest uses pointers so the handler can tell "field absent"
// apart from "field set to empty".
type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	Password        *string `json:"password"`
	CurrentPassword *string `json:"current_password"`
}

type UpdateNotificationsRequest struct {
	OrderUpdates *bool `json:"orderUpdates"`
	Promotions   *bool `json:"promotions"`
	PriceDrops   *bool `json:"priceDrops"`
	Newsletter   *bool `json:"newsletter"`
}

// ==================== RESPONSE STRUCTS ====================

type CustomerResponse struct {
	ID            string                       `json:"id"`
	Email         string                       `json:"email"`
	Name          string                       `json:"name"`
	Phone         string                       `json:"phone,omitempty"`
	Notifications auth.NotificationPreferences `json:"notifications"`
}
