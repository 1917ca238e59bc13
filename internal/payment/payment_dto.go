package payment

// ==================== REQUEST STRUCTS ====================

// AddMethodRequest covers both kinds of saved methods. Card fields are
// required for type "card", the UPI id for type "upi".
type AddMethodRequest struct {
	Type       string `json:"type" validate:"required,oneof=card upi"`
	CardNumber string `json:"cardNumber" validate:"required_if=Type card,omitempty,min=12,max=19"`
	CardName   string `json:"cardName" validate:"required_if=Type card"`
	Expiry     string `json:"expiry" validate:"required_if=Type card"`
	UPIID      string `json:"upiId" validate:"required_if=Type upi"`
	IsDefault  bool   `json:"isDefault"`
}

// ==================== RESPONSE STRUCTS ====================

type MethodResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	CardName  string `json:"cardName,omitempty"`
	Expiry    string `json:"expiry,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

type MethodListResponse struct {
	Methods []MethodResponse `json:"methods"`
}
