package address

// ==================== REQUEST STRUCTS ====================

type CreateAddressRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Line      string `json:"line" validate:"required"`
	Landmark  string `json:"landmark"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Pincode   string `json:"pincode" validate:"required,len=6,numeric"`
	IsDefault bool   `json:"isDefault"`
}

type UpdateAddressRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Line      *string `json:"line"`
	Landmark  *string `json:"landmark"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Pincode   *string `json:"pincode" validate:"omitempty,len=6,numeric"`
	IsDefault *bool   `json:"isDefault"`
}

// ==================== RESPONSE STRUCTS ====================

type AddressResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Line      string `json:"line"`
	Landmark  string `json:"landmark,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

type AddressListResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}
