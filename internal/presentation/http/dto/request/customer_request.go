package request

// CustomerRequest represents the customer create/update payload
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   string  `json:"notes"`
}

// SupplierRequest represents the supplier create/update payload
type SupplierRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   string  `json:"notes"`
}

// RenewSubscriptionRequest represents the subscription renewal payload
type RenewSubscriptionRequest struct {
	BusinessID string `json:"business_id" binding:"required"`
	PlanCode   string `json:"plan_code" binding:"required"`
}

// CreateBusinessRequest represents the add-business payload
type CreateBusinessRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// SettingsRequest represents the settings save payload
type SettingsRequest struct {
	Currency      string             `json:"currency"`
	ExchangeRates map[string]float64 `json:"exchange_rates"`
}

// ChatRequest represents the assistant chat payload
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
