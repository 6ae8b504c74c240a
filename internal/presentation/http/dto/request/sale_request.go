package request

// SaleLineRequest represents one requested line of a checkout
type SaleLineRequest struct {
	ItemID   string  `json:"item_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

// BatchSaleRequest represents the checkout payload
type BatchSaleRequest struct {
	Lines         []SaleLineRequest `json:"lines" binding:"required,min=1"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	CustomerID    string            `json:"customer_id"`
}

// SaleFilterRequest represents sale list query parameters
type SaleFilterRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	From    string `form:"from"` // YYYY-MM-DD
	To      string `form:"to"`   // YYYY-MM-DD
}

// CloseRegisterRequest represents the register close payload
type CloseRegisterRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}
