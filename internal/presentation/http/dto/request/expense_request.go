package request

import "time"

// ExpenseRequest represents the expense save payload
type ExpenseRequest struct {
	Name          string    `json:"name" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	Type          string    `json:"type" binding:"required"`
	PaymentDay    int       `json:"payment_day"`
	NextDueDate   time.Time `json:"next_due_date"`
	PaymentMethod *string   `json:"payment_method"`
}

// MarkPaidRequest represents the expense payment payload
type MarkPaidRequest struct {
	PaymentMethod *string `json:"payment_method"`
	Rollover      bool    `json:"rollover"`
}

// ExpenseFilterRequest represents expense list query parameters
type ExpenseFilterRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Type    string `form:"type"`
	Unpaid  bool   `form:"unpaid"`
}
