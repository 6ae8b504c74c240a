package request

// CreateAppointmentRequest represents the booking payload
type CreateAppointmentRequest struct {
	CustomerID      string   `json:"customer_id"`
	CustomerName    string   `json:"customer_name"`
	CustomerPhone   string   `json:"customer_phone"`
	ServiceItemIDs  []string `json:"service_item_ids" binding:"required,min=1"`
	Date            string   `json:"date" binding:"required"`
	StartTime       string   `json:"start_time" binding:"required"`
	DurationMinutes int      `json:"duration_minutes"`
	Notes           string   `json:"notes"`
	Force           bool     `json:"force"`
}

// RescheduleRequest represents the reschedule payload
type RescheduleRequest struct {
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Force           bool   `json:"force"`
}

// UpdateStatusRequest represents the status transition payload
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CompleteAppointmentRequest represents the completion payload
type CompleteAppointmentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// AppointmentFilterRequest represents appointment list query parameters
type AppointmentFilterRequest struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	Status   string `form:"status"`
	FromDate string `form:"from_date"`
	ToDate   string `form:"to_date"`
}
