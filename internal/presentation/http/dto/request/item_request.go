package request

import "time"

// ProductVariantRequest represents one variant in a product save payload
type ProductVariantRequest struct {
	ID            string     `json:"id"`
	Name          string     `json:"name" binding:"required"`
	Category      string     `json:"category"`
	Type          string     `json:"type"`
	Quantity      float64    `json:"quantity"`
	Size          string     `json:"size"`
	Unit          string     `json:"unit"`
	CostPrice     float64    `json:"cost_price"`
	SellingPrice  float64    `json:"selling_price"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	LowStockAlert float64    `json:"low_stock_alert"`
	SupplierID    string     `json:"supplier_id"`
}

// SaveProductRequest represents the full-replace product save payload
type SaveProductRequest struct {
	OriginalName string                  `json:"original_name"`
	Variants     []ProductVariantRequest `json:"variants" binding:"required,min=1"`
}

// RestockRequest represents the restock payload
type RestockRequest struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

// ItemFilterRequest represents item list query parameters
type ItemFilterRequest struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	Search   string `form:"search"`
	Category string `form:"category"`
	Type     string `form:"type"`
	LowStock bool   `form:"low_stock"`
}
