package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ServiceAvailableQuantity is the sentinel quantity marking a service item as
// bookable. Services use quantity as an availability flag, not a count.
const ServiceAvailableQuantity = 999

// InventoryItem represents one stock-keeping variant of a named product or
// service. Items sharing a trimmed name are variants of one logical product;
// saving a product replaces its whole name group.
type InventoryItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"business_id"`
	SupplierID    *uuid.UUID     `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Name          string         `gorm:"size:255;not null;index" json:"name"`
	Category      string         `gorm:"size:100" json:"category"`
	Type          enum.ItemType  `gorm:"size:20;default:'product'" json:"type"`
	Quantity      float64        `gorm:"default:0" json:"quantity"`
	Size          string         `gorm:"size:50" json:"size"`
	Unit          string         `gorm:"size:50" json:"unit"`
	CostPrice     int64          `gorm:"default:0" json:"-"` // Stored in cents
	SellingPrice  int64          `gorm:"default:0" json:"-"` // Stored in cents
	ExpiryDate    *time.Time     `gorm:"type:date" json:"expiry_date,omitempty"`
	LowStockAlert float64        `gorm:"default:0" json:"low_stock_alert"`
	UpdatedByName string         `gorm:"size:255" json:"updated_by_name"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Business Business  `gorm:"foreignKey:BusinessID" json:"-"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	type Alias InventoryItem
	return json.Marshal(&struct {
		Alias
		CostPrice    float64 `json:"cost_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(i),
		CostPrice:    float64(i.CostPrice) / 100,
		SellingPrice: float64(i.SellingPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// EffectiveSellingPrice returns the selling price, falling back to the cost
// price when no selling price was set
func (i *InventoryItem) EffectiveSellingPrice() int64 {
	if i.SellingPrice > 0 {
		return i.SellingPrice
	}
	return i.CostPrice
}

// IsLowStock reports whether the item sits at or below its alert threshold
func (i *InventoryItem) IsLowStock() bool {
	return i.Type == enum.ItemProduct && i.Quantity <= i.LowStockAlert
}
