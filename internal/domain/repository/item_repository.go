package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// ItemRepository defines the interface for inventory item data operations.
// All operations are scoped to the active business context.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	// GetByIDs retrieves multiple items by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.InventoryItem, error)
	// GetByName retrieves all variants sharing a trimmed name (one logical product)
	GetByName(ctx context.Context, name string) ([]entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.InventoryItem, int64, error)
	GetLowStock(ctx context.Context) ([]entity.InventoryItem, error)
	// ReplaceNameGroup atomically removes every variant whose trimmed name equals
	// name and inserts the given variants in their place
	ReplaceNameGroup(ctx context.Context, name string, variants []entity.InventoryItem) error
	// AdjustQuantityBatch atomically applies signed quantity deltas. Quantities
	// are allowed to go negative; there is no sufficiency check.
	AdjustQuantityBatch(ctx context.Context, deltas map[uuid.UUID]float64) error
	// DeleteAll removes every item of the active business
	DeleteAll(ctx context.Context) error
}

// ItemFilterParams contains filtering parameters for item queries
type ItemFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	Type       string
	LowStock   bool
}
