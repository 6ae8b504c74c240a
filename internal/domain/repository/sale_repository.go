package repository

import (
	"context"
	"time"

	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// SaleRepository defines the interface for sale record data operations.
// Sales are immutable once written; there is no update operation.
type SaleRepository interface {
	// CreateBatch writes all lines of one checkout in a single transaction
	CreateBatch(ctx context.Context, sales []entity.Sale) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListByDay returns every sale whose sale date falls on the given calendar day
	ListByDay(ctx context.Context, day time.Time) ([]entity.Sale, error)
	// DeleteAll removes every sale of the active business
	DeleteAll(ctx context.Context) error
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	From       *time.Time
	To         *time.Time
}
