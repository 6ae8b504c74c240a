package repository

import (
	"context"

	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// AuditLogRepository defines the interface for the append-only audit trail.
// Entries are never updated or deleted.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// List returns entries newest-first
	List(ctx context.Context, params *AuditLogFilterParams) ([]entity.AuditLog, int64, error)
}

// AuditLogFilterParams contains filtering parameters for audit log queries
type AuditLogFilterParams struct {
	Pagination *pagination.PaginationParams
	Action     string
}
