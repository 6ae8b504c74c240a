package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// AppointmentRepository defines the interface for appointment data operations.
// All operations are scoped to the active business context.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	// ListByDate returns every appointment on one calendar date (YYYY-MM-DD)
	ListByDate(ctx context.Context, date string) ([]entity.Appointment, error)
	List(ctx context.Context, params *AppointmentFilterParams) ([]entity.Appointment, int64, error)
}

// AppointmentFilterParams contains filtering parameters for appointment queries
type AppointmentFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     string
	FromDate   string
	ToDate     string
}
