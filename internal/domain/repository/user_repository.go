package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
)

// UserRepository defines the interface for account owner data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// BusinessRepository defines the interface for business data operations
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error
}

// EmployeeRepository defines the interface for employee data operations.
// List, Update and Delete are scoped to the active business context; GetByID
// and GetByPhone resolve an employee at login or token refresh, before any
// business is selected.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Employee, error)
	List(ctx context.Context) ([]entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}
