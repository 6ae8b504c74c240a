package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/pagination"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// SupplierService handles supplier records
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	audit        *auditor
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository, auditRepo repository.AuditLogRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		audit:        newAuditor(auditRepo),
	}
}

// SupplierInput represents the supplier create/update input
type SupplierInput struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
	Notes   string
}

// CreateSupplier creates a new supplier record
func (s *SupplierService) CreateSupplier(ctx context.Context, op Operator, input *SupplierInput) (*entity.Supplier, error) {
	if err := requirePermission(op, PermInventory); err != nil {
		return nil, err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Supplier name is required")
	}

	supplier := &entity.Supplier{
		ID:         utils.NewID(),
		BusinessID: businessID,
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
		Notes:      input.Notes,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditReseller, op.Name,
		fmt.Sprintf("Created supplier '%s'", supplier.Name))
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplier updates a supplier's contact details
func (s *SupplierService) UpdateSupplier(ctx context.Context, op Operator, id uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	if err := requirePermission(op, PermInventory); err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != "" {
		supplier.Name = input.Name
	}
	supplier.Phone = input.Phone
	supplier.Email = input.Email
	supplier.Address = input.Address
	supplier.Notes = input.Notes

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditReseller, op.Name,
		fmt.Sprintf("Updated supplier '%s'", supplier.Name))
	return supplier, nil
}

// DeleteSupplier removes a supplier record
func (s *SupplierService) DeleteSupplier(ctx context.Context, op Operator, id uuid.UUID) error {
	if err := requirePermission(op, PermInventory); err != nil {
		return err
	}

	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.record(ctx, enum.AuditReseller, op.Name,
		fmt.Sprintf("Deleted supplier '%s'", supplier.Name))
	return nil
}

// ListSuppliers lists suppliers with optional name search
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}
