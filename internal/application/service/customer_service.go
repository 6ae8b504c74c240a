package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/notify"
	"github.com/sangkips/bizledger-api/pkg/pagination"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// CustomerService handles customer records, loyalty crediting and outbound
// re-engagement
type CustomerService struct {
	customerRepo repository.CustomerRepository
	businessRepo repository.BusinessRepository
	messenger    notify.Messenger
	audit        *auditor
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	businessRepo repository.BusinessRepository,
	auditRepo repository.AuditLogRepository,
	messenger notify.Messenger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		businessRepo: businessRepo,
		messenger:    messenger,
		audit:        newAuditor(auditRepo),
	}
}

// CustomerInput represents the customer create/update input
type CustomerInput struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
	Notes   string
}

// CreateCustomer creates a new customer record
func (s *CustomerService) CreateCustomer(ctx context.Context, op Operator, input *CustomerInput) (*entity.Customer, error) {
	if err := requirePermission(op, PermCustomers); err != nil {
		return nil, err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	customer := &entity.Customer{
		ID:         utils.NewID(),
		BusinessID: businessID,
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
		Notes:      input.Notes,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditCreate, op.Name,
		fmt.Sprintf("Created customer '%s'", customer.Name))
	return customer, nil
}

// QuickAdd creates a minimal customer record at the point of sale with zeroed
// balances, for immediate use in a checkout or booking
func (s *CustomerService) QuickAdd(ctx context.Context, name, phone string) (*entity.Customer, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}
	if name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	// Being added at the counter counts as a visit
	now := time.Now()
	customer := &entity.Customer{
		ID:         utils.NewID(),
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
		Notes:      "Added at point of sale",
		LastVisit:  &now,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Credit applies the side effects of completed revenue to a customer: lifetime
// spend, loyalty points (one per 100 currency units) and last visit. Crediting
// a missing customer is a silent no-op.
func (s *CustomerService) Credit(ctx context.Context, customerID uuid.UUID, revenueCents int64) error {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return nil
	}

	now := time.Now()
	customer.TotalSpent += revenueCents
	customer.LoyaltyPoints += utils.LoyaltyPoints(revenueCents)
	customer.LastVisit = &now
	return s.customerRepo.Update(ctx, customer)
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomer updates a customer's contact details
func (s *CustomerService) UpdateCustomer(ctx context.Context, op Operator, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	if err := requirePermission(op, PermCustomers); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != "" {
		customer.Name = input.Name
	}
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.Address = input.Address
	customer.Notes = input.Notes

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditUpdate, op.Name,
		fmt.Sprintf("Updated customer '%s'", customer.Name))
	return customer, nil
}

// DeleteCustomer removes a customer record
func (s *CustomerService) DeleteCustomer(ctx context.Context, op Operator, id uuid.UUID) error {
	if err := requirePermission(op, PermCustomers); err != nil {
		return err
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.record(ctx, enum.AuditDelete, op.Name,
		fmt.Sprintf("Deleted customer '%s'", customer.Name))
	return nil
}

// ListCustomers lists customers with optional name/phone search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListDormant lists customers whose last visit was more than the given number
// of days ago
func (s *CustomerService) ListDormant(ctx context.Context, days int) ([]entity.Customer, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.customerRepo.ListDormant(ctx, cutoff)
}

// ReEngage sends a come-back message to a dormant customer. Delivery is
// fire-and-forget.
func (s *CustomerService) ReEngage(ctx context.Context, op Operator, customerID uuid.UUID) error {
	if err := requirePermission(op, PermCustomers); err != nil {
		return err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return apperror.ErrBusinessRequired
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	if customer.Phone == "" {
		return apperror.NewBadRequestError("Customer has no phone number")
	}

	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	businessName := ""
	if business != nil {
		businessName = business.Name
	}

	message := notify.DormantCustomer(customer.Name, businessName)
	go func(phone, message string) {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.messenger.Send(sendCtx, phone, message); err != nil {
			log.Printf("notify: re-engagement failed: %v", err)
		}
	}(customer.Phone, message)

	return nil
}
