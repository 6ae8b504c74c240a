package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/pagination"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// ExpenseService handles expense obligations and the fixed-expense payment
// cycle
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	audit       *auditor
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, auditRepo repository.AuditLogRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		audit:       newAuditor(auditRepo),
	}
}

// ExpenseInput represents the expense save input. A nil ID creates a new
// expense; otherwise the existing one is updated.
type ExpenseInput struct {
	ID            *uuid.UUID
	Name          string
	Amount        float64
	Type          enum.ExpenseType
	PaymentDay    int
	NextDueDate   time.Time
	PaymentMethod *string
}

// SaveExpense creates or updates an expense
func (s *ExpenseService) SaveExpense(ctx context.Context, op Operator, input *ExpenseInput) (*entity.Expense, error) {
	if err := requirePermission(op, PermExpenses); err != nil {
		return nil, err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Expense name is required")
	}
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Expense type must be fixed or variable")
	}

	if input.ID != nil {
		expense, err := s.expenseRepo.GetByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		if expense == nil {
			return nil, apperror.NewNotFoundError("Expense")
		}

		expense.Name = input.Name
		expense.Amount = utils.ToCents(input.Amount)
		expense.Type = input.Type
		expense.PaymentDay = input.PaymentDay
		expense.NextDueDate = input.NextDueDate
		expense.PaymentMethod = input.PaymentMethod

		if err := s.expenseRepo.Update(ctx, expense); err != nil {
			return nil, err
		}

		s.audit.record(ctx, enum.AuditUpdate, op.Name,
			fmt.Sprintf("Updated expense '%s'", expense.Name))
		return expense, nil
	}

	expense := &entity.Expense{
		ID:            utils.NewID(),
		BusinessID:    businessID,
		Name:          input.Name,
		Amount:        utils.ToCents(input.Amount),
		Type:          input.Type,
		PaymentDay:    input.PaymentDay,
		NextDueDate:   input.NextDueDate,
		PaymentMethod: input.PaymentMethod,
		CreatedByName: op.Name,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditExpense, op.Name,
		fmt.Sprintf("Created expense '%s' for %.2f", expense.Name, input.Amount))
	return expense, nil
}

// MarkPaid settles an expense, stamping how it was paid. With rollover, a paid
// fixed expense spawns next month's unpaid copy due exactly one calendar month
// after the previous due date; the paid instance stays untouched as a closed
// record.
func (s *ExpenseService) MarkPaid(ctx context.Context, op Operator, id uuid.UUID, method *string, rollover bool) (*entity.Expense, error) {
	if err := requirePermission(op, PermExpenses); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	now := time.Now()
	expense.IsPaid = true
	expense.LastPaidDate = &now
	if method != nil {
		expense.PaymentMethod = method
	}
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	if rollover && expense.Type == enum.ExpenseFixed {
		next := &entity.Expense{
			ID:            utils.NewID(),
			BusinessID:    expense.BusinessID,
			Name:          expense.Name,
			Amount:        expense.Amount,
			Type:          expense.Type,
			PaymentDay:    expense.PaymentDay,
			NextDueDate:   expense.NextDueDate.AddDate(0, 1, 0),
			PaymentMethod: expense.PaymentMethod,
			CreatedByName: expense.CreatedByName,
		}
		if err := s.expenseRepo.Create(ctx, next); err != nil {
			return nil, err
		}
	}

	s.audit.record(ctx, enum.AuditExpense, op.Name,
		fmt.Sprintf("Paid expense '%s' (%.2f)", expense.Name, utils.FromCents(expense.Amount)))
	return expense, nil
}

// MarkUnpaid reverts a paid expense back to unpaid
func (s *ExpenseService) MarkUnpaid(ctx context.Context, op Operator, id uuid.UUID) (*entity.Expense, error) {
	if err := requirePermission(op, PermExpenses); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	expense.IsPaid = false
	expense.LastPaidDate = nil
	expense.PaymentMethod = nil
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditUpdate, op.Name,
		fmt.Sprintf("Marked expense '%s' unpaid", expense.Name))
	return expense, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, op Operator, id uuid.UUID) error {
	if err := requirePermission(op, PermExpenses); err != nil {
		return err
	}

	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.record(ctx, enum.AuditDelete, op.Name,
		fmt.Sprintf("Deleted expense '%s'", expense.Name))
	return nil
}

// ListExpenses lists expenses with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}
