package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpenseFixture() (*ExpenseService, *fakeExpenseRepo, *fakeAuditRepo) {
	expenseRepo := newFakeExpenseRepo()
	auditRepo := &fakeAuditRepo{}
	return NewExpenseService(expenseRepo, auditRepo), expenseRepo, auditRepo
}

func TestSaveExpenseCreateAndUpdate(t *testing.T) {
	service, _, auditRepo := newExpenseFixture()
	ctx := testCtx()

	created, err := service.SaveExpense(ctx, ownerOp(), &ExpenseInput{
		Name:   "Rent",
		Amount: 500.00,
		Type:   enum.ExpenseFixed,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), created.Amount)
	assert.False(t, created.IsPaid)
	assert.Len(t, auditRepo.byAction(enum.AuditExpense), 1)

	updated, err := service.SaveExpense(ctx, ownerOp(), &ExpenseInput{
		ID:     &created.ID,
		Name:   "Rent",
		Amount: 550.00,
		Type:   enum.ExpenseFixed,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(55000), updated.Amount)
	assert.Len(t, auditRepo.byAction(enum.AuditUpdate), 1)
}

func TestSaveExpenseValidation(t *testing.T) {
	service, _, _ := newExpenseFixture()

	_, err := service.SaveExpense(testCtx(), ownerOp(), &ExpenseInput{Amount: 10, Type: enum.ExpenseFixed})
	assert.Error(t, err)

	_, err = service.SaveExpense(testCtx(), ownerOp(), &ExpenseInput{Name: "Rent", Amount: 10, Type: "weekly"})
	assert.Error(t, err)

	ghost := uuid.New()
	_, err = service.SaveExpense(testCtx(), ownerOp(), &ExpenseInput{ID: &ghost, Name: "Rent", Amount: 10, Type: enum.ExpenseFixed})
	assert.Error(t, err)

	_, err = service.SaveExpense(testCtx(), employeeOp(PermSales), &ExpenseInput{Name: "Rent", Amount: 10, Type: enum.ExpenseFixed})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestMarkPaidFixedExpenseRollsOverOneMonth(t *testing.T) {
	service, expenseRepo, _ := newExpenseFixture()
	ctx := testCtx()

	due := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	created, err := service.SaveExpense(ctx, ownerOp(), &ExpenseInput{
		Name:        "Rent",
		Amount:      500.00,
		Type:        enum.ExpenseFixed,
		NextDueDate: due,
	})
	require.NoError(t, err)

	paid, err := service.MarkPaid(ctx, ownerOp(), created.ID, nil, true)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.LastPaidDate)
	// The paid instance keeps its original due date as a closed record
	assert.Equal(t, due, paid.NextDueDate)

	unpaid, err := expenseRepo.ListUnpaid(ctx)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, "Rent", unpaid[0].Name)
	assert.Equal(t, paid.Amount, unpaid[0].Amount)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), unpaid[0].NextDueDate)
	assert.NotEqual(t, paid.ID, unpaid[0].ID)
}

func TestMarkPaidVariableExpenseNeverRollsOver(t *testing.T) {
	service, expenseRepo, _ := newExpenseFixture()
	ctx := testCtx()

	created, err := service.SaveExpense(ctx, ownerOp(), &ExpenseInput{
		Name:   "Repairs",
		Amount: 120.00,
		Type:   enum.ExpenseVariable,
	})
	require.NoError(t, err)

	_, err = service.MarkPaid(ctx, ownerOp(), created.ID, nil, true)
	require.NoError(t, err)

	unpaid, _ := expenseRepo.ListUnpaid(ctx)
	assert.Empty(t, unpaid)
}

func TestMarkPaidWithoutRolloverJustSettles(t *testing.T) {
	service, expenseRepo, _ := newExpenseFixture()
	ctx := testCtx()

	created, err := service.SaveExpense(ctx, ownerOp(), &ExpenseInput{
		Name:   "Rent",
		Amount: 500.00,
		Type:   enum.ExpenseFixed,
	})
	require.NoError(t, err)

	_, err = service.MarkPaid(ctx, ownerOp(), created.ID, nil, false)
	require.NoError(t, err)

	unpaid, _ := expenseRepo.ListUnpaid(ctx)
	assert.Empty(t, unpaid)
}

func TestMarkPaidStampsMethodAndUnpaidClearsIt(t *testing.T) {
	service, _, _ := newExpenseFixture()
	ctx := testCtx()

	created, err := service.SaveExpense(ctx, ownerOp(), &ExpenseInput{
		Name:   "Rent",
		Amount: 500.00,
		Type:   enum.ExpenseFixed,
	})
	require.NoError(t, err)

	cash := "cash"
	paid, err := service.MarkPaid(ctx, ownerOp(), created.ID, &cash, false)
	require.NoError(t, err)
	require.NotNil(t, paid.PaymentMethod)
	assert.Equal(t, "cash", *paid.PaymentMethod)

	// Reverting the payment clears the settlement record entirely
	reverted, err := service.MarkUnpaid(ctx, ownerOp(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, reverted.PaymentMethod)
	assert.Nil(t, reverted.LastPaidDate)
}

func TestMarkUnpaidClearsPaymentRecord(t *testing.T) {
	service, _, _ := newExpenseFixture()
	ctx := testCtx()

	created, err := service.SaveExpense(ctx, ownerOp(), &ExpenseInput{
		Name:   "Rent",
		Amount: 500.00,
		Type:   enum.ExpenseFixed,
	})
	require.NoError(t, err)

	_, err = service.MarkPaid(ctx, ownerOp(), created.ID, nil, false)
	require.NoError(t, err)

	reverted, err := service.MarkUnpaid(ctx, ownerOp(), created.ID)
	require.NoError(t, err)
	assert.False(t, reverted.IsPaid)
	assert.Nil(t, reverted.LastPaidDate)
}

func TestDeleteExpense(t *testing.T) {
	service, expenseRepo, auditRepo := newExpenseFixture()
	ctx := testCtx()

	created, err := service.SaveExpense(ctx, ownerOp(), &ExpenseInput{
		Name:   "Rent",
		Amount: 500.00,
		Type:   enum.ExpenseFixed,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteExpense(ctx, ownerOp(), created.ID))
	stored, _ := expenseRepo.GetByID(ctx, created.ID)
	assert.Nil(t, stored)
	assert.Len(t, auditRepo.byAction(enum.AuditDelete), 1)

	err = service.DeleteExpense(ctx, ownerOp(), created.ID)
	assert.Error(t, err)
}
