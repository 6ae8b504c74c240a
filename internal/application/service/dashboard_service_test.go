package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryAggregatesToday(t *testing.T) {
	saleRepo := &fakeSaleRepo{}
	itemRepo := newFakeItemRepo()
	apptRepo := newFakeAppointmentRepo()
	expenseRepo := newFakeExpenseRepo()
	service := NewDashboardService(saleRepo, itemRepo, apptRepo, expenseRepo)
	ctx := testCtx()

	now := time.Now()
	today := now.Format("2006-01-02")
	receipt := uuid.New()
	saleRepo.sales = []entity.Sale{
		{ID: uuid.New(), TransactionID: receipt, TotalRevenue: 10000, TotalProfit: 4000, SaleDate: now},
		{ID: uuid.New(), TransactionID: receipt, TotalRevenue: 5000, TotalProfit: 1000, SaleDate: now},
		{ID: uuid.New(), TransactionID: uuid.New(), TotalRevenue: 2500, TotalProfit: 500, SaleDate: now},
		// Yesterday's sale must not leak into today's numbers
		{ID: uuid.New(), TransactionID: uuid.New(), TotalRevenue: 9999, TotalProfit: 9999, SaleDate: now.AddDate(0, 0, -1)},
	}

	itemRepo.add(entity.InventoryItem{Name: "Beer", Type: enum.ItemProduct, Quantity: 2, LowStockAlert: 5})
	itemRepo.add(entity.InventoryItem{Name: "Wine", Type: enum.ItemProduct, Quantity: 50, LowStockAlert: 5})

	require.NoError(t, apptRepo.Create(ctx, &entity.Appointment{
		ID: uuid.New(), BusinessID: testBusinessID, Date: today, StartTime: "10:00",
	}))
	require.NoError(t, apptRepo.Create(ctx, &entity.Appointment{
		ID: uuid.New(), BusinessID: testBusinessID, Date: "2020-01-01", StartTime: "10:00",
	}))

	require.NoError(t, expenseRepo.Create(ctx, &entity.Expense{
		ID: uuid.New(), BusinessID: testBusinessID, Name: "Rent", Amount: 50000,
	}))
	require.NoError(t, expenseRepo.Create(ctx, &entity.Expense{
		ID: uuid.New(), BusinessID: testBusinessID, Name: "Water", Amount: 3000, IsPaid: true,
	}))

	summary, err := service.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, today, summary.Date)
	assert.Equal(t, 175.0, summary.TodayRevenue)
	assert.Equal(t, 55.0, summary.TodayProfit)
	assert.Equal(t, 2, summary.TodayTransactions)

	require.Len(t, summary.LowStockItems, 1)
	assert.Equal(t, "Beer", summary.LowStockItems[0].Name)

	require.Len(t, summary.TodayAppointments, 1)
	assert.Equal(t, today, summary.TodayAppointments[0].Date)

	require.Len(t, summary.UnpaidExpenses, 1)
	assert.Equal(t, "Rent", summary.UnpaidExpenses[0].Name)
	assert.Equal(t, 500.0, summary.UnpaidExpenseTotal)
}

func TestDashboardSummaryOnEmptyBusiness(t *testing.T) {
	service := NewDashboardService(&fakeSaleRepo{}, newFakeItemRepo(), newFakeAppointmentRepo(), newFakeExpenseRepo())

	summary, err := service.GetSummary(testCtx())
	require.NoError(t, err)
	assert.Zero(t, summary.TodayRevenue)
	assert.Zero(t, summary.TodayTransactions)
	assert.Empty(t, summary.LowStockItems)
	assert.Empty(t, summary.UnpaidExpenses)
}
