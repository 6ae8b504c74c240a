package service

import (
	"context"
	"time"

	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// DashboardService assembles the landing-page overview
type DashboardService struct {
	saleRepo    repository.SaleRepository
	itemRepo    repository.ItemRepository
	apptRepo    repository.AppointmentRepository
	expenseRepo repository.ExpenseRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	apptRepo repository.AppointmentRepository,
	expenseRepo repository.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		saleRepo:    saleRepo,
		itemRepo:    itemRepo,
		apptRepo:    apptRepo,
		expenseRepo: expenseRepo,
	}
}

// DashboardSummary is today's business overview
type DashboardSummary struct {
	Date                string                `json:"date"`
	TodayRevenue        float64               `json:"today_revenue"`
	TodayProfit         float64               `json:"today_profit"`
	TodayTransactions   int                   `json:"today_transactions"`
	LowStockItems       []entity.InventoryItem `json:"low_stock_items"`
	TodayAppointments   []entity.Appointment  `json:"today_appointments"`
	UnpaidExpenses      []entity.Expense      `json:"unpaid_expenses"`
	UnpaidExpenseTotal  float64               `json:"unpaid_expense_total"`
}

// GetSummary builds the overview for the current day
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	now := time.Now()
	summary := &DashboardSummary{Date: now.Format("2006-01-02")}

	sales, err := s.saleRepo.ListByDay(ctx, now)
	if err != nil {
		return nil, err
	}
	var revenueCents, profitCents int64
	transactions := make(map[string]struct{})
	for _, sale := range sales {
		revenueCents += sale.TotalRevenue
		profitCents += sale.TotalProfit
		transactions[sale.TransactionID.String()] = struct{}{}
	}
	summary.TodayRevenue = utils.FromCents(revenueCents)
	summary.TodayProfit = utils.FromCents(profitCents)
	summary.TodayTransactions = len(transactions)

	lowStock, err := s.itemRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	summary.LowStockItems = lowStock

	appointments, err := s.apptRepo.ListByDate(ctx, summary.Date)
	if err != nil {
		return nil, err
	}
	summary.TodayAppointments = appointments

	unpaid, err := s.expenseRepo.ListUnpaid(ctx)
	if err != nil {
		return nil, err
	}
	summary.UnpaidExpenses = unpaid
	var unpaidCents int64
	for _, expense := range unpaid {
		unpaidCents += expense.Amount
	}
	summary.UnpaidExpenseTotal = utils.FromCents(unpaidCents)

	return summary, nil
}
