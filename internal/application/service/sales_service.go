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

// SalesService handles checkout recording and register summaries
type SalesService struct {
	saleRepo  repository.SaleRepository
	itemRepo  repository.ItemRepository
	customers *CustomerService
	audit     *auditor
}

// NewSalesService creates a new sales service
func NewSalesService(
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	customers *CustomerService,
	auditRepo repository.AuditLogRepository,
) *SalesService {
	return &SalesService{
		saleRepo:  saleRepo,
		itemRepo:  itemRepo,
		customers: customers,
		audit:     newAuditor(auditRepo),
	}
}

// SaleLineInput represents one requested line of a checkout
type SaleLineInput struct {
	ItemID   uuid.UUID
	Quantity float64
}

// BatchSale records one checkout. All lines share a transaction ID and sale
// date. Lines referencing items that no longer exist are skipped silently.
// Revenue and profit are snapshotted from live prices; product stock is
// decremented with two-decimal rounding and may go negative. An attached
// customer is credited with spend, loyalty points and a visit.
func (s *SalesService) BatchSale(ctx context.Context, op Operator, lines []SaleLineInput, paymentMethod string, customerID *uuid.UUID) ([]entity.Sale, error) {
	if err := requirePermission(op, PermSales); err != nil {
		return nil, err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.InventoryItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	transactionID := utils.NewID()
	saleDate := time.Now()

	sales := make([]entity.Sale, 0, len(lines))
	deltas := make(map[uuid.UUID]float64)
	var totalRevenue int64

	for _, line := range lines {
		item, found := byID[line.ItemID]
		if !found || line.Quantity <= 0 {
			continue
		}

		qty := utils.RoundQuantity(line.Quantity)
		sellPrice := item.EffectiveSellingPrice()
		revenue := utils.MulCents(sellPrice, qty)
		profit := utils.MulCents(sellPrice-item.CostPrice, qty)

		sales = append(sales, entity.Sale{
			ID:            utils.NewID(),
			BusinessID:    businessID,
			TransactionID: transactionID,
			ItemID:        item.ID,
			ItemName:      item.Name,
			Size:          item.Size,
			Unit:          item.Unit,
			Quantity:      qty,
			TotalRevenue:  revenue,
			TotalProfit:   profit,
			SaleDate:      saleDate,
			PaymentMethod: paymentMethod,
			OperatorID:    op.ID,
			OperatorName:  op.Name,
			CustomerID:    customerID,
		})
		totalRevenue += revenue

		// Services use quantity as an availability flag, not a count
		if item.Type == enum.ItemProduct {
			deltas[item.ID] -= qty
		}
	}

	if len(sales) == 0 {
		return []entity.Sale{}, nil
	}

	if err := s.saleRepo.CreateBatch(ctx, sales); err != nil {
		return nil, err
	}
	if err := s.itemRepo.AdjustQuantityBatch(ctx, deltas); err != nil {
		return nil, err
	}

	if customerID != nil {
		if err := s.customers.Credit(ctx, *customerID, totalRevenue); err != nil {
			return nil, err
		}
	}

	detail := fmt.Sprintf("Recorded sale of %d item(s) for %.2f", len(sales), utils.FromCents(totalRevenue))
	if customerID != nil {
		if customer, err := s.customers.customerRepo.GetByID(ctx, *customerID); err == nil && customer != nil {
			detail += fmt.Sprintf(" to '%s'", customer.Name)
		}
	}
	s.audit.record(ctx, enum.AuditSale, op.Name, detail)

	return sales, nil
}

// ListSales lists sales with optional date range filtering
func (s *SalesService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// RegisterSummary is one day's takings breakdown produced by CloseRegister
type RegisterSummary struct {
	Date             string             `json:"date"`
	TransactionCount int                `json:"transaction_count"`
	LineCount        int                `json:"line_count"`
	TotalRevenue     float64            `json:"total_revenue"`
	TotalProfit      float64            `json:"total_profit"`
	ByPaymentMethod  map[string]float64 `json:"by_payment_method"`
}

// CloseRegister summarizes one day's takings per payment method and records
// the closure in the audit trail
func (s *SalesService) CloseRegister(ctx context.Context, op Operator, day time.Time) (*RegisterSummary, error) {
	if err := requirePermission(op, PermReports); err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	summary := &RegisterSummary{
		Date:            day.Format("2006-01-02"),
		LineCount:       len(sales),
		ByPaymentMethod: make(map[string]float64),
	}

	var revenueCents, profitCents int64
	transactions := make(map[uuid.UUID]struct{})
	methodCents := make(map[string]int64)

	for _, sale := range sales {
		revenueCents += sale.TotalRevenue
		profitCents += sale.TotalProfit
		transactions[sale.TransactionID] = struct{}{}
		methodCents[sale.PaymentMethod] += sale.TotalRevenue
	}

	summary.TransactionCount = len(transactions)
	summary.TotalRevenue = utils.FromCents(revenueCents)
	summary.TotalProfit = utils.FromCents(profitCents)
	for method, cents := range methodCents {
		summary.ByPaymentMethod[method] = utils.FromCents(cents)
	}

	s.audit.record(ctx, enum.AuditCloseRegister, op.Name,
		fmt.Sprintf("Closed register for %s: %d transaction(s), %.2f total",
			summary.Date, summary.TransactionCount, summary.TotalRevenue))

	return summary, nil
}
