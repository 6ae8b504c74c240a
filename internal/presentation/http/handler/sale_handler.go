package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// SaleHandler handles checkout HTTP requests
type SaleHandler struct {
	salesService *service.SalesService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(salesService *service.SalesService) *SaleHandler {
	return &SaleHandler{salesService: salesService}
}

// Create handles recording one checkout
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.BatchSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	lines := make([]service.SaleLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		itemID, err := uuid.Parse(line.ItemID)
		if err != nil {
			// Unparseable lines are skipped like missing items
			continue
		}
		lines = append(lines, service.SaleLineInput{ItemID: itemID, Quantity: line.Quantity})
	}

	var customerID *uuid.UUID
	if req.CustomerID != "" {
		if id, err := uuid.Parse(req.CustomerID); err == nil {
			customerID = &id
		}
	}

	op := GetOperator(c)
	sales, err := h.salesService.BatchSale(c.Request.Context(), op, lines, req.PaymentMethod, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sales)
}

// List handles listing sales
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}
	if filter.From != "" {
		if from, err := time.Parse("2006-01-02", filter.From); err == nil {
			params.From = &from
		}
	}
	if filter.To != "" {
		if to, err := time.Parse("2006-01-02", filter.To); err == nil {
			// Make the upper bound inclusive of the named day
			end := to.AddDate(0, 0, 1)
			params.To = &end
		}
	}

	result, err := h.salesService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// CloseRegister handles the end-of-day register summary
func (h *SaleHandler) CloseRegister(c *gin.Context) {
	var req request.CloseRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	day := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Date must be in YYYY-MM-DD format")
			return
		}
		day = parsed
	}

	op := GetOperator(c)
	summary, err := h.salesService.CloseRegister(c.Request.Context(), op, day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Register closed successfully", summary)
}
