package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles adding a new expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	expense, err := h.expenseService.SaveExpense(c.Request.Context(), op, &service.ExpenseInput{
		Name:          req.Name,
		Amount:        req.Amount,
		Type:          enum.ExpenseType(req.Type),
		PaymentDay:    req.PaymentDay,
		NextDueDate:   req.NextDueDate,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}

// Update handles editing an existing expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	expense, err := h.expenseService.SaveExpense(c.Request.Context(), op, &service.ExpenseInput{
		ID:            &id,
		Name:          req.Name,
		Amount:        req.Amount,
		Type:          enum.ExpenseType(req.Type),
		PaymentDay:    req.PaymentDay,
		NextDueDate:   req.NextDueDate,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// MarkPaid handles settling an expense, optionally rolling a fixed expense
// over to the next month
func (h *ExpenseHandler) MarkPaid(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	expense, err := h.expenseService.MarkPaid(c.Request.Context(), op, id, req.PaymentMethod, req.Rollover)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense marked paid", expense)
}

// MarkUnpaid handles reverting an expense to unpaid
func (h *ExpenseHandler) MarkUnpaid(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	op := GetOperator(c)
	expense, err := h.expenseService.MarkUnpaid(c.Request.Context(), op, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense marked unpaid", expense)
}

// Delete handles removing an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	op := GetOperator(c)
	if err := h.expenseService.DeleteExpense(c.Request.Context(), op, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}

// List handles listing expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	var filter request.ExpenseFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ExpenseFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Type:   filter.Type,
		Unpaid: filter.Unpaid,
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}
