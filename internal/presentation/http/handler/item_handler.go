package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// ItemHandler handles inventory HTTP requests
type ItemHandler struct {
	inventoryService *service.InventoryService
}

// NewItemHandler creates a new item handler
func NewItemHandler(inventoryService *service.InventoryService) *ItemHandler {
	return &ItemHandler{inventoryService: inventoryService}
}

// List handles listing inventory items
func (h *ItemHandler) List(c *gin.Context) {
	var filter request.ItemFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ItemFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:   filter.Search,
		Category: filter.Category,
		Type:     filter.Type,
		LowStock: filter.LowStock,
	}

	result, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Get handles retrieving one item
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Save handles the full-replace product save
func (h *ItemHandler) Save(c *gin.Context) {
	var req request.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	variants := make([]service.ProductVariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		variant := service.ProductVariantInput{
			Name:          v.Name,
			Category:      v.Category,
			Type:          enum.ItemType(v.Type),
			Quantity:      v.Quantity,
			Size:          v.Size,
			Unit:          v.Unit,
			CostPrice:     v.CostPrice,
			SellingPrice:  v.SellingPrice,
			ExpiryDate:    v.ExpiryDate,
			LowStockAlert: v.LowStockAlert,
		}
		if v.ID != "" {
			if id, err := uuid.Parse(v.ID); err == nil {
				variant.ID = &id
			}
		}
		if v.SupplierID != "" {
			if supplierID, err := uuid.Parse(v.SupplierID); err == nil {
				variant.SupplierID = &supplierID
			}
		}
		variants = append(variants, variant)
	}

	op := GetOperator(c)
	items, err := h.inventoryService.SaveProduct(c.Request.Context(), op, variants, req.OriginalName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product saved successfully", items)
}

// Delete handles deleting one item variant
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	op := GetOperator(c)
	if err := h.inventoryService.DeleteItem(c.Request.Context(), op, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}

// Restock handles the quantity increment
func (h *ItemHandler) Restock(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	if err := h.inventoryService.Restock(c.Request.Context(), op, id, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item restocked successfully", nil)
}

// Clear handles emptying the inventory and sales history
func (h *ItemHandler) Clear(c *gin.Context) {
	op := GetOperator(c)
	if err := h.inventoryService.ClearInventory(c.Request.Context(), op); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory cleared successfully", nil)
}

// LowStock handles listing low-stock products
func (h *ItemHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// ContactSupplier handles the low-stock supplier message
func (h *ItemHandler) ContactSupplier(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	op := GetOperator(c)
	if err := h.inventoryService.ContactSupplier(c.Request.Context(), op, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier contacted successfully", nil)
}
