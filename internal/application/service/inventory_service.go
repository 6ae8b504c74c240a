package service

import (
	"context"
	"fmt"
	"log"
	"strings"
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

// InventoryService handles stock and catalog operations
type InventoryService struct {
	itemRepo     repository.ItemRepository
	saleRepo     repository.SaleRepository
	supplierRepo repository.SupplierRepository
	businessRepo repository.BusinessRepository
	messenger    notify.Messenger
	audit        *auditor
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	itemRepo repository.ItemRepository,
	saleRepo repository.SaleRepository,
	supplierRepo repository.SupplierRepository,
	businessRepo repository.BusinessRepository,
	auditRepo repository.AuditLogRepository,
	messenger notify.Messenger,
) *InventoryService {
	return &InventoryService{
		itemRepo:     itemRepo,
		saleRepo:     saleRepo,
		supplierRepo: supplierRepo,
		businessRepo: businessRepo,
		messenger:    messenger,
		audit:        newAuditor(auditRepo),
	}
}

// ProductVariantInput represents one variant of a product being saved
type ProductVariantInput struct {
	ID            *uuid.UUID
	Name          string
	Category      string
	Type          enum.ItemType
	Quantity      float64
	Size          string
	Unit          string
	CostPrice     float64
	SellingPrice  float64
	ExpiryDate    *time.Time
	LowStockAlert float64
	SupplierID    *uuid.UUID
}

// SaveProduct saves one logical product as a full replacement of its name
// group. Variants previously in the group but absent from the input are
// discarded. When renaming, originalName identifies the group being replaced.
func (s *InventoryService) SaveProduct(ctx context.Context, op Operator, variants []ProductVariantInput, originalName string) ([]entity.InventoryItem, error) {
	if err := requirePermission(op, PermInventory); err != nil {
		return nil, err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}
	if len(variants) == 0 {
		return nil, apperror.NewBadRequestError("At least one variant is required")
	}

	name := strings.TrimSpace(variants[0].Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}

	groupName := strings.TrimSpace(originalName)
	if groupName == "" {
		groupName = name
	}

	existing, err := s.itemRepo.GetByName(ctx, groupName)
	if err != nil {
		return nil, err
	}
	isUpdate := len(existing) > 0

	now := time.Now()
	items := make([]entity.InventoryItem, 0, len(variants))
	for _, v := range variants {
		itemType := v.Type
		if !itemType.IsValid() {
			itemType = enum.ItemProduct
		}
		quantity := utils.RoundQuantity(v.Quantity)
		if itemType == enum.ItemService {
			quantity = entity.ServiceAvailableQuantity
		}

		id := utils.NewID()
		if v.ID != nil && *v.ID != uuid.Nil {
			id = *v.ID
		}

		items = append(items, entity.InventoryItem{
			ID:            id,
			BusinessID:    businessID,
			SupplierID:    v.SupplierID,
			Name:          name,
			Category:      v.Category,
			Type:          itemType,
			Quantity:      quantity,
			Size:          v.Size,
			Unit:          v.Unit,
			CostPrice:     utils.ToCents(v.CostPrice),
			SellingPrice:  utils.ToCents(v.SellingPrice),
			ExpiryDate:    v.ExpiryDate,
			LowStockAlert: v.LowStockAlert,
			UpdatedByName: op.Name,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	// Renaming also clears any group already holding the new name so a rename
	// onto an existing product merges instead of duplicating.
	if groupName != name {
		if err := s.itemRepo.ReplaceNameGroup(ctx, name, nil); err != nil {
			return nil, err
		}
	}
	if err := s.itemRepo.ReplaceNameGroup(ctx, groupName, items); err != nil {
		return nil, err
	}

	action := enum.AuditCreate
	verb := "Created"
	if isUpdate {
		action = enum.AuditUpdate
		verb = "Updated"
	}
	s.audit.record(ctx, action, op.Name,
		fmt.Sprintf("%s product '%s' with %d variant(s)", verb, name, len(items)))

	return items, nil
}

// DeleteItem removes one variant. Deleting a missing item is not an error; the
// audit entry names the item or falls back to "Unknown".
func (s *InventoryService) DeleteItem(ctx context.Context, op Operator, id uuid.UUID) error {
	if err := requirePermission(op, PermInventory); err != nil {
		return err
	}

	name := "Unknown"
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item != nil {
		name = item.Name
		if err := s.itemRepo.Delete(ctx, id); err != nil {
			return err
		}
	}

	s.audit.record(ctx, enum.AuditDelete, op.Name,
		fmt.Sprintf("Deleted item '%s'", name))
	return nil
}

// Restock atomically increments an item's quantity. Restocking a missing item
// is a no-op.
func (s *InventoryService) Restock(ctx context.Context, op Operator, itemID uuid.UUID, qty float64) error {
	if err := requirePermission(op, PermInventory); err != nil {
		return err
	}
	if qty <= 0 {
		return apperror.NewBadRequestError("Restock quantity must be positive")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}

	if err := s.itemRepo.AdjustQuantityBatch(ctx, map[uuid.UUID]float64{itemID: utils.RoundQuantity(qty)}); err != nil {
		return err
	}

	s.audit.record(ctx, enum.AuditUpdate, op.Name,
		fmt.Sprintf("Restocked '%s' by %g %s", item.Name, qty, item.Unit))
	return nil
}

// ClearInventory empties the business's items and sales history
func (s *InventoryService) ClearInventory(ctx context.Context, op Operator) error {
	if err := requirePermission(op, PermInventory); err != nil {
		return err
	}

	if err := s.itemRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.saleRepo.DeleteAll(ctx); err != nil {
		return err
	}

	s.audit.record(ctx, enum.AuditDelete, op.Name, "Cleared inventory and sales history")
	return nil
}

// GetItem retrieves one item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists items with filtering
func (s *InventoryService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// GetLowStock lists products at or below their alert threshold
func (s *InventoryService) GetLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.itemRepo.GetLowStock(ctx)
}

// ContactSupplier sends a restock request for the supplier's low-stock items.
// Delivery is fire-and-forget.
func (s *InventoryService) ContactSupplier(ctx context.Context, op Operator, supplierID uuid.UUID) error {
	if err := requirePermission(op, PermInventory); err != nil {
		return err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return apperror.ErrBusinessRequired
	}

	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	if supplier.Phone == "" {
		return apperror.NewBadRequestError("Supplier has no phone number")
	}

	lowStock, err := s.itemRepo.GetLowStock(ctx)
	if err != nil {
		return err
	}
	var itemNames []string
	for _, item := range lowStock {
		if item.SupplierID != nil && *item.SupplierID == supplierID {
			itemNames = append(itemNames, item.Name)
		}
	}
	if len(itemNames) == 0 {
		return apperror.NewBadRequestError("Supplier has no low-stock items")
	}

	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	businessName := ""
	if business != nil {
		businessName = business.Name
	}

	message := notify.LowStockSupplier(supplier.Name, businessName, itemNames)
	go func(phone, message string) {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.messenger.Send(sendCtx, phone, message); err != nil {
			log.Printf("notify: supplier contact failed: %v", err)
		}
	}(supplier.Phone, message)

	return nil
}
